package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appmodel/apphost/internal/model"
)

func TestGraphAdd(t *testing.T) {
	t.Run("resources are returned in declaration order", func(t *testing.T) {
		g := model.NewGraph()
		for _, name := range []string{"cache", "db", "api"} {
			_, err := g.Add(name, model.KindContainer)
			require.NoError(t, err)
		}

		var names []string
		for _, r := range g.Resources() {
			names = append(names, r.Name())
		}
		assert.Equal(t, []string{"cache", "db", "api"}, names)
	})

	t.Run("duplicate resource name is rejected", func(t *testing.T) {
		g := model.NewGraph()
		_, err := g.Add("db", model.KindContainer)
		require.NoError(t, err)

		_, err = g.Add("db", model.KindParameter)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrDuplicateResource)
	})

	t.Run("invalid resource name is rejected", func(t *testing.T) {
		g := model.NewGraph()
		_, err := g.Add("not a name", model.KindContainer)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidName)
	})

	t.Run("mixed-case names are allowed", func(t *testing.T) {
		g := model.NewGraph()
		_, err := g.Add("qdrant-Key", model.KindParameter)
		assert.NoError(t, err)
	})

	t.Run("lookup by name", func(t *testing.T) {
		g := model.NewGraph()
		_, err := g.Add("db", model.KindContainer)
		require.NoError(t, err)

		res, ok := g.Resource("db")
		require.True(t, ok)
		assert.Equal(t, "db", res.Name())

		_, ok = g.Resource("missing")
		assert.False(t, ok)
	})
}

func TestGraphFreeze(t *testing.T) {
	t.Run("add after freeze fails", func(t *testing.T) {
		g := model.NewGraph()
		g.Freeze()

		_, err := g.Add("db", model.KindContainer)
		assert.ErrorIs(t, err, model.ErrFrozen)
	})

	t.Run("annotate after freeze fails", func(t *testing.T) {
		g := model.NewGraph()
		res, err := g.Add("db", model.KindContainer)
		require.NoError(t, err)
		g.Freeze()

		err = res.Annotate(&model.ConnectionStringAnnotation{Expression: "x"})
		assert.ErrorIs(t, err, model.ErrFrozen)
	})

	t.Run("allocation is still allowed after freeze", func(t *testing.T) {
		g := model.NewGraph()
		res, err := g.Add("db", model.KindContainer)
		require.NoError(t, err)
		ep := &model.EndpointAnnotation{Name: "tcp", TargetPort: 5432, Scheme: "tcp"}
		require.NoError(t, res.Annotate(ep))
		g.Freeze()

		ep.Allocate("localhost", 5432)
		alloc, ok := ep.Allocated()
		require.True(t, ok)
		assert.Equal(t, "localhost:5432", alloc.Address())
	})
}

func TestResourceEndpoints(t *testing.T) {
	t.Run("duplicate endpoint name is rejected", func(t *testing.T) {
		g := model.NewGraph()
		res, err := g.Add("db", model.KindContainer)
		require.NoError(t, err)

		require.NoError(t, res.Annotate(&model.EndpointAnnotation{Name: "tcp", TargetPort: 5432}))
		err = res.Annotate(&model.EndpointAnnotation{Name: "tcp", TargetPort: 5433})
		assert.ErrorIs(t, err, model.ErrDuplicateEndpoint)
	})

	t.Run("same endpoint name on different resources is fine", func(t *testing.T) {
		g := model.NewGraph()
		a, err := g.Add("a", model.KindContainer)
		require.NoError(t, err)
		b, err := g.Add("b", model.KindContainer)
		require.NoError(t, err)

		require.NoError(t, a.Annotate(&model.EndpointAnnotation{Name: "http", TargetPort: 80}))
		assert.NoError(t, b.Annotate(&model.EndpointAnnotation{Name: "http", TargetPort: 80}))
	})

	t.Run("endpoint lookup returns first match", func(t *testing.T) {
		g := model.NewGraph()
		res, err := g.Add("db", model.KindContainer)
		require.NoError(t, err)

		require.NoError(t, res.Annotate(&model.EndpointAnnotation{Name: "http", TargetPort: 6334}))
		require.NoError(t, res.Annotate(&model.EndpointAnnotation{Name: "rest", TargetPort: 6333}))

		ep, ok := res.Endpoint("http")
		require.True(t, ok)
		assert.Equal(t, 6334, ep.TargetPort)

		eps := res.Endpoints()
		require.Len(t, eps, 2)
		assert.Equal(t, "http", eps[0].Name)
		assert.Equal(t, "rest", eps[1].Name)
	})

	t.Run("reallocation overwrites", func(t *testing.T) {
		ep := &model.EndpointAnnotation{Name: "http", TargetPort: 80}
		ep.Allocate("localhost", 8080)
		ep.Allocate("localhost", 9090)

		alloc, ok := ep.Allocated()
		require.True(t, ok)
		assert.Equal(t, 9090, alloc.Port)
	})
}

func TestImageAnnotationRef(t *testing.T) {
	tests := []struct {
		name     string
		img      model.ImageAnnotation
		expected string
	}{
		{
			name:     "image and tag",
			img:      model.ImageAnnotation{Image: "qdrant/qdrant", Tag: "v1.13.0"},
			expected: "qdrant/qdrant:v1.13.0",
		},
		{
			name:     "with registry",
			img:      model.ImageAnnotation{Image: "qdrant/qdrant", Tag: "v1.13.0", Registry: "registry.example.com"},
			expected: "registry.example.com/qdrant/qdrant:v1.13.0",
		},
		{
			name:     "no tag",
			img:      model.ImageAnnotation{Image: "qdrant/qdrant"},
			expected: "qdrant/qdrant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.img.Ref())
		})
	}
}
