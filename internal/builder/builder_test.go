package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appmodel/apphost/internal/builder"
	"github.com/appmodel/apphost/internal/model"
)

func TestBuild(t *testing.T) {
	t.Run("declares resources in call order", func(t *testing.T) {
		b := builder.New()
		b.AddParameter("db-password", "", true)
		b.AddContainer("db", "postgres", "17")
		b.AddExecutable("api", "dotnet", "run")

		g, err := b.Build()
		require.NoError(t, err)

		var names []string
		for _, r := range g.Resources() {
			names = append(names, r.Name())
		}
		assert.Equal(t, []string{"db-password", "db", "api"}, names)
	})

	t.Run("build freezes the graph", func(t *testing.T) {
		b := builder.New()
		b.AddContainer("db", "postgres", "17")
		g, err := b.Build()
		require.NoError(t, err)

		_, err = g.Add("late", model.KindContainer)
		assert.ErrorIs(t, err, model.ErrFrozen)
	})

	t.Run("container carries its image annotation", func(t *testing.T) {
		b := builder.New()
		b.AddContainer("db", "postgres", "17")
		g, err := b.Build()
		require.NoError(t, err)

		res, _ := g.Resource("db")
		assert.Equal(t, model.KindContainer, res.Kind())
		img, ok := res.Image()
		require.True(t, ok)
		assert.Equal(t, "postgres:17", img.Ref())
	})

	t.Run("executable carries its command annotation", func(t *testing.T) {
		b := builder.New()
		b.AddExecutable("api", "dotnet", "run", "--project", "api")
		g, err := b.Build()
		require.NoError(t, err)

		res, _ := g.Resource("api")
		assert.Equal(t, model.KindExecutable, res.Kind())
		cmd, ok := res.Command()
		require.True(t, ok)
		assert.Equal(t, "dotnet", cmd.Command)
		assert.Equal(t, []string{"run", "--project", "api"}, cmd.Args)
	})

	t.Run("parameter resource carries its store entry", func(t *testing.T) {
		b := builder.New()
		b.AddParameter("api-key", "s3cret", true)
		g, err := b.Build()
		require.NoError(t, err)

		res, _ := g.Resource("api-key")
		require.NotNil(t, res.Parameter())
		assert.Equal(t, "s3cret", res.Parameter().Value())
		assert.True(t, res.Parameter().Secret())
	})
}

func TestBuildErrors(t *testing.T) {
	t.Run("first error sticks", func(t *testing.T) {
		b := builder.New()
		b.AddContainer("db", "postgres", "17")
		b.AddContainer("db", "postgres", "17")
		b.AddContainer("not a name", "x", "y")

		_, err := b.Build()
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrDuplicateResource)
		assert.NotErrorIs(t, err, model.ErrInvalidName)
	})

	t.Run("chained calls after a failure are no-ops", func(t *testing.T) {
		b := builder.New()
		b.AddContainer("bad name", "x", "y").
			WithHTTPEndpoint("http", 8080).
			WithEnvironment("A", "1")

		_, err := b.Build()
		assert.ErrorIs(t, err, model.ErrInvalidName)
	})

	t.Run("duplicate endpoint surfaces at build", func(t *testing.T) {
		b := builder.New()
		b.AddContainer("db", "postgres", "17").
			WithEndpoint("tcp", 5432).
			WithEndpoint("tcp", 5433)

		_, err := b.Build()
		assert.ErrorIs(t, err, model.ErrDuplicateEndpoint)
	})
}

func TestEndpointOptions(t *testing.T) {
	t.Run("defaults are tcp", func(t *testing.T) {
		b := builder.New()
		b.AddContainer("db", "postgres", "17").
			WithEndpoint("tcp", 5432)
		g, err := b.Build()
		require.NoError(t, err)

		res, _ := g.Resource("db")
		ep, ok := res.Endpoint("tcp")
		require.True(t, ok)
		assert.Equal(t, "tcp", ep.Scheme)
		assert.Equal(t, "tcp", ep.Protocol)
		assert.Equal(t, "tcp", ep.Transport)
		assert.False(t, ep.External)
	})

	t.Run("http endpoint sets scheme and transport", func(t *testing.T) {
		b := builder.New()
		b.AddContainer("web", "example/web", "latest").
			WithHTTPEndpoint("http", 8080, builder.External())
		g, err := b.Build()
		require.NoError(t, err)

		res, _ := g.Resource("web")
		ep, ok := res.Endpoint("http")
		require.True(t, ok)
		assert.Equal(t, "http", ep.Scheme)
		assert.Equal(t, "http", ep.Transport)
		assert.Equal(t, "tcp", ep.Protocol)
		assert.True(t, ep.External)
	})

	t.Run("options can override http defaults", func(t *testing.T) {
		b := builder.New()
		b.AddContainer("web", "example/web", "latest").
			WithHTTPEndpoint("grpc", 6334, builder.WithTransport("http2"))
		g, err := b.Build()
		require.NoError(t, err)

		res, _ := g.Resource("web")
		ep, ok := res.Endpoint("grpc")
		require.True(t, ok)
		assert.Equal(t, "http", ep.Scheme)
		assert.Equal(t, "http2", ep.Transport)
	})
}
