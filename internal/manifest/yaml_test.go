package manifest_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/appmodel/apphost/internal/eval"
	"github.com/appmodel/apphost/internal/manifest"
	"github.com/appmodel/apphost/internal/testutil"
)

func TestDocumentYAML(t *testing.T) {
	t.Run("preserves field emission order", func(t *testing.T) {
		g := testutil.NewQdrantGraph(t, "pass")
		ec := eval.NewExecutionContext(g, eval.ModePublish)
		s := manifest.NewSerializer(ec)

		data, err := s.DocumentYAML(context.Background())
		require.NoError(t, err)

		text := string(data)
		typeIdx := strings.Index(text, "type: container.v0")
		csIdx := strings.Index(text, "connectionString:")
		imgIdx := strings.Index(text, "image:")
		envIdx := strings.Index(text, "env:")
		bindIdx := strings.Index(text, "bindings:")
		require.NotEqual(t, -1, typeIdx)
		require.NotEqual(t, -1, csIdx)
		assert.Less(t, typeIdx, csIdx)
		assert.Less(t, csIdx, imgIdx)
		assert.Less(t, imgIdx, envIdx)
		assert.Less(t, envIdx, bindIdx)
	})

	t.Run("parses back to an equivalent document", func(t *testing.T) {
		g := testutil.NewQdrantGraph(t, "pass")
		ec := eval.NewExecutionContext(g, eval.ModePublish)
		s := manifest.NewSerializer(ec)

		data, err := s.DocumentYAML(context.Background())
		require.NoError(t, err)

		var doc struct {
			Resources map[string]struct {
				Type             string `yaml:"type"`
				ConnectionString string `yaml:"connectionString"`
				Image            string `yaml:"image"`
			} `yaml:"resources"`
		}
		require.NoError(t, yaml.Unmarshal(data, &doc))
		require.Len(t, doc.Resources, 2)
		assert.Equal(t, "container.v0", doc.Resources["qdrant"].Type)
		assert.Equal(t, "qdrant/qdrant:v1.13.0", doc.Resources["qdrant"].Image)
		assert.Equal(t, "parameter.v0", doc.Resources["qdrant-Key"].Type)
	})

	t.Run("output is byte stable across calls", func(t *testing.T) {
		g := testutil.NewQdrantGraph(t, "pass")
		ec := eval.NewExecutionContext(g, eval.ModePublish)
		s := manifest.NewSerializer(ec)

		first, err := s.DocumentYAML(context.Background())
		require.NoError(t, err)
		second, err := s.DocumentYAML(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
