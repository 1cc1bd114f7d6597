package output_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appmodel/apphost/internal/output"
)

func TestFormatPlanLine(t *testing.T) {
	t.Run("short keys align at the value column", func(t *testing.T) {
		a := output.FormatPlanLine("image", "postgres:17")
		b := output.FormatPlanLine("command", "dotnet run")
		assert.Equal(t, strings.Index(a, "postgres:17"), strings.Index(b, "dotnet run"))
	})

	t.Run("long keys keep a minimum gap", func(t *testing.T) {
		line := output.FormatPlanLine("ConnectionStrings__qdrant_rest_and_then_some", "value")
		assert.Contains(t, line, "  value")
	})
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1 resource", output.FormatCount(1, "resource"))
	assert.Equal(t, "2 resources", output.FormatCount(2, "resource"))
	assert.Equal(t, "0 resources", output.FormatCount(0, "resource"))
}

func TestFormatResourceHeader(t *testing.T) {
	header := output.FormatResourceHeader("qdrant", "container.v0")
	assert.Contains(t, header, "qdrant")
	assert.Contains(t, header, "container.v0")
}
