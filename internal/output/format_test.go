package output_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appmodel/apphost/internal/output"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected output.Format
		valid    bool
	}{
		{input: "json", expected: output.FormatJSON, valid: true},
		{input: "JSON", expected: output.FormatJSON, valid: true},
		{input: "", expected: output.FormatJSON, valid: true},
		{input: "yaml", expected: output.FormatYAML, valid: true},
		{input: "yml", expected: output.FormatYAML, valid: true},
		{input: "YAML", expected: output.FormatYAML, valid: true},
		{input: "toml", expected: output.FormatJSON, valid: false},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			format, valid := output.ParseFormat(tt.input)
			assert.Equal(t, tt.expected, format)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

func TestValidFormats(t *testing.T) {
	assert.Equal(t, []string{"json", "yaml"}, output.ValidFormats())
}
