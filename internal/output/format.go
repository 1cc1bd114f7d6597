package output

import "strings"

// Format specifies the manifest output format.
type Format string

const (
	// FormatJSON outputs byte-stable indented JSON.
	FormatJSON Format = "json"

	// FormatYAML outputs order-preserving YAML.
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// ParseFormat parses a string into a Format. The second return value reports
// whether the input was valid.
func ParseFormat(s string) (Format, bool) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, true
	case "yaml", "yml":
		return FormatYAML, true
	default:
		return FormatJSON, false
	}
}

// ValidFormats returns the valid format strings.
func ValidFormats() []string {
	return []string{"json", "yaml"}
}
