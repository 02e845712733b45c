package cli

import (
	"encoding/json"
	"io"
)

// OutputFormat represents the output format for command results.
type OutputFormat string

const (
	// FormatText is the plain per-line report output (default).
	FormatText OutputFormat = "text"
	// FormatJSON is JSON output, for CI consumption.
	FormatJSON OutputFormat = "json"
)

// JSONFormatter writes command results as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatTo writes data to writer in JSON format.
func (f *JSONFormatter) FormatTo(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	if f.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(data)
}
