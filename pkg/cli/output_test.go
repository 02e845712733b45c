package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{Indent: true}

	data := map[string]int{"removed": 3}
	if err := f.FormatTo(&buf, data); err != nil {
		t.Fatalf("FormatTo() failed: %v", err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["removed"] != 3 {
		t.Errorf("removed = %d, want 3", decoded["removed"])
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("JSON output should be indented")
	}
}

func TestJSONFormatterCompact(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{}

	if err := f.FormatTo(&buf, map[string]int{"removed": 1}); err != nil {
		t.Fatalf("FormatTo() failed: %v", err)
	}
	if got := buf.String(); got != "{\"removed\":1}\n" {
		t.Errorf("output = %q, want compact JSON", got)
	}
}
