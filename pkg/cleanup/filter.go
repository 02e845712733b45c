package cleanup

import (
	"path/filepath"
	"strings"
)

// DefaultExtensions is the extension allow list used when none is configured.
var DefaultExtensions = []string{".json"}

// DefaultSkipTokens protects "latest" snapshot files from deletion
// regardless of their age.
var DefaultSkipTokens = []string{"latest"}

// NormalizeExtensions lowercases each extension and ensures a leading dot,
// so ".JSON", "json" and ".json" all normalize to ".json".
func NormalizeExtensions(exts []string) []string {
	normalized := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}

// matchesExtension reports whether the filename's suffix is in the
// normalized extension set. The comparison is case-insensitive on the
// filename side; exts must already be normalized.
func matchesExtension(name string, exts []string) bool {
	suffix := strings.ToLower(filepath.Ext(name))
	for _, ext := range exts {
		if suffix == ext {
			return true
		}
	}
	return false
}

// ShouldSkip reports whether the base filename contains any of the given
// tokens, case-insensitively. Matching any single token is sufficient.
func ShouldSkip(name string, tokens []string) bool {
	lower := strings.ToLower(name)
	for _, token := range tokens {
		if strings.Contains(lower, strings.ToLower(token)) {
			return true
		}
	}
	return false
}
