package cleanup

import (
	"io/fs"
	"path/filepath"
	"time"
)

// Candidate is a discovered file paired with the date embedded in its name.
// Candidates exist only transiently during a pass.
type Candidate struct {
	Path string
	Date time.Time
}

// Scan walks root recursively and reduces the tree to the files eligible for
// age evaluation: regular files whose suffix is in exts, whose name matches
// no skip token, and whose name yields an extractable date. Directories are
// traversal vehicles only, never candidates.
//
// exts must already be normalized with NormalizeExtensions. The returned
// slice follows traversal order and is not sorted.
func Scan(root string, exts, skipTokens []string) ([]Candidate, error) {
	var candidates []Candidate

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		name := d.Name()
		if !matchesExtension(name, exts) {
			return nil
		}
		if ShouldSkip(name, skipTokens) {
			return nil
		}
		date, ok := ExtractDate(name)
		if !ok {
			return nil
		}
		candidates = append(candidates, Candidate{Path: path, Date: date})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return candidates, nil
}
