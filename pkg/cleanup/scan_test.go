package cleanup

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()

	writeFile(t, filepath.Join(root, "report_20250101.json"))
	writeFile(t, filepath.Join(root, "nested", "deep", "picks-2025-02-03.json"))
	writeFile(t, filepath.Join(root, "wrong_ext_20250101.csv"))
	writeFile(t, filepath.Join(root, "data_latest_20250101.json"))
	writeFile(t, filepath.Join(root, "undated.json"))
	writeFile(t, filepath.Join(root, "invalid_20250230.json"))

	exts := NormalizeExtensions([]string{".json"})
	candidates, err := Scan(root, exts, DefaultSkipTokens)
	if err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}

	reportPath := filepath.Join(root, "report_20250101.json")
	picksPath := filepath.Join(root, "nested", "deep", "picks-2025-02-03.json")
	want := map[string]time.Time{
		reportPath: date(2025, time.January, 1),
		picksPath:  date(2025, time.February, 3),
	}

	if len(candidates) != len(want) {
		t.Fatalf("Scan() returned %d candidates, want %d: %v", len(candidates), len(want), candidates)
	}
	for _, c := range candidates {
		wantDate, ok := want[c.Path]
		if !ok {
			t.Errorf("unexpected candidate %s", c.Path)
			continue
		}
		if !c.Date.Equal(wantDate) {
			t.Errorf("candidate %s has date %s, want %s", c.Path, c.Date, wantDate)
		}
	}
}

func TestScanDirectoriesAreNotCandidates(t *testing.T) {
	root := t.TempDir()

	// A directory whose name looks like a dated .json artifact.
	if err := os.MkdirAll(filepath.Join(root, "archive_20200101.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	candidates, err := Scan(root, NormalizeExtensions([]string{".json"}), DefaultSkipTokens)
	if err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}
	if len(candidates) != 0 {
		t.Errorf("expected no candidates, got %v", candidates)
	}
}
