package cleanup

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// fixedNow pins "today" to 2025-01-10 for deterministic age math.
var fixedNow = time.Date(2025, time.January, 10, 15, 4, 5, 0, time.UTC)

func newTestPruner(t *testing.T, cfg *Config) (*Pruner, *bytes.Buffer) {
	t.Helper()
	pruner := NewPruner(cfg)
	pruner.now = func() time.Time { return fixedNow }
	var out bytes.Buffer
	pruner.SetOutput(&out)
	return pruner, &out
}

func TestPrune_DeletesFilesOlderThanWindow(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "report_20250101.json") // 9 days old
	writeFile(t, target)

	pruner, out := newTestPruner(t, &Config{Root: root, RetentionDays: 5})

	result, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}

	if result.Removed != 1 {
		t.Errorf("Removed = %d, want 1", result.Removed)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Errorf("expected %s to be deleted", target)
	}

	wantLine := "[CLEANUP] " + target + " -> dated 2025-01-01 (9 days old)"
	if !strings.Contains(out.String(), wantLine) {
		t.Errorf("output missing %q, got:\n%s", wantLine, out.String())
	}
	wantSummary := "[CLEANUP] Completed scanning " + root + ". Removed 1 file(s). Dry-run: no."
	if !strings.Contains(out.String(), wantSummary) {
		t.Errorf("output missing %q, got:\n%s", wantSummary, out.String())
	}

	if len(result.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(result.Records))
	}
	if result.Records[0].AgeDays != 9 {
		t.Errorf("record age = %d, want 9", result.Records[0].AgeDays)
	}
	if result.RunID == "" {
		t.Error("expected a non-empty run ID")
	}
}

func TestPrune_RetainsFileExactlyAtBoundary(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "report_20250101.json") // 9 days old
	writeFile(t, target)

	pruner, _ := newTestPruner(t, &Config{Root: root, RetentionDays: 9})

	result, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}

	if result.Removed != 0 {
		t.Errorf("Removed = %d, want 0 (9 > 9 is false)", result.Removed)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("expected %s to survive: %v", target, err)
	}
}

func TestPrune_SkipTokenProtectsRegardlessOfAge(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "data_latest_20200101.json") // years old
	writeFile(t, target)

	pruner, _ := newTestPruner(t, &Config{Root: root, RetentionDays: 5})

	result, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}
	if result.Removed != 0 {
		t.Errorf("Removed = %d, want 0", result.Removed)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("expected %s to survive: %v", target, err)
	}
}

func TestPrune_DryRunIsAFaithfulPreview(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "report_20250101.json")
	writeFile(t, target)

	dry, dryOut := newTestPruner(t, &Config{Root: root, RetentionDays: 5, DryRun: true})
	result, err := dry.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}

	if result.Removed != 1 {
		t.Errorf("dry-run Removed = %d, want 1", result.Removed)
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("dry-run deleted %s: %v", target, err)
	}

	wantLine := "[CLEANUP] " + target + " -> dated 2025-01-01 (9 days old)"
	if !strings.Contains(dryOut.String(), wantLine) {
		t.Errorf("dry-run output missing %q, got:\n%s", wantLine, dryOut.String())
	}
	wantSummary := "Dry-run: yes."
	if !strings.Contains(dryOut.String(), wantSummary) {
		t.Errorf("dry-run output missing %q", wantSummary)
	}
}

func TestPrune_MissingRootIsNoOp(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")

	pruner, out := newTestPruner(t, &Config{Root: missing, RetentionDays: 5})

	result, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}
	if result.Removed != 0 {
		t.Errorf("Removed = %d, want 0", result.Removed)
	}
	if !strings.Contains(out.String(), "does not exist. Nothing to do.") {
		t.Errorf("expected informational message, got:\n%s", out.String())
	}
}

func TestPrune_NegativeWindowClampsToZero(t *testing.T) {
	root := t.TempDir()
	yesterday := filepath.Join(root, "report_20250109.json") // 1 day old
	today := filepath.Join(root, "report_20250110.json")     // 0 days old
	writeFile(t, yesterday)
	writeFile(t, today)

	pruner, _ := newTestPruner(t, &Config{Root: root, RetentionDays: -3})

	result, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}

	if result.Removed != 1 {
		t.Errorf("Removed = %d, want 1 (only the 1-day-old file)", result.Removed)
	}
	if _, err := os.Stat(yesterday); !os.IsNotExist(err) {
		t.Errorf("expected %s to be deleted", yesterday)
	}
	if _, err := os.Stat(today); err != nil {
		t.Errorf("expected %s to survive: %v", today, err)
	}
}

func TestPrune_FutureDatesAreRetained(t *testing.T) {
	root := t.TempDir()
	future := filepath.Join(root, "forecast_20250201.json")
	writeFile(t, future)

	pruner, _ := newTestPruner(t, &Config{Root: root, RetentionDays: 0})

	result, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}
	if result.Removed != 0 {
		t.Errorf("Removed = %d, want 0", result.Removed)
	}
	if _, err := os.Stat(future); err != nil {
		t.Errorf("expected %s to survive: %v", future, err)
	}
}

func TestPrune_MultipleExtensions(t *testing.T) {
	root := t.TempDir()
	jsonFile := filepath.Join(root, "report_20250101.json")
	htmlFile := filepath.Join(root, "report-2025-01-01.html")
	csvFile := filepath.Join(root, "report_20250101.csv")
	writeFile(t, jsonFile)
	writeFile(t, htmlFile)
	writeFile(t, csvFile)

	pruner, _ := newTestPruner(t, &Config{
		Root:          root,
		RetentionDays: 5,
		Extensions:    []string{".json", "HTML"},
	})

	result, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune() failed: %v", err)
	}

	if result.Removed != 2 {
		t.Errorf("Removed = %d, want 2", result.Removed)
	}
	if _, err := os.Stat(csvFile); err != nil {
		t.Errorf("expected %s to survive: %v", csvFile, err)
	}
}

func TestAgeInDays(t *testing.T) {
	today := truncateToDay(fixedNow)

	tests := []struct {
		date time.Time
		want int
	}{
		{date(2025, time.January, 1), 9},
		{date(2025, time.January, 10), 0},
		{date(2025, time.February, 1), -22},
	}
	for _, tt := range tests {
		if got := ageInDays(today, tt.date); got != tt.want {
			t.Errorf("ageInDays(today, %s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}
