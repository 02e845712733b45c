package cleanup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// Config contains configuration for a single cleanup pass.
type Config struct {
	// Root is the directory to scan. A missing root is a no-op, not an
	// error.
	Root string

	// RetentionDays is the retention window in days. Files strictly older
	// than the window are deleted; files aged exactly at the window are
	// retained. Negative values are clamped to 0.
	RetentionDays int

	// Extensions is the file suffix allow list. Entries are normalized
	// (lowercase, dot-prefixed) before use. Empty means DefaultExtensions.
	Extensions []string

	// SkipTokens are case-insensitive substrings that protect a file from
	// deletion regardless of age. Empty means DefaultSkipTokens.
	SkipTokens []string

	// DryRun reports and counts eligible files without removing anything.
	DryRun bool
}

// DefaultConfig returns the default pass configuration.
func DefaultConfig() *Config {
	return &Config{
		RetentionDays: 5,
		Extensions:    DefaultExtensions,
		SkipTokens:    DefaultSkipTokens,
	}
}

// Record describes one deleted (or, in dry-run mode, would-be-deleted) file.
type Record struct {
	Path    string    `json:"path"`
	Date    time.Time `json:"date"`
	AgeDays int       `json:"age_days"`
}

// Result summarizes a cleanup pass.
type Result struct {
	RunID      string    `json:"run_id"`
	Root       string    `json:"root"`
	DryRun     bool      `json:"dry_run"`
	Removed    int       `json:"removed"`
	Records    []Record  `json:"records,omitempty"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// Pruner applies a retention window to dated artifact files under a root
// directory. A pruner performs one synchronous pass per Prune call and keeps
// no state between passes.
type Pruner struct {
	config *Config
	logger *slog.Logger
	out    io.Writer

	// now is hoisted out of the candidate loop so a long scan cannot
	// straddle a day boundary; overridable in tests.
	now func() time.Time
}

// NewPruner creates a pruner for the given configuration.
func NewPruner(config *Config) *Pruner {
	if config == nil {
		config = DefaultConfig()
	}

	return &Pruner{
		config: config,
		logger: slog.Default().With("component", "cleanup.pruner"),
		out:    os.Stdout,
		now:    time.Now,
	}
}

// SetOutput redirects the per-file and summary report lines. The default is
// os.Stdout.
func (p *Pruner) SetOutput(w io.Writer) {
	p.out = w
}

// Prune scans the root once, deletes every candidate whose age strictly
// exceeds the retention window, and returns a summary of the pass.
//
// Deletion is best-effort idempotent: a candidate that vanished between
// discovery and removal still counts as removed. Traversal or removal
// failures other than a missing file abort the pass with an error.
func (p *Pruner) Prune(ctx context.Context) (*Result, error) {
	result := &Result{
		RunID:     uuid.NewString(),
		Root:      p.config.Root,
		DryRun:    p.config.DryRun,
		StartedAt: p.now(),
	}

	if _, err := os.Stat(p.config.Root); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(p.out, "[CLEANUP] Directory %s does not exist. Nothing to do.\n", p.config.Root)
		p.logger.Info("target directory missing, nothing to do",
			"run_id", result.RunID,
			"root", p.config.Root,
		)
		result.FinishedAt = p.now()
		return result, nil
	}

	keepDays := p.config.RetentionDays
	if keepDays < 0 {
		keepDays = 0
	}

	exts := p.config.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	exts = NormalizeExtensions(exts)

	skipTokens := p.config.SkipTokens
	if len(skipTokens) == 0 {
		skipTokens = DefaultSkipTokens
	}

	candidates, err := Scan(p.config.Root, exts, skipTokens)
	if err != nil {
		return result, fmt.Errorf("scan of %s failed: %w", p.config.Root, err)
	}

	today := truncateToDay(p.now())

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		age := ageInDays(today, candidate.Date)
		if age <= keepDays {
			continue
		}

		fmt.Fprintf(p.out, "[CLEANUP] %s -> dated %s (%d days old)\n",
			candidate.Path, candidate.Date.Format("2006-01-02"), age)

		if !p.config.DryRun {
			if err := os.Remove(candidate.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return result, fmt.Errorf("failed to remove %s: %w", candidate.Path, err)
			}
		}

		result.Removed++
		result.Records = append(result.Records, Record{
			Path:    candidate.Path,
			Date:    candidate.Date,
			AgeDays: age,
		})
	}

	dryRun := "no"
	if p.config.DryRun {
		dryRun = "yes"
	}
	fmt.Fprintf(p.out, "[CLEANUP] Completed scanning %s. Removed %d file(s). Dry-run: %s.\n",
		p.config.Root, result.Removed, dryRun)

	result.FinishedAt = p.now()
	p.logger.Info("cleanup pass completed",
		"run_id", result.RunID,
		"root", p.config.Root,
		"removed", result.Removed,
		"retention_days", keepDays,
		"dry_run", p.config.DryRun,
	)

	return result, nil
}

// truncateToDay strips the time-of-day component, leaving a UTC calendar
// date comparable with extracted filename dates.
func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ageInDays returns the whole number of days between two midnight-aligned
// dates. A future date yields a negative age.
func ageInDays(today, date time.Time) int {
	return int(today.Sub(date) / (24 * time.Hour))
}
