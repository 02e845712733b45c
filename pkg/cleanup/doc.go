// Package cleanup prunes dated artifact files from a directory tree.
//
// # Overview
//
// Files are deleted only when all of the following hold:
//
//   - The filename contains an embedded date (YYYY-MM-DD or YYYYMMDD).
//   - The file extension matches the configured allow list.
//   - The filename contains none of the configured skip tokens.
//   - The extracted date is strictly older than the retention window.
//
// # Basic Usage
//
//	pruner := cleanup.NewPruner(&cleanup.Config{
//	    Root:          "cache/",
//	    RetentionDays: 5,
//	    Extensions:    []string{".json", ".csv"},
//	    SkipTokens:    []string{"latest"},
//	})
//
//	result, err := pruner.Prune(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Printf("removed %d file(s)", result.Removed)
//
// # Retention Window
//
// The window is a whole number of days. A file aged exactly at the window is
// retained: with RetentionDays of 5, files up to and including 5 days old
// survive. Files carrying a future date are always retained. Negative windows
// are clamped to zero.
//
// # Dry Run
//
// With Config.DryRun set, the pruner performs every step of a real pass,
// including the per-file report lines and the removal count, but never calls
// the filesystem removal. Dry-run output is a faithful preview of a real run.
package cleanup
