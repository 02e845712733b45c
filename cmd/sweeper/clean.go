package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"calypso-hq/sweeper/pkg/cleanup"
	"calypso-hq/sweeper/pkg/cli"
)

var cleanFlags struct {
	path       string
	days       int
	extensions []string
	skipTokens []string
	dryRun     bool
	format     string
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Delete dated files older than N days",
	Long: `Run one cleanup pass over a directory tree.

Every regular file whose extension is on the allow list, whose name matches
no skip token, and whose name contains a date strictly older than the
retention window is removed. A missing target directory is not an error.

Examples:
  # Remove .json files older than 5 days
  sweeper clean --path cache --days 5

  # Multiple extensions
  sweeper clean --path reports --days 5 --extensions .html,.json

  # Protect files containing "_latest" or "pinned"
  sweeper clean --path cache --skip-token _latest --skip-token pinned

  # Preview without deleting
  sweeper clean --path cache --days 5 --dry-run

  # JSON report for CI/CD
  sweeper clean --path cache --days 5 --format json`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVar(&cleanFlags.path, "path", "", "target directory to scan")
	cleanCmd.Flags().IntVar(&cleanFlags.days, "days", 5, "retention window in days (files strictly older will be removed)")
	cleanCmd.Flags().StringSliceVar(&cleanFlags.extensions, "extensions", []string{".json"}, "file extensions to include (case-insensitive)")
	cleanCmd.Flags().StringArrayVar(&cleanFlags.skipTokens, "skip-token", []string{"latest"}, "filename substrings to skip; can be provided multiple times")
	cleanCmd.Flags().BoolVar(&cleanFlags.dryRun, "dry-run", false, "show what would be deleted without removing files")
	cleanCmd.Flags().StringVar(&cleanFlags.format, "format", "text", "report format: text, json")

	_ = cleanCmd.MarkFlagRequired("path")
}

func runClean(cmd *cobra.Command, args []string) error {
	slog.SetDefault(newLogger("info", "text"))

	// Explicit --skip-token occurrences append to the default list rather
	// than replacing it, so "latest" snapshot files stay protected even
	// when extra tokens are given.
	skipTokens := cleanFlags.skipTokens
	if cmd.Flags().Changed("skip-token") {
		skipTokens = append(append([]string{}, cleanup.DefaultSkipTokens...), skipTokens...)
	}

	pruner := cleanup.NewPruner(&cleanup.Config{
		Root:          cleanFlags.path,
		RetentionDays: cleanFlags.days,
		Extensions:    cleanFlags.extensions,
		SkipTokens:    skipTokens,
		DryRun:        cleanFlags.dryRun,
	})

	// In JSON mode the report object is the whole contract; the text lines
	// are suppressed.
	if cleanFlags.format == string(cli.FormatJSON) {
		pruner.SetOutput(io.Discard)
	}

	result, err := pruner.Prune(cmd.Context())
	if err != nil {
		return cli.NewCommandError("clean", err)
	}

	if cleanFlags.format == string(cli.FormatJSON) {
		formatter := &cli.JSONFormatter{Indent: true}
		return formatter.FormatTo(os.Stdout, result)
	}

	return nil
}
