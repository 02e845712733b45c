// Sweeper prunes dated artifact files (cache entries, reports) from a
// directory tree based on a filename-embedded date and a retention window.
//
// Files are deleted only when:
//   - The filename contains a date (YYYYMMDD or YYYY-MM-DD).
//   - The file extension matches the allowed list.
//   - The extracted date is older than the configured retention window.
//
// Usage:
//
//	# Remove .json cache files older than 5 days
//	sweeper clean --path cache --days 5
//
//	# Multiple extensions and a custom skip token
//	sweeper clean --path cache --days 5 --extensions .json,.csv --skip-token _latest
//
//	# Preview without deleting
//	sweeper clean --path reports --days 5 --dry-run
//
//	# Run as a daemon sweeping configured targets on a cron schedule
//	sweeper run --config config.yaml
//
//	# Validate a configuration file
//	sweeper validate --config config.yaml
package main

func main() {
	Execute()
}
