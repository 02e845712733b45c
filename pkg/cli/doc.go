// Package cli provides shared helpers for the sweeper command layer:
// typed command and config errors, JSON report formatting and
// signal-driven shutdown contexts.
package cli
