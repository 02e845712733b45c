package config

// Config is the root configuration structure for sweeper. It describes the
// sweep targets, the daemon schedule, and telemetry settings. A config file
// is only required for the run and validate commands; the clean command is
// driven entirely by flags.
type Config struct {
	// Targets lists the directories to sweep in daemon mode. Each target
	// carries its own retention window and filters.
	Targets []TargetConfig `yaml:"targets"`

	// Schedule is a cron expression controlling when daemon-mode sweeps
	// fire. Example: "0 3 * * *" (daily at 3 AM).
	// Default: "0 3 * * *"
	Schedule string `yaml:"schedule"`

	// WatchConfig enables hot-reloading of this file in daemon mode. When
	// the file changes, the scheduler is rebuilt from the new contents.
	// Default: false
	WatchConfig bool `yaml:"watch_config"`

	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration for daemon mode.
	Metrics MetricsConfig `yaml:"metrics"`
}

// TargetConfig describes one directory tree to sweep.
type TargetConfig struct {
	// Path is the root directory to scan. A missing directory is a no-op.
	Path string `yaml:"path"`

	// Days is the retention window in days. Files strictly older than this
	// are removed; files exactly at the boundary are kept. Negative values
	// are clamped to 0.
	// Default: 5
	Days int `yaml:"days"`

	// Extensions is the file suffix allow list, case-insensitive.
	// Default: [".json"]
	Extensions []string `yaml:"extensions"`

	// SkipTokens are filename substrings that protect a file from deletion
	// regardless of age, case-insensitive.
	// Default: ["latest"]
	SkipTokens []string `yaml:"skip_tokens"`

	// DryRun reports what would be deleted without removing anything.
	// Default: false
	DryRun bool `yaml:"dry_run"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn" or "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format is the log output format: "json" or "text".
	// Default: "json"
	Format string `yaml:"format"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether the daemon exposes a metrics endpoint.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// ListenAddress is the address the metrics server binds to.
	// Default: "127.0.0.1:9155"
	ListenAddress string `yaml:"listen_address"`

	// Path is the HTTP path of the metrics endpoint.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// Namespace is the Prometheus metric namespace.
	// Default: "sweeper"
	Namespace string `yaml:"namespace"`
}
