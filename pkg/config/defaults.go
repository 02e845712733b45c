package config

// Default values for configuration fields.
const (
	// Target defaults
	DefaultRetentionDays = 5

	// Schedule defaults
	DefaultSchedule = "0 3 * * *"

	// Logging defaults
	DefaultLoggingLevel  = "info"
	DefaultLoggingFormat = "json"

	// Metrics defaults
	DefaultMetricsListenAddress = "127.0.0.1:9155"
	DefaultMetricsPath          = "/metrics"
	DefaultMetricsNamespace     = "sweeper"
)

// DefaultExtensions is the default file suffix allow list for a target.
var DefaultExtensions = []string{".json"}

// DefaultSkipTokens is the default skip-token list for a target.
var DefaultSkipTokens = []string{"latest"}

// ApplyDefaults fills unset configuration fields with their default values.
// A target with days 0 in YAML is indistinguishable from an unset field and
// receives the default window; negative values are clamped to 0 later, at
// prune time.
func ApplyDefaults(cfg *Config) {
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultSchedule
	}

	for i := range cfg.Targets {
		target := &cfg.Targets[i]
		if target.Days == 0 {
			target.Days = DefaultRetentionDays
		}
		if len(target.Extensions) == 0 {
			target.Extensions = append([]string(nil), DefaultExtensions...)
		}
		if len(target.SkipTokens) == 0 {
			target.SkipTokens = append([]string(nil), DefaultSkipTokens...)
		}
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = DefaultLoggingFormat
	}

	if cfg.Metrics.ListenAddress == "" {
		cfg.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}
