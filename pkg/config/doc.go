// Package config provides YAML-based configuration for sweeper.
//
// Configuration is loaded in a fixed sequence: parse the YAML file, apply
// defaults, apply SWEEPER_* environment variable overrides, then validate.
// Validation errors are collected into a single ValidationError listing
// every failing field.
//
//	cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// In daemon mode the file can additionally be hot-reloaded through Watcher,
// which debounces filesystem events on the containing directory.
package config
