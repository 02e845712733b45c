package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"calypso-hq/sweeper/pkg/cli"
	"calypso-hq/sweeper/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a sweeper configuration file",
	Long: `Validate a configuration file without running any sweep.

Checks YAML syntax, the cron schedule, logging settings and sweep targets,
and reports every failing field.

Examples:
  sweeper validate --config config.yaml`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigWithEnvOverrides(cfgFile)
	if err != nil {
		var verr config.ValidationError
		if errors.As(err, &verr) {
			for _, fieldErr := range verr.Errors {
				fmt.Printf("✗ %s\n", fieldErr.Error())
			}
		} else {
			fmt.Printf("✗ %v\n", err)
		}
		return cli.NewCommandError("validate", fmt.Errorf("configuration invalid"))
	}

	fmt.Println("✓ Configuration valid")
	fmt.Printf("  %d target(s), schedule %q\n", len(cfg.Targets), cfg.Schedule)
	return nil
}
