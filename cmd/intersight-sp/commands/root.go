// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/imamik/intersight-sp/internal/config"
	"github.com/imamik/intersight-sp/internal/ui/confirm"
)

const envFileFlag = "env-file"

// Root returns the root command for the intersight-sp CLI.
//
// The root command carries the settings flags shared by every subcommand
// and loads the optional .env file before any of them runs.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intersight-sp",
		Short: "Provision Cisco Intersight server profiles from a template",
		Long: `Provision Cisco Intersight server profiles from a server profile template.

Credentials and connection settings are read from flags, INTERSIGHT_*
environment variables and an optional .env file, in that order of precedence.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			envFile, err := cmd.Flags().GetString(envFileFlag)
			if err != nil {
				return err
			}
			return config.LoadDotEnv(envFile)
		},
	}

	cmd.PersistentFlags().String(envFileFlag, ".env", "Load environment variables from this file if it exists")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(Create())
	cmd.AddCommand(Plan())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// ExitCode maps the result of a command to the process exit status.
// An operator declining the plan is not a failure.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, confirm.ErrDeclined) {
		return 0
	}
	return 1
}

// loadSettings resolves settings from the command's flags and the environment.
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	v, err := config.NewViper(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return config.LoadSettings(v)
}
