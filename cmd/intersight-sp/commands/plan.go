package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/intersight-sp/cmd/intersight-sp/handlers"
	"github.com/imamik/intersight-sp/internal/config"
)

// Plan returns the command that checks an inventory against Intersight
// without changing anything.
func Plan() *cobra.Command {
	var opts handlers.PlanOptions

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the inventory and resolve its names without making changes",
		Long: `Show the inventory and resolve its names without making changes.

Looks up the organization, SAN connectivity policy, server profile
template and every WWPN pool by name and prints their moids. Use it to
catch typos before running create.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			return handlers.Plan(cmd.Context(), settings, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", config.DefaultInventoryPath, "Path to the inventory file")

	return cmd
}
