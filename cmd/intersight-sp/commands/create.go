package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/intersight-sp/cmd/intersight-sp/handlers"
	"github.com/imamik/intersight-sp/internal/config"
)

// Create returns the command that provisions the server profiles of an inventory.
//
// Optional flags:
//
//	--config, -c: Path to the inventory file (default: inventory_config.json)
//	--report: Write a YAML report of the run, including reservation moids
//	--metrics-file: Write API call metrics in Prometheus text format
//
// Environment variables:
//
//	INTERSIGHT_KEY_ID: Intersight API key ID (required)
//	INTERSIGHT_SECRET_KEY_PATH: Path to the API secret key (required)
func Create() *cobra.Command {
	var opts handlers.CreateOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Clone server profiles from a template and reserve their WWPNs",
		Long: `Clone server profiles from a template and reserve their WWPNs.

For every profile in the inventory, in order:
  1. Clone the server profile template into a new profile
  2. Detach the profile from the template
  3. Remove the profile from the SAN connectivity policy
  4. Reserve each requested WWPN in its pool
  5. Bind the reservations to the profile's vHBAs
  6. Add the profile back to the SAN connectivity policy
  7. Merge the template into the profile and attach it again

The plan is shown first and must be confirmed globally and for each
profile before anything is changed. The first error stops the run.
Objects created before the error are left in place.

Steps 3 and 6 read the policy, modify it and write it back. Do not run
several instances against the same policy at the same time.

Examples:
  # Provision using inventory_config.json in the current directory
  intersight-sp create

  # Use another inventory and keep a report of created moids
  intersight-sp create -c site-b.json --report site-b-report.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			return handlers.Create(cmd.Context(), settings, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", config.DefaultInventoryPath, "Path to the inventory file")
	cmd.Flags().StringVar(&opts.ReportPath, "report", "", "Write a YAML report of the run to this path")
	cmd.Flags().StringVar(&opts.MetricsPath, "metrics-file", "", "Write API metrics in Prometheus text format to this path")

	return cmd
}
