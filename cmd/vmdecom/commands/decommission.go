package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/vmdecom/cmd/vmdecom/handlers"
)

// Decommission returns the decommission command.
//
// The command searches the endpoint fleet for the named VM, powers it
// off, and renames it with the _DoNotPowerOn- prefix.
func Decommission() *cobra.Command {
	var opts handlers.DecommissionOptions

	cmd := &cobra.Command{
		Use:     "decommission NAME",
		Aliases: []string{"decom"},
		Short:   "Power off a virtual machine and mark it decommissioned",
		Long: `Decommission locates the named virtual machine across the configured
vCenter endpoints (searched in order, first match wins), powers it off,
and renames it with the _DoNotPowerOn- prefix.

A running VM first gets a guest shutdown request. If it is still running
after the shutdown window (default 60s, checked every 5s), it is
forcibly stopped. VMs that are already off, or already carry the
decommission name, are left alone for that step.

Every endpoint connection opened during the run is closed before the
command exits, whatever the outcome.

Examples:
  vmdecom decommission web01 -u admin@vsphere.local
  vmdecom decommission web01 -u admin@vsphere.local -c fleet.yaml
  vmdecom decommission web01 -u admin@vsphere.local --endpoint vcsa-lab01.example.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.VMName = args[0]
			return handlers.Decommission(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to fleet configuration file")
	cmd.Flags().StringVarP(&opts.Username, "username", "u", "", "vCenter username (required)")
	cmd.Flags().StringVarP(&opts.Password, "password", "p", "", "vCenter password (prompted when omitted)")
	cmd.Flags().StringArrayVar(&opts.Endpoints, "endpoint", nil, "vCenter endpoint, repeatable; overrides the configured fleet")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "Path of the append-only run log")
	cmd.Flags().BoolVarP(&opts.Insecure, "insecure", "k", false, "Skip TLS certificate verification")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
