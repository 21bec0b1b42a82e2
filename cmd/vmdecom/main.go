// Package main is the entry point for the vmdecom CLI.
//
// vmdecom decommissions a virtual machine: it locates the VM by name
// across a fixed fleet of vCenter endpoints, powers it off (gracefully
// when the guest cooperates, forcibly when it does not), and renames it
// with the _DoNotPowerOn- prefix so nobody powers it back on.
//
// For detailed usage information, run:
//
//	vmdecom --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/vmdecom/cmd/vmdecom/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
