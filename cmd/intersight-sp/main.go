// Package main is the entry point for the intersight-sp CLI.
//
// intersight-sp provisions Cisco Intersight server profiles from a server
// profile template. For every profile in the inventory it clones the
// template, reserves the requested WWPNs in their FC pools, binds the
// reservations to the vHBAs and attaches the profile to the template again.
//
// Commands: create, plan, version, completion.
//
// For detailed usage information, run:
//
//	intersight-sp --help
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/imamik/intersight-sp/cmd/intersight-sp/commands"
	"github.com/imamik/intersight-sp/internal/ui/confirm"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Root().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, confirm.ErrDeclined):
		fmt.Fprintln(os.Stdout, "Aborted")
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(commands.ExitCode(err))
}
