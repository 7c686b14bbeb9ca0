// Package main is the entry point for the stackplan CLI.
//
// stackplan renders layered environment configuration into a
// dependency-ordered provisioning plan and publishes it for execution.
// It provides a stateless, declarative approach: the same configuration
// always produces the same plan.
//
// Commands: init, synth, deploy, outputs, version, completion.
//
// For detailed usage information, run:
//
//	stackplan --help
package main

import (
	"fmt"
	"os"

	"github.com/martiops/stackplan/cmd/stackplan/commands"
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
