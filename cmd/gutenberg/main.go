// Package main provides the entry point for the gutenberg CLI tool.
package main

import (
	"github.com/gutenberg-print/gutenberg-go/cmd/gutenberg/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
