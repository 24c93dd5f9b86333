// Package main provides the entry point for the larek storefront CLI.
package main

import (
	"github.com/weblarek/weblarek/cmd/larek/cmd"
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
