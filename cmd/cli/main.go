// Package main is the entry point for the planedeals CLI.
package main

import (
	"os"

	"github.com/jackzhaolt/plane-ticket-query/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
