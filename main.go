// main is the entry point for the contribs CLI.
package main

import (
	"os"

	"github.com/contribs-dev/contribs/cmd"
	"github.com/fatih/color"
)

func main() {
	if err := cmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
