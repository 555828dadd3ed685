// Command novac runs the nova front end: token dumps, syntax trees,
// semantic checks, and the editor bridge.
package main

import (
	"os"

	"github.com/you-not-fish/nova/cmd/novac/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
