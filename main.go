package main

import (
	"github.com/screenpilot/screenpilot-cli/cmd"
)

// main is the entry point for the screenpilot CLI.
func main() {
	cmd.Execute()
}
