package main

import "github.com/InternatManhole/plugin-log/cmd"

// main is the entry point for the plugin-log CLI. It initializes and executes the root command.
func main() {
	cmd.Execute()
}
