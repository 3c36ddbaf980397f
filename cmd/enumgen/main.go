package main

import (
	"os"

	"github.com/teranos/enumgen/cmd/enumgen/commands"
	"github.com/teranos/enumgen/logger"
)

func main() {
	rootCmd := commands.NewRootCmd()
	err := rootCmd.Execute()
	logger.Cleanup()

	if err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(commands.ExitCode(err))
	}
}
