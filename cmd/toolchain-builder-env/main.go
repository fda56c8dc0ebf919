package main

import (
	"os"

	"github.com/hbjs97/qrew-toolchain/internal/cli"
)

func main() {
	app := cli.NewBuilderApp()
	cmd := app.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(int(cli.MapExitCode(err)))
	}
}
