package main

import (
	"fmt"
	"io"
	"os"

	"work-journal/internal/cli"
	"work-journal/internal/config"
	"work-journal/internal/errors"
)

func main() {
	os.Exit(run(os.Stderr))
}

// run executes wj and returns the process exit status
func run(stderr io.Writer) int {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
		return errors.ExitConfig
	}
	applyEnvironment(getEnvironment(), cfg)

	root := cli.NewRootCommand(cfg, cli.DefaultAPIFactory)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return cli.NewErrorHandler().ExitCode(err)
	}
	return errors.ExitOK
}
