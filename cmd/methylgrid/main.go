package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/methylgrid/methylgrid/internal/cli"
)

// main is the entrypoint for the methylgrid planner.
func main() {
	// Use a minimal logger until the CLI configures the real one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing.
func run(outW, errW io.Writer, args []string) error {
	root := cli.NewRootCmd(outW, errW)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}
