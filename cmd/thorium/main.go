package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/thoriumgroup/thorium/internal/app"
	"github.com/thoriumgroup/thorium/internal/cli"
)

// main is the entrypoint for the thorium activation harness.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to provide
	// a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	thoriumApp := app.NewApp(outW, appConfig)
	session, err := thoriumApp.Run(context.Background())
	if err != nil {
		return err
	}
	defer session.Close()

	// Individual module failures were already contained and logged; they do
	// not fail the process.
	return nil
}
