package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/dataheck/tickload/internal/cli"
	"github.com/dataheck/tickload/pkg/tickload"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(tickload.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(tickload.ExitCodeForError(err))
	}
}
