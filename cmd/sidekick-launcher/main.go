package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/pkgrun/sidekick/pkg/launch"
)

func main() {
	// Set up panic recovery to return specific exit code
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			debug.PrintStack()
			os.Exit(launch.ExitPanic)
		}
	}()

	exePath, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get executable path: %v\n", err)
		os.Exit(launch.ExitResolveError)
	}

	// All arguments are passed through to the companion unexamined.
	// Note: Launch calls os.Exit directly on error and does not return
	// on success.
	launch.Launch(exePath, os.Args[1:])
}
