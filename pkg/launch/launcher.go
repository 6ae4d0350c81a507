// Package launch runs the bootstrap sequence: resolve the launcher's
// own directory, put it at the head of the companion search order, and
// hand control to the companion program. Nothing in this package runs
// at import time; only an explicit Launch call starts the sequence.
package launch

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/pkgrun/sidekick/pkg/logging"
	"github.com/pkgrun/sidekick/pkg/resolve"
)

// CompanionName is the program the launcher looks for beside itself.
const CompanionName = "sidekick"

// Launch performs the whole sequence for the launcher binary. Arguments
// are passed through to the companion unexamined. On success control
// does not return here: exec mode replaces the process, spawn mode
// exits with the companion's code. Failures exit with the codes in
// exitcodes.go.
func Launch(exePath string, args []string) {
	logger := newLauncherLogger()

	ownDir, err := resolve.OwnDir(exePath)
	if err != nil {
		logger.Error("❌ Failed to resolve launcher directory", "error", err)
		fmt.Fprintf(os.Stderr, "Failed to resolve launcher directory: %v\n", err)
		os.Exit(ExitResolveError)
	}
	logger.Debug("📍 Resolved launcher directory", "path", ownDir)

	// Sibling directory goes to the head of the order so a co-located
	// companion shadows any same-named program on PATH.
	search := resolve.NewSearchPath()
	search.Prepend(ownDir)

	companion, err := search.Locate(CompanionName)
	if err != nil {
		logger.Error("❌ Failed to locate companion", "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(ExitLocateError)
	}
	logger.Debug("🧭 Companion located", "path", companion)

	cmd := Prepare(companion, args)

	if err := Delegate(cmd, useExecMode(logger), logger); err != nil {
		code := ExitCode(err)
		if code == ExitExecutionError {
			logger.Error("❌ Failed to delegate to companion", "error", err)
			fmt.Fprintf(os.Stderr, "Failed to delegate to companion: %v\n", err)
		}
		os.Exit(code)
	}

	os.Exit(0)
}

// useExecMode decides between process replacement and a child process.
// SIDEKICK_EXEC_MODE=spawn forces spawn; Windows always spawns.
func useExecMode(logger hclog.Logger) bool {
	if runtime.GOOS == "windows" {
		return false
	}
	if strings.EqualFold(os.Getenv("SIDEKICK_EXEC_MODE"), "spawn") {
		logger.Debug("👶 Spawn mode forced via SIDEKICK_EXEC_MODE")
		return false
	}
	return true
}

// newLauncherLogger builds the launcher's logger from the environment:
// SIDEKICK_LAUNCHER_LOG_LEVEL overrides SIDEKICK_LOG_LEVEL, and
// SIDEKICK_LOG_PATH redirects output to a file.
func newLauncherLogger() hclog.Logger {
	level := os.Getenv("SIDEKICK_LAUNCHER_LOG_LEVEL")
	if level == "" {
		level = logging.GetLogLevel()
	}

	var output io.Writer = os.Stderr
	if logPath := os.Getenv("SIDEKICK_LOG_PATH"); logPath != "" {
		if file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			output = file
		}
	}

	return logging.NewLogger("sidekick-launcher", level, output)
}
