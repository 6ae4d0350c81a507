package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/hashicorp/go-hclog"
)

// ExitCodeError carries the companion's exit code back to the launcher
// boundary so it can be forwarded as the process exit status.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("companion exited with code %d", e.Code)
}

// ExitCode maps a delegation error to the status the launcher process
// must exit with. A companion that called its exit primitive with N
// yields exactly N.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var coded *ExitCodeError
	if errors.As(err, &coded) {
		return coded.Code
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return ExitExecutionError
}

// Prepare builds the companion command. Stdio is inherited and the
// environment passes through untouched - the launcher adds nothing of
// its own to the delegated call.
func Prepare(companionPath string, args []string) *exec.Cmd {
	cmd := exec.Command(companionPath, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	return cmd
}

// Delegate transfers control to the companion, handling both exec and
// spawn modes. Exec mode never returns on success; spawn mode returns
// nil on a zero exit and an ExitCodeError otherwise.
func Delegate(cmd *exec.Cmd, useExec bool, logger hclog.Logger) error {
	if useExec {
		return delegateExec(cmd, logger)
	}
	return delegateSpawn(cmd, logger)
}

// delegateSpawn runs the companion as a child process and waits for it.
func delegateSpawn(cmd *exec.Cmd, logger hclog.Logger) error {
	logger.Debug("👶 Using spawn mode (child process)")
	logger.Debug("🚀 Delegating to companion", "path", cmd.Path, "args", cmd.Args[1:])

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start companion: %w", err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debug("⏹️ Companion exited", "code", exitErr.ExitCode())
			return &ExitCodeError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("companion process error: %w", err)
	}

	logger.Debug("✅ Companion completed successfully")
	return nil
}
