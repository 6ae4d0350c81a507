//go:build !windows

package launch

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/hashicorp/go-hclog"
)

// delegateExec replaces the launcher process with the companion via
// syscall.Exec. The companion's exit status becomes the process exit
// status by construction. Never returns on success.
func delegateExec(cmd *exec.Cmd, logger hclog.Logger) error {
	argv := cmd.Args
	if len(argv) == 0 {
		argv = []string{cmd.Path}
	}

	envv := cmd.Env
	if envv == nil {
		envv = os.Environ()
	}

	logger.Debug("🔄 Replacing process via exec", "binary", cmd.Path, "args", argv[1:])

	err := syscall.Exec(cmd.Path, argv, envv)

	// Only reachable when exec failed
	return fmt.Errorf("exec failed: %w", err)
}
