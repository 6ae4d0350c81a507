//go:build windows

package launch

import (
	"os/exec"

	"github.com/hashicorp/go-hclog"
)

// delegateExec on Windows falls back to spawn mode: process replacement
// is not supported by the platform.
func delegateExec(cmd *exec.Cmd, logger hclog.Logger) error {
	logger.Debug("💻 Windows detected - using spawn mode (exec mode not supported)")
	return delegateSpawn(cmd, logger)
}
