// Package resolve locates the running launcher and its companion
// program. The search order is an explicit value handed to a single
// lookup call, never process-global state.
package resolve

import (
	"fmt"
	"path/filepath"
)

// OwnDir normalizes the launcher's own location to the absolute
// directory containing it. The result is independent of the caller's
// working directory and follows symlinks, so a symlinked install still
// resolves to the real sibling directory.
func OwnDir(exePath string) (string, error) {
	if exePath == "" {
		return "", ErrOwnPathEmpty
	}

	abs, err := filepath.Abs(exePath)
	if err != nil {
		return "", fmt.Errorf("failed to absolutize %s: %w", exePath, err)
	}

	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks for %s: %w", abs, err)
	}

	return filepath.Dir(real), nil
}
