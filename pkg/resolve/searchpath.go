package resolve

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// SearchPath is the ordered list of directories consulted when locating
// a companion program by name. The ambient PATH acts as the implicit
// tail of the order, so an explicit root always shadows an identically
// named program installed elsewhere on the system.
type SearchPath struct {
	roots []string
}

// NewSearchPath builds a search order from the given roots, first root
// consulted first.
func NewSearchPath(roots ...string) *SearchPath {
	sp := &SearchPath{}
	sp.roots = append(sp.roots, roots...)
	return sp
}

// Prepend inserts dir at the head of the search order.
func (sp *SearchPath) Prepend(dir string) {
	sp.roots = append([]string{dir}, sp.roots...)
}

// Roots returns a copy of the current search order for diagnostics.
func (sp *SearchPath) Roots() []string {
	out := make([]string, len(sp.roots))
	copy(out, sp.roots)
	return out
}

// Locate resolves name to the executable that the launcher would
// delegate to: each root in order, then the ambient PATH. A miss
// reports the companion name and every location searched.
func (sp *SearchPath) Locate(name string) (string, error) {
	for _, root := range sp.roots {
		for _, candidate := range candidateNames(name) {
			path := filepath.Join(root, candidate)
			if isExecutableFile(path) {
				return path, nil
			}
		}
	}

	// PATH is the tail of the order
	if resolved, err := exec.LookPath(name); err == nil {
		return resolved, nil
	}

	return "", fmt.Errorf("%w: %s (searched: %s, then PATH)",
		ErrCompanionNotFound, name, strings.Join(sp.roots, string(os.PathListSeparator)))
}

// candidateNames expands name with the platform's executable suffixes.
func candidateNames(name string) []string {
	if runtime.GOOS != "windows" {
		return []string{name}
	}
	if strings.EqualFold(filepath.Ext(name), ".exe") {
		return []string{name}
	}
	return []string{name + ".exe", name}
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}
