package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestOwnDir_Empty(t *testing.T) {
	_, err := OwnDir("")
	if !errors.Is(err, ErrOwnPathEmpty) {
		t.Fatalf("OwnDir(\"\") error = %v, want ErrOwnPathEmpty", err)
	}
}

func TestOwnDir_Missing(t *testing.T) {
	_, err := OwnDir(filepath.Join(t.TempDir(), "no-such-launcher"))
	if err == nil {
		t.Fatal("OwnDir on a missing path should fail")
	}
}

func TestOwnDir_Absolute(t *testing.T) {
	dir := t.TempDir()
	launcher := filepath.Join(dir, "launcher")
	if err := os.WriteFile(launcher, []byte("stub"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := OwnDir(launcher)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("OwnDir = %q, want %q", got, want)
	}
}

func TestOwnDir_WorkingDirIndependent(t *testing.T) {
	dir := t.TempDir()
	launcher := filepath.Join(dir, "launcher")
	if err := os.WriteFile(launcher, []byte("stub"), 0o755); err != nil {
		t.Fatal(err)
	}

	want, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}

	// Resolve the same launcher from two different working directories
	// using a relative path: the answer must not change.
	orig, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
	for _, cwd := range []string{dir, t.TempDir()} {
		if err := os.Chdir(cwd); err != nil {
			t.Fatal(err)
		}
		rel, err := filepath.Rel(cwd, launcher)
		if err != nil {
			t.Fatal(err)
		}
		got, err := OwnDir(rel)
		if err != nil {
			t.Fatalf("OwnDir(%q) from %q: %v", rel, cwd, err)
		}
		if got != want {
			t.Errorf("OwnDir(%q) from %q = %q, want %q", rel, cwd, got, want)
		}
	}
}

func TestOwnDir_FollowsSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on Windows")
	}

	realDir := t.TempDir()
	launcher := filepath.Join(realDir, "launcher")
	if err := os.WriteFile(launcher, []byte("stub"), 0o755); err != nil {
		t.Fatal(err)
	}

	linkDir := t.TempDir()
	link := filepath.Join(linkDir, "launcher")
	if err := os.Symlink(launcher, link); err != nil {
		t.Fatal(err)
	}

	got, err := OwnDir(link)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want, err := filepath.EvalSymlinks(realDir)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("OwnDir through symlink = %q, want real dir %q", got, want)
	}
}
