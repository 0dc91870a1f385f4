package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultDataDirUsesHome(t *testing.T) {
	t.Setenv("HOME", filepath.Join("/tmp", "test-home"))
	t.Setenv(DataDirEnvVar, "")

	dir, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := filepath.Join("/tmp", "test-home", ".local", "share", "todolist")
	if dir != expected {
		t.Fatalf("expected %s, got %s", expected, dir)
	}
}

func TestDefaultDataDirUsesEnvOverride(t *testing.T) {
	t.Setenv(DataDirEnvVar, "/srv/todos")

	dir, err := DefaultDataDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if dir != "/srv/todos" {
		t.Fatalf("expected /srv/todos, got %s", dir)
	}
}

func TestDefaultDatabasePath(t *testing.T) {
	t.Setenv(DataDirEnvVar, "/srv/todos")

	path, err := DefaultDatabasePath()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if path != filepath.Join("/srv/todos", "todos.db") {
		t.Fatalf("unexpected path %s", path)
	}
}

func TestWorkingDirReturnsCurrentDir(t *testing.T) {
	currentDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	workDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(currentDir)
	})

	resolved, err := WorkingDir()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resolved != workDir {
		t.Fatalf("expected %s, got %s", workDir, resolved)
	}
}

func TestResolveWithDefault(t *testing.T) {
	t.Run("returns override when provided", func(t *testing.T) {
		result, err := ResolveWithDefault("/custom/path", DefaultDataDir)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if result != "/custom/path" {
			t.Fatalf("expected /custom/path, got %s", result)
		}
	})

	t.Run("propagates error from default function", func(t *testing.T) {
		errorFn := func() (string, error) {
			return "", os.ErrNotExist
		}

		_, err := ResolveWithDefault("", errorFn)
		if err != os.ErrNotExist {
			t.Fatalf("expected os.ErrNotExist, got %v", err)
		}
	})
}
