package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirEnvVar overrides the default data directory.
const DataDirEnvVar = "TODOLIST_DATA_DIR"

// DefaultDataDir returns the default todolist data directory.
func DefaultDataDir() (string, error) {
	if dir := os.Getenv(DataDirEnvVar); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "todolist"), nil
}

// DefaultDatabasePath returns the default sqlite database location.
func DefaultDatabasePath() (string, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "todos.db"), nil
}

// WorkingDir returns the current working directory.
func WorkingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return cwd, nil
}

// ResolveWithDefault returns override when set, otherwise the result of defaultFn.
func ResolveWithDefault(override string, defaultFn func() (string, error)) (string, error) {
	if override != "" {
		return override, nil
	}
	return defaultFn()
}
