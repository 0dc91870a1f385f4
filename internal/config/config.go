// Package config handles loading todolist.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// ProjectFile is the name of the per-directory config file.
const ProjectFile = "todolist.toml"

// Config represents the todolist.toml configuration file.
type Config struct {
	Store   Store   `toml:"store"`
	Display Display `toml:"display"`
}

// Store contains persistence configuration.
type Store struct {
	// Backend selects the storage backend (file, sqlite, memory).
	Backend string `toml:"backend"`

	// Path is the storage directory (file) or database file (sqlite).
	// Empty selects the default under the user's data directory.
	Path string `toml:"path"`

	// Key names the slot holding the list.
	Key string `toml:"key"`

	// Strict fails to start on malformed persisted data instead of
	// discarding it.
	Strict bool `toml:"strict"`
}

// Display contains output configuration.
type Display struct {
	// Locale selects the date layout for new todos.
	Locale string `toml:"locale"`
}

// LoadOptions configures Load.
type LoadOptions struct {
	// Dir is searched for ProjectFile. Ignored when File is set.
	Dir string

	// File replaces the project config file when non-empty. A missing
	// explicit file is an error.
	File string
}

// Load loads configuration from the global config file and the project
// config file. Project values win per key. Returns an empty config if no
// config files exist.
func Load(opts LoadOptions) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath, false)
	if err != nil {
		return nil, err
	}

	projectPath := opts.File
	required := projectPath != ""
	if projectPath == "" {
		projectPath = filepath.Join(opts.Dir, ProjectFile)
	}
	projectCfg, projectMeta, err := loadConfigFile(projectPath, required)
	if err != nil {
		return nil, err
	}

	return mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta), nil
}

func globalConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "todolist", "config.toml"), nil
}

func loadConfigFile(path string, required bool) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !required {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Store.Backend = mergeString(projectMeta.IsDefined("store", "backend"), projectCfg.Store.Backend, globalCfg.Store.Backend)
	merged.Store.Path = mergeString(projectMeta.IsDefined("store", "path"), projectCfg.Store.Path, globalCfg.Store.Path)
	merged.Store.Key = mergeString(projectMeta.IsDefined("store", "key"), projectCfg.Store.Key, globalCfg.Store.Key)
	merged.Display.Locale = mergeString(projectMeta.IsDefined("display", "locale"), projectCfg.Display.Locale, globalCfg.Display.Locale)
	if projectMeta.IsDefined("store", "strict") {
		merged.Store.Strict = projectCfg.Store.Strict
	} else if globalMeta.IsDefined("store", "strict") {
		merged.Store.Strict = globalCfg.Store.Strict
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
