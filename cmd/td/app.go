package main

import (
	"context"
	"fmt"

	"github.com/amonks/todolist/internal/config"
	"github.com/amonks/todolist/internal/kv"
	"github.com/amonks/todolist/internal/logging"
	"github.com/amonks/todolist/internal/paths"
	internalstrings "github.com/amonks/todolist/internal/strings"
	"github.com/amonks/todolist/todo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// settings is the effective configuration after flags override config files.
type settings struct {
	Backend string
	Path    string
	Key     string
	Locale  string
	Strict  bool
}

// app holds the open session for one command invocation.
type app struct {
	settings settings
	logger   *zap.Logger
	storage  kv.Storage
	store    *todo.Store
	session  *todo.Session
}

func openApp(cmd *cobra.Command) (*app, error) {
	cwd, err := paths.WorkingDir()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(config.LoadOptions{Dir: cwd, File: rootConfigFile})
	if err != nil {
		return nil, err
	}
	resolved, err := resolveSettings(cfg, cmd.Flags())
	if err != nil {
		return nil, err
	}
	layout, err := todo.LayoutForLocale(resolved.Locale)
	if err != nil {
		return nil, err
	}

	logger := logging.New(logging.Options{Verbose: rootVerbose, Writer: cmd.ErrOrStderr()})
	logger.Debug("opening storage",
		zap.String("backend", resolved.Backend),
		zap.String("path", resolved.Path),
		zap.String("key", resolved.Key),
	)

	ctx := commandContext(cmd)
	storage, err := kv.Open(ctx, resolved.Backend, resolved.Path)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	store, err := todo.NewStore(storage, todo.StoreOptions{
		Key:    resolved.Key,
		Strict: resolved.Strict,
		Logger: logger,
	})
	if err != nil {
		storage.Close()
		return nil, err
	}
	session, err := todo.Open(ctx, store, todo.SessionOptions{
		DateLayout: layout,
		Logger:     logger,
	})
	if err != nil {
		storage.Close()
		return nil, err
	}

	return &app{
		settings: resolved,
		logger:   logger,
		storage:  storage,
		store:    store,
		session:  session,
	}, nil
}

func (a *app) Close() {
	if err := a.storage.Close(); err != nil {
		a.logger.Warn("close storage", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// resolveSettings applies changed flags over cfg and fills defaults.
func resolveSettings(cfg *config.Config, flags *pflag.FlagSet) (settings, error) {
	resolved := settings{
		Backend: cfg.Store.Backend,
		Path:    cfg.Store.Path,
		Key:     cfg.Store.Key,
		Locale:  cfg.Display.Locale,
		Strict:  cfg.Store.Strict,
	}
	if flags.Changed("backend") {
		resolved.Backend = rootBackend
	}
	if flags.Changed("path") {
		resolved.Path = rootPath
	}
	if flags.Changed("key") {
		resolved.Key = rootKey
	}
	if flags.Changed("locale") {
		resolved.Locale = rootLocale
	}
	if flags.Changed("strict") {
		resolved.Strict = rootStrict
	}

	resolved.Backend = internalstrings.NormalizeLowerTrimSpace(resolved.Backend)
	if resolved.Backend == "" {
		resolved.Backend = kv.BackendFile
	}
	if resolved.Key == "" {
		resolved.Key = todo.DefaultKey
	}

	var err error
	switch resolved.Backend {
	case kv.BackendFile:
		resolved.Path, err = paths.ResolveWithDefault(resolved.Path, paths.DefaultDataDir)
	case kv.BackendSQLite:
		resolved.Path, err = paths.ResolveWithDefault(resolved.Path, paths.DefaultDatabasePath)
	}
	if err != nil {
		return settings{}, err
	}
	return resolved, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
