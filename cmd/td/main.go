// Package main implements the td CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "td",
	Short: "td - a single-list todo manager",
	Long: `td keeps one todo list in a key-value slot.

Every change is written back to storage before the command returns.
Storage, slot key, and date locale come from ~/.config/todolist/config.toml
and ./todolist.toml, and can be overridden with flags.`,
	SilenceUsage: true,
}

var (
	rootConfigFile string
	rootBackend    string
	rootPath       string
	rootKey        string
	rootLocale     string
	rootStrict     bool
	rootVerbose    bool
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootConfigFile, "config", "", "Config file to use instead of ./todolist.toml")
	flags.StringVar(&rootBackend, "backend", "", "Storage backend (file, sqlite, memory)")
	flags.StringVar(&rootPath, "path", "", "Storage directory (file) or database file (sqlite)")
	flags.StringVar(&rootKey, "key", "", "Storage slot holding the list (default \"todos\")")
	flags.StringVar(&rootLocale, "locale", "", "Date locale for new todos (default \"en-US\")")
	flags.BoolVar(&rootStrict, "strict", false, "Fail on malformed stored todos instead of discarding them")
	flags.BoolVarP(&rootVerbose, "verbose", "v", false, "Log every operation to stderr")
}
