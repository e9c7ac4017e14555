// Package cmd provides the CLI commands for the todo application.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/config"
	"github.com/wexinc/todo/internal/logging"
	"github.com/wexinc/todo/internal/repl"
	"github.com/wexinc/todo/internal/storage"
	"github.com/wexinc/todo/internal/todo"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo - an interactive todo list",
	Long: `todo is an interactive todo-list manager.

Running it without a subcommand starts the command loop: type add, list,
toggle, delete, or exit at the prompt. Todos are persisted to todos.json
in your documents directory between runs.

Run "todo tui" for a full-screen list interface instead.`,
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to the config file (default ~/.todo/config.yaml)")
	rootCmd.PersistentFlags().Bool("memory", false, "Keep todos in memory only for this session")
}

// runRoot starts the interactive command loop.
func runRoot(cmd *cobra.Command, args []string) error {
	store, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.CloseGlobal()

	manager := todo.NewManager(cmd.OutOrStdout())
	loop := repl.New(manager, store, cmd.InOrStdin(), cmd.OutOrStdout())
	return loop.Run()
}

// setup loads configuration, initializes the global logger, and builds
// the configured storage backend.
func setup(cmd *cobra.Command) (storage.Store, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	if cfg.Logging.Dir != "" {
		logCfg.LogDir = cfg.Logging.Dir
	}
	logCfg.MaxLogFiles = cfg.Logging.MaxFiles
	logCfg.MaxLogAge = cfg.Logging.MaxAge
	if err := logging.InitGlobal(logCfg); err != nil {
		// Logging is the diagnostic channel, not a prerequisite; run
		// without it rather than failing startup.
		logging.SetGlobal(logging.NewNoop())
	}

	memory, _ := cmd.Flags().GetBool("memory")
	if memory || cfg.Storage.Backend == config.BackendMemory {
		return storage.NewMemoryStore(), nil
	}
	return storage.NewFileStoreInDir(cfg.Storage.DataDir, logging.Global()), nil
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("todo {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
