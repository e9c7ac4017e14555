package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/logging"
	"github.com/wexinc/todo/internal/todo"
	"github.com/wexinc/todo/internal/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the full-screen list interface",
	Long: `Open the full-screen list interface.

Key bindings:
  a          add a todo
  space      toggle the selected todo
  d          delete the selected todo
  q          quit`,
	RunE: runTui,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

// runTui starts the full-screen interface.
func runTui(cmd *cobra.Command, args []string) error {
	store, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.CloseGlobal()

	// The view draws all feedback itself; manager notices go nowhere.
	manager := todo.NewManager(io.Discard)
	if snapshot, ok := store.Load(); ok {
		manager.Replace(snapshot)
	}

	return tui.Run(manager, store)
}
