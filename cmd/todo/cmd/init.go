package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wexinc/todo/internal/config"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a default config file to ~/.todo/config.yaml.

The config file selects the storage backend (file or memory), the data
directory for todos.json, and logging settings.

Use --force to overwrite an existing file.

Examples:
  todo init            # Write ~/.todo/config.yaml
  todo init --force    # Overwrite an existing config`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
}

// runInit writes the default config file.
func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	cfgPath, _ := cmd.Flags().GetString("config")

	path, err := config.WriteDefault(cfgPath, force)
	if err != nil {
		return err
	}

	cmd.Printf("Wrote %s\n", path)
	cmd.Println("Edit it to change the storage backend or data directory.")
	return nil
}
