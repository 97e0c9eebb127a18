package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/posh/core/config"
	"github.com/josephlewis42/posh/core/history"
)

// historyCmd prints the recorded command lines
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the command history recorded in the data directory.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		fsys := afero.NewOsFs()
		path := filepath.Join(dataDir, config.HistoryName)
		if _, err := fsys.Stat(path); err != nil {
			return fmt.Errorf("no history, did you run init? %w", err)
		}

		hist, err := history.Open(fsys, path)
		if err != nil {
			return err
		}
		lines, err := hist.Lines()
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
