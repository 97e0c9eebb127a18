package cmd

import (
	"log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/posh/core/config"
)

// initCmd initializes the data directory
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the data directory with a default configuration.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		return config.Initialize(afero.NewOsFs(), dataDir, logger)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
