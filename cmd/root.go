package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/posh/core/colours"
)

var (
	dataDir   string
	colorMode string
	command   string
	sandbox   bool
)

// errCommandFailed is returned after a failed -c line has been reported.
var errCommandFailed = errors.New("command failed")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "posh",
	Short: "A small interactive shell",
	Long: `posh reads command lines, resolves paths against the working directory
and home, and runs its builtin commands. Settings, aliases and history are
kept in the data directory.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return colours.SetMode(colorMode)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		sess, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer sess.Close()

		if cmd.Flags().Changed("command") {
			if !sess.interp.RunLine(command) {
				return errCommandFailed
			}
			return nil
		}

		return sess.interactive(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errCommandFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", DefaultDataDir(), "directory holding config.json, history.txt and posh.log")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", colours.ModeAuto, "colorize the output (always|auto|never)")
	rootCmd.PersistentFlags().BoolVar(&sandbox, "sandbox", false, "keep all filesystem changes in memory and drop them on exit")
	rootCmd.Flags().StringVarP(&command, "command", "c", "", "run a single command line and exit")
}
