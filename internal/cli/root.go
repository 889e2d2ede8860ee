package cli

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the lottery command tree
func NewRootCmd() *cobra.Command {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "lottery",
		Short:         "Draw a weighted draft order for a fantasy league",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newDrawCmd(logger))
	rootCmd.AddCommand(newImportCmd(logger))
	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute(stdout, stderr io.Writer, args []string) int {
	rootCmd := NewRootCmd()
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		return 1
	}
	return 0
}
