package main

import (
	"time"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		portFlag     int
		configFlag   string
		timeoutFlag  time.Duration
		retriesFlag  int
		jsonFlag     bool
		logLevelFlag string
	)

	ctx := newCommandContext(&portFlag, &configFlag, &timeoutFlag, &retriesFlag, &jsonFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "dlab",
		Short:         "Drive a running DataLab instance from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().IntVar(&portFlag, "port", 0, "XML-RPC port (0 = discover from CDL_XMLRPCPORT or DataLab.ini)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 0, "Total connection timeout (0 = configured default)")
	rootCmd.PersistentFlags().IntVar(&retriesFlag, "retries", 0, "Connection attempts (0 = configured default)")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Emit machine-readable JSON instead of tables")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override configured log level")

	rootCmd.AddCommand(newVersionCommand(ctx))
	rootCmd.AddCommand(newMethodsCommand(ctx))
	rootCmd.AddCommand(newObjectsCommand(ctx))
	rootCmd.AddCommand(newSelectCommand(ctx))
	rootCmd.AddCommand(newPanelCommand(ctx))
	rootCmd.AddCommand(newOpenCommand(ctx))
	rootCmd.AddCommand(newHDF5Command(ctx))
	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newCalcCommand(ctx))
	rootCmd.AddCommand(newLabelCommand(ctx))
	rootCmd.AddCommand(newAnnotateCommand(ctx))
	rootCmd.AddCommand(newDeleteMetadataCommand(ctx))
	rootCmd.AddCommand(newResetCommand(ctx))
	rootCmd.AddCommand(newCloseAppCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

// shouldSkipConfig reports whether a command manages configuration itself
// and must not fail on a missing or invalid file.
func shouldSkipConfig(cmd *cobra.Command) bool {
	for current := cmd; current != nil; current = current.Parent() {
		if current.Name() == "config" {
			return true
		}
	}
	return false
}
