package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags rootFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "steamtools",
		Short:         "Inspect Steam libraries and manage lua/manifest plugin files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}
			_, err := ctx.ensureLogger(cmd)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.steamPath, "steam-path", "", "Steam install directory (skips auto-detection)")
	pf.BoolVar(&flags.json, "json", false, "Emit JSON instead of tables")
	pf.StringVar(&flags.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	rootCmd.AddCommand(newLibrariesCommand(ctx))
	rootCmd.AddCommand(newGamesCommand(ctx))
	rootCmd.AddCommand(newIndexCommand(ctx))
	rootCmd.AddCommand(newFilesCommand(ctx))
	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newRemoveCommand(ctx))
	rootCmd.AddCommand(newRestartSteamCommand(ctx))
	rootCmd.AddCommand(newStatusCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
