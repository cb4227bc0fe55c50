package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"steamtools/internal/steamctl"
)

func newRestartSteamCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "restart-steam",
		Short: "Shut Steam down and start it again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			steamPath, err := ctx.resolveSteamPath()
			if err != nil {
				return err
			}
			err = steamctl.Restart(cmd.Context(), steamPath,
				steamctl.WithShutdownWait(time.Duration(cfg.Restart.ShutdownWaitSeconds)*time.Second),
				steamctl.WithLogger(ctx.loggerValue()))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Steam restarted")
			return nil
		},
	}
}
