package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"steamtools/internal/preflight"
)

type statusReport struct {
	SteamPath string             `json:"steam_path"`
	Checks    []preflight.Result `json:"checks"`
	Failed    int                `json:"failed"`
}

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check the Steam install and local directories",
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
			results := preflight.RunAll(cfg, steamPath)
			failed := preflight.Failed(results)
			if ctx.jsonOutput() {
				return writeJSON(cmd, statusReport{SteamPath: steamPath, Checks: results, Failed: failed})
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			fmt.Fprintln(out, "Checks:")
			for _, r := range results {
				kind := statusOK
				switch {
				case r.Passed:
				case r.Optional:
					kind = statusWarn
				default:
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, r.Detail, colorize))
			}
			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}
}
