package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"steamtools/internal/library"
)

type libraryRow struct {
	Path         string `json:"path"`
	HasSteamApps bool   `json:"has_steamapps"`
}

func newLibrariesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "libraries",
		Short: "List the Steam library folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			steamPath, err := ctx.resolveSteamPath()
			if err != nil {
				return err
			}
			roots := library.EnumerateRoots(steamPath)
			rows := make([]libraryRow, 0, len(roots))
			for _, root := range roots {
				info, err := os.Stat(filepath.Join(root, "steamapps"))
				rows = append(rows, libraryRow{Path: root, HasSteamApps: err == nil && info.IsDir()})
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, rows)
			}
			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, renderStatusLine("Libraries", statusWarn, "none found", shouldColorize(out)))
				return nil
			}
			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, []string{r.Path, yesNo(r.HasSteamApps)})
			}
			fmt.Fprintln(out, renderTable([]string{"Library", "steamapps"}, table, nil))
			return nil
		},
	}
}
