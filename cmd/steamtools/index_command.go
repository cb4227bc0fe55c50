package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"steamtools/internal/library"
)

type indexSummary struct {
	Status  library.Status `json:"status"`
	BuiltAt string         `json:"built_at"`
	Report  library.Report `json:"report"`
}

func newIndexCommand(ctx *commandContext) *cobra.Command {
	var showSkipped bool

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Rescan every library and store a fresh index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := ctx.loadIndex(cmd.Context(), true)
			if err != nil {
				return err
			}
			report := idx.Report()
			if ctx.jsonOutput() {
				return writeJSON(cmd, indexSummary{
					Status:  idx.Status(),
					BuiltAt: idx.BuiltAt().UTC().Format(time.RFC3339),
					Report:  report,
				})
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			rows := [][]string{
				{"Library roots", strconv.Itoa(len(report.Roots))},
				{"Scanned", strconv.Itoa(report.ScannedRoots)},
				{"Manifests", strconv.Itoa(report.Manifests)},
				{"Indexed", strconv.Itoa(report.Indexed)},
				{"Skipped", strconv.Itoa(len(report.Skipped))},
			}
			fmt.Fprintln(out, renderTable([]string{"Index", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))

			switch idx.Status() {
			case library.StatusOK:
				fmt.Fprintln(out, renderStatusLine("Index", statusOK, fmt.Sprintf("%d games indexed", idx.Len()), colorize))
			case library.StatusEmpty:
				fmt.Fprintln(out, renderStatusLine("Index", statusWarn, "no installed games found", colorize))
			case library.StatusNoLibraries:
				fmt.Fprintln(out, renderStatusLine("Index", statusWarn, "no Steam libraries found", colorize))
			}
			if showSkipped {
				for _, skip := range report.Skipped {
					fmt.Fprintf(out, "  skipped %s: %s\n", skip.Path, skip.Reason)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showSkipped, "show-skipped", false, "List manifests left out of the index")
	return cmd
}
