package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"steamtools/internal/appmanifest"
	"steamtools/internal/collection"
	"steamtools/internal/library"
	"steamtools/internal/textutil"
)

const defaultGamesLimit = 400

func newGamesCommand(ctx *commandContext) *cobra.Command {
	var (
		rebuild bool
		all     bool
		limit   int
		output  string
		search  string
	)

	cmd := &cobra.Command{
		Use:   "games",
		Short: "List installed games from the library index",
		Long: "List installed games sorted by name. By default only games with a lua\n" +
			"file in the plugin folder are shown; use --all for every installed app.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimSpace(output))
			if ctx.jsonOutput() {
				format = "json"
			}
			switch format {
			case "table", "json", "yaml":
			default:
				return fmt.Errorf("unsupported output %q (want table, json, or yaml)", output)
			}

			idx, err := ctx.loadIndex(cmd.Context(), rebuild)
			if err != nil {
				return err
			}
			records := idx.Records()
			if !all {
				store, err := ctx.collectionStore()
				if err != nil {
					return err
				}
				records = withLua(records, store)
			}
			if search != "" {
				records = matchingName(records, search)
			}
			if limit > 0 && len(records) > limit {
				records = records[:limit]
			}

			switch format {
			case "json":
				return writeJSON(cmd, records)
			case "yaml":
				return writeYAML(cmd, records)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			switch idx.Status() {
			case library.StatusNoLibraries:
				fmt.Fprintln(out, renderStatusLine("Index", statusWarn, "no Steam libraries found", colorize))
				return nil
			case library.StatusEmpty:
				fmt.Fprintln(out, renderStatusLine("Index", statusWarn, "no installed games found", colorize))
				return nil
			}
			if len(records) == 0 && search != "" {
				fmt.Fprintln(out, renderStatusLine("Games", statusInfo, fmt.Sprintf("no games match %q", search), colorize))
				return nil
			}
			if len(records) == 0 {
				fmt.Fprintln(out, renderStatusLine("Games", statusInfo, "no games with a lua file (use --all)", colorize))
				return nil
			}
			fmt.Fprintln(out, renderTable(
				[]string{"App ID", "Name", "Depots", "Library"},
				gameRows(records),
				[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&rebuild, "rebuild", false, "Rescan the libraries instead of using the stored index")
	cmd.Flags().BoolVar(&all, "all", false, "Include games without a lua file")
	cmd.Flags().StringVar(&search, "search", "", "Only show games whose name matches every search term")
	cmd.Flags().IntVar(&limit, "limit", defaultGamesLimit, "Maximum number of games to show (0 for no limit)")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table, json, or yaml")
	return cmd
}

func withLua(records []appmanifest.Record, store *collection.Store) []appmanifest.Record {
	out := records[:0:0]
	for _, rec := range records {
		if store.HasLua(rec.AppID) {
			out = append(out, rec)
		}
	}
	return out
}

func matchingName(records []appmanifest.Record, query string) []appmanifest.Record {
	out := records[:0:0]
	for _, rec := range records {
		if textutil.MatchesTerms(rec.Name, query) {
			out = append(out, rec)
		}
	}
	return out
}

func gameRows(records []appmanifest.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.AppID, rec.Name, strconv.Itoa(rec.DepotIDs.Len()), rec.Library})
	}
	return rows
}
