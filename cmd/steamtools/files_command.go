package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"steamtools/internal/appmanifest"
	"steamtools/internal/collection"
	"steamtools/internal/filter"
)

func newFilesCommand(ctx *commandContext) *cobra.Command {
	var appID string

	cmd := &cobra.Command{
		Use:   "files <lua|manifest>",
		Short: "List lua or manifest files, optionally only those for one game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := filter.ParseKind(args[0])
			if err != nil {
				return err
			}
			store, err := ctx.collectionStore()
			if err != nil {
				return err
			}

			entries := store.Entries(kind)
			if id := strings.TrimSpace(appID); id != "" {
				idx, err := ctx.loadIndex(cmd.Context(), false)
				if err != nil {
					return err
				}
				rec, ok := idx.Lookup(id)
				if !ok {
					return fmt.Errorf("app %s is not in the library index", id)
				}
				entries = filterEntries(kind, entries, &rec)
			}

			if ctx.jsonOutput() {
				return writeJSON(cmd, entries)
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, renderStatusLine("Files", statusInfo, "no "+string(kind)+" files", shouldColorize(out)))
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Name, humanize.IBytes(uint64(e.Size))})
			}
			fmt.Fprintln(out, renderTable([]string{"File", "Size"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}
	cmd.Flags().StringVar(&appID, "app", "", "Only show files belonging to this app id")
	return cmd
}

func filterEntries(kind filter.Kind, entries []collection.Entry, rec *appmanifest.Record) []collection.Entry {
	names := make([]string, 0, len(entries))
	byName := make(map[string]collection.Entry, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
		byName[e.Name] = e
	}
	kept := filter.Apply(kind, names, rec)
	out := make([]collection.Entry, 0, len(kept))
	for _, name := range kept {
		out = append(out, byName[name])
	}
	return out
}
