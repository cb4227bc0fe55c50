package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"steamtools/internal/filter"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <lua|manifest> <name>",
		Short: "Delete one file from the lua or manifest folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := filter.ParseKind(args[0])
			if err != nil {
				return err
			}
			store, err := ctx.collectionStore()
			if err != nil {
				return err
			}
			if err := store.Remove(kind, args[1]); err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, map[string]string{"removed": args[1], "kind": string(kind)})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[1])
			return nil
		},
	}
}
