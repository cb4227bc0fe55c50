package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"steamtools/internal/config"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "add <file>...",
		Short: "Copy .lua and .manifest files into the Steam plugin folders",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.collectionStore()
			if err != nil {
				return err
			}
			if err := store.Layout().Verify(); err != nil {
				return err
			}

			files := make([]string, 0, len(args))
			for _, arg := range args {
				path, err := config.ExpandPath(arg)
				if err != nil {
					return fmt.Errorf("resolve %s: %w", arg, err)
				}
				files = append(files, path)
			}

			result, err := store.Route(files)
			if err != nil {
				return err
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, result)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Copied: %d | Skipped: %d\n", result.Copied, result.Skipped)
			for _, msg := range result.Errors {
				fmt.Fprintln(out, renderStatusLine("Error", statusError, msg, shouldColorize(out)))
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("%d file(s) failed to copy", len(result.Errors))
			}
			return nil
		},
	}
}
