package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newIntakeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "intake",
		Short: "Crawl source directories and write the inventory snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			return ctx.withRunLock(func() error {
				snap, err := runIntakeStage(cmd.Context(), cfg, logger, newRunID())
				if err != nil {
					return err
				}

				var total int64
				for i := range snap.Entries {
					total += snap.Entries[i].SizeBytes
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Inventoried %d files (%s) from %d source directories\n",
					snap.TotalFiles, humanize.Bytes(uint64(total)), len(snap.SourceDirs))
				fmt.Fprintf(out, "Snapshot: %s\n", cfg.Paths.InventoryFile)
				return nil
			})
		},
	}
}
