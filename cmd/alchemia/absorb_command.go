package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alchemia/internal/inventory"
)

func newAbsorbCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "absorb",
		Short: "Classify the inventory snapshot and write the mapping",
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
				snap, err := inventory.ReadSnapshot(cfg.Paths.InventoryFile)
				if err != nil {
					return fmt.Errorf("load inventory snapshot (run `alchemia intake` first): %w", err)
				}

				doc, err := runAbsorbStage(cmd.Context(), cfg, logger, snap.RunID, snap)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderRuleStats(doc.Stats))
				fmt.Fprintf(out, "Mapping: %s\n", cfg.Paths.MappingFile)
				return nil
			})
		},
	}
}
