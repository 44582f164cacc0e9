package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alchemia/internal/registry"
)

func newRegistryCommand(ctx *commandContext) *cobra.Command {
	var includeArchived bool

	cmd := &cobra.Command{
		Use:   "registry",
		Short: "List repositories from the canonical registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			idx, err := registry.Load(cfg.Registry.Path)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, idx.Len())
			for _, record := range idx.AllRepos() {
				status := "active"
				if record.Archived {
					if !includeArchived {
						continue
					}
					status = "archived"
				}
				rows = append(rows, []string{record.Name, record.Org, string(record.Organ), status})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Repository", "Org", "Organ", "Status"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d repositories (%d archived)\n", idx.Len(), idx.ArchivedCount())
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeArchived, "archived", false, "Include archived repositories")
	return cmd
}
