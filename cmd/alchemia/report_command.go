package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"alchemia/internal/absorb"
	"alchemia/internal/mapping"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	var mappingPath string
	var showPending bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize a mapping file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := strings.TrimSpace(mappingPath)
			if path == "" {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				path = cfg.Paths.MappingFile
			}

			doc, err := mapping.Read(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Mapping %s (run %s, generated %s)\n",
				path, doc.RunID, doc.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
			fmt.Fprintln(out, renderRuleStats(doc.Stats))
			if organTable := renderOrganStats(doc); organTable != "" {
				fmt.Fprintln(out, organTable)
			}

			if showPending {
				fmt.Fprintln(out, renderPendingReview(doc))
			} else if doc.Stats.PendingReview > 0 {
				fmt.Fprintf(out, "%d files pending review (use --pending to list them)\n", doc.Stats.PendingReview)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&mappingPath, "mapping", "m", "", "Mapping file to report on (defaults to the configured path)")
	cmd.Flags().BoolVar(&showPending, "pending", false, "List every file pending manual review")
	return cmd
}

func renderPendingReview(doc *mapping.Document) string {
	rows := make([][]string, 0, doc.Stats.PendingReview)
	for i := range doc.Records {
		record := &doc.Records[i]
		if record.Classification.Status != absorb.StatusPendingReview {
			continue
		}
		rows = append(rows, []string{
			record.Entry.Path,
			humanize.Bytes(uint64(record.Entry.SizeBytes)),
			record.Classification.Reason,
		})
	}
	if len(rows) == 0 {
		return "Nothing pending review"
	}
	return renderTable(
		[]string{"Path", "Size", "Reason"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignLeft},
	)
}
