package main

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"alchemia/internal/absorb"
	"alchemia/internal/mapping"
	"alchemia/internal/organ"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// renderRuleStats formats one classification pass's per-rule tallies.
func renderRuleStats(stats absorb.Stats) string {
	rows := make([][]string, 0, 9)
	for rule := 1; rule <= 7; rule++ {
		count := stats.ByRule[rule]
		if count == 0 {
			continue
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", rule),
			absorb.RuleName(rule),
			fmt.Sprintf("%d", count),
		})
	}
	if stats.InvalidEntries > 0 {
		rows = append(rows, []string{"-", "invalid_entry", fmt.Sprintf("%d", stats.InvalidEntries)})
	}
	rows = append(rows, []string{"", "total", fmt.Sprintf("%d", stats.Total)})

	return renderTable(
		[]string{"Rule", "Name", "Files"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight},
	)
}

// renderOrganStats formats per-organ record counts from a mapping document.
func renderOrganStats(doc *mapping.Document) string {
	counts := make(map[organ.Organ]int)
	for i := range doc.Records {
		if target := doc.Records[i].Classification.TargetOrgan; target != "" {
			counts[target]++
		}
	}

	organs := make([]organ.Organ, 0, len(counts))
	for o := range counts {
		organs = append(organs, o)
	}
	sort.Slice(organs, func(a, b int) bool { return organs[a] < organs[b] })

	rows := make([][]string, 0, len(organs))
	for _, o := range organs {
		rows = append(rows, []string{string(o), o.DisplayName(), fmt.Sprintf("%d", counts[o])})
	}
	return renderTable(
		[]string{"Organ", "Name", "Files"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	)
}
