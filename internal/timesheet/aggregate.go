// Package timesheet aggregates raw time entries into the hierarchical summary
// used by the report layout: one total per project, then one total per
// description within that project.
package timesheet

import (
	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/clock"
	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/models"
)

// Aggregate groups entries by project, then by description within each
// project, preserving first-seen order on both levels. Each project emits a
// ProjectTotal row followed by its DescriptionTotal rows. Totals are sums of
// the decoded clock durations; nothing is rounded until display.
//
// The client label comes from the project's first entry. Entries within one
// project are assumed to agree on client (Clockify assigns clients per
// project); no cross-entry validation is attempted.
func Aggregate(entries []models.TimeEntry) []models.SummaryRow {
	var rows []models.SummaryRow

	for _, group := range partition(entries, func(e models.TimeEntry) string { return e.Project }) {
		label := group.entries[0].Project
		if client := group.entries[0].Client; client != "" {
			label = label + " - " + client
		}

		total := sumHours(group.entries)
		rows = append(rows, models.SummaryRow{
			Kind:  models.ProjectTotal,
			Label: label,
			Hours: total,
			Clock: clock.FormatClock(total),
		})

		for _, desc := range partition(group.entries, func(e models.TimeEntry) string { return e.Description }) {
			descTotal := sumHours(desc.entries)
			rows = append(rows, models.SummaryRow{
				Kind:  models.DescriptionTotal,
				Label: desc.key,
				Hours: descTotal,
				Clock: clock.FormatClock(descTotal),
			})
		}
	}

	return rows
}

// GrandTotal sums the decimal hours of ProjectTotal rows only. Description
// totals are subsets of their project total; including them would double
// count.
func GrandTotal(rows []models.SummaryRow) float64 {
	total := 0.0
	for _, r := range rows {
		if r.Kind == models.ProjectTotal {
			total += r.Hours
		}
	}
	return total
}

type entryGroup struct {
	key     string
	entries []models.TimeEntry
}

// partition splits entries into groups keyed by keyFn, keeping groups in
// first-occurrence order and entries in input order within each group.
func partition(entries []models.TimeEntry, keyFn func(models.TimeEntry) string) []entryGroup {
	index := make(map[string]int)
	var groups []entryGroup

	for _, e := range entries {
		key := keyFn(e)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, entryGroup{key: key})
		}
		groups[i].entries = append(groups[i].entries, e)
	}

	return groups
}

func sumHours(entries []models.TimeEntry) float64 {
	total := 0.0
	for _, e := range entries {
		total += clock.ParseClock(e.Duration)
	}
	return total
}
