// Package xlsx is the document boundary of the converter: it reads Clockify
// Detailed exports into time entries and renders report tables into a
// formatted workbook. Everything between those two edges is format-agnostic.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/models"
)

// SchemaError reports a required column missing from the input export.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("input is missing required column %q", e.Column)
}

// requiredColumns is the fixed contract of a Clockify Detailed export.
// Client and Tags are optional and default to empty.
var requiredColumns = []string{
	"Project",
	"Description",
	"User",
	"Start Date",
	"Start Time",
	"End Date",
	"End Time",
	"Duration (h)",
}

// ReadDetailed opens a Clockify Detailed export and returns its entries in
// sheet order.
func ReadDetailed(path string) ([]models.TimeEntry, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return ReadEntries(f)
}

// ReadEntries reads time entries from the first sheet of an open workbook.
// The first row must be the header row; a missing required column yields a
// SchemaError rather than a partial dataset.
func ReadEntries(f *excelize.File) ([]models.TimeEntry, error) {
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, &SchemaError{Column: requiredColumns[0]}
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, &SchemaError{Column: name}
		}
	}

	field := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var entries []models.TimeEntry
	for _, row := range rows[1:] {
		e := models.TimeEntry{
			Project:     field(row, "Project"),
			Client:      field(row, "Client"),
			Description: field(row, "Description"),
			User:        field(row, "User"),
			Tags:        field(row, "Tags"),
			StartDate:   field(row, "Start Date"),
			StartTime:   field(row, "Start Time"),
			EndDate:     field(row, "End Date"),
			EndTime:     field(row, "End Time"),
			Duration:    field(row, "Duration (h)"),
		}
		if e == (models.TimeEntry{}) {
			continue
		}
		entries = append(entries, e)
	}

	return entries, nil
}
