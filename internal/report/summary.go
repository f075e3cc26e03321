package report

import (
	"fmt"
	"strconv"

	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/clock"
	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/models"
	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/timesheet"
)

// Summary sheet geometry: a four-row title band, then one row per summary
// row, then the grand-total row. The sheet name's trailing space is part of
// the original template and is preserved.
const (
	summarySheetName    = "Summary report "
	summaryHeaderRow    = 3
	summaryFirstDataRow = 5
	summaryCols         = 5
)

var summaryColWidths = []float64{39.14, 87.14, 16.29, 19.0, 21.86}

// BuildSummary lays out the summary sheet from aggregated rows. Project rows
// populate columns 1,3,4,5 and description rows columns 2,3,4,5; the sparse
// column is the visual hierarchy. Amounts are formulas over the same row's
// decimal-time cell so the rate stays adjustable in the produced document.
func BuildSummary(rows []models.SummaryRow, dateRange *models.DateRange, cfg Config) (*Table, error) {
	if cfg.Rate <= 0 {
		return nil, &InvalidRateError{Rate: cfg.Rate}
	}

	t := &Table{
		Sheet:      summarySheetName,
		ColWidths:  summaryColWidths,
		RowHeights: map[int]float64{1: 30},
		Merges:     []Merge{{FromRow: 1, FromCol: 1, ToRow: 1, ToCol: 4}},
	}

	t.add(Cell{Row: 1, Col: 1, Value: "Summary report", Style: StyleTitle})
	for col := 2; col <= summaryCols; col++ {
		t.add(Cell{Row: 1, Col: col, Style: StyleBand})
	}
	for col := 1; col <= summaryCols; col++ {
		t.add(Cell{Row: 2, Col: col, Style: StyleBand})
	}

	headers := []string{
		"Project",
		"Description",
		"Time (h)",
		"Time (decimal)",
		fmt.Sprintf("Amount (%s)", cfg.Currency),
	}
	for i, h := range headers {
		t.add(Cell{Row: summaryHeaderRow, Col: i + 1, Value: h, Style: StyleHeader})
	}
	for col := 1; col <= summaryCols; col++ {
		t.add(Cell{Row: 4, Col: col, Style: StyleBand})
	}

	row := summaryFirstDataRow
	for _, r := range rows {
		switch r.Kind {
		case models.ProjectTotal:
			t.add(Cell{Row: row, Col: 1, Value: r.Label, Style: StyleAccent})
			t.add(Cell{Row: row, Col: 2, Style: StyleBand})
			addTimeCells(t, row, r, StyleAccent, cfg.Rate)
		case models.DescriptionTotal:
			t.add(Cell{Row: row, Col: 2, Value: r.Label, Style: StyleData})
			addTimeCells(t, row, r, StyleData, cfg.Rate)
		}
		row++
	}

	total := timesheet.GrandTotal(rows)
	label := "Total"
	if dateRange != nil {
		label = fmt.Sprintf("Total (%s - %s)", dateRange.Start, dateRange.End)
	}
	t.add(Cell{Row: row, Col: 1, Value: label, Style: StyleAccent})
	t.add(Cell{Row: row, Col: 2, Style: StyleBand})
	addTimeCells(t, row, models.SummaryRow{Hours: total, Clock: clock.FormatClock(total)}, StyleAccent, cfg.Rate)

	return t, nil
}

// addTimeCells fills the shared tail of a summary row: clock time, decimal
// time, and the amount formula over the decimal-time cell (column D).
func addTimeCells(t *Table, row int, r models.SummaryRow, style Style, rate float64) {
	t.add(Cell{Row: row, Col: 3, Value: r.Clock, Format: FormatClock, Style: style})
	t.add(Cell{Row: row, Col: 4, Value: r.Hours, Format: FormatDecimal, Style: style})
	t.add(Cell{
		Row:     row,
		Col:     5,
		Formula: fmt.Sprintf("=D%d*%s", row, rateLiteral(rate)),
		Format:  FormatDecimal,
		Style:   style,
	})
}

// rateLiteral renders the rate the way it should appear inside a formula
// (no trailing zeros, no exponent for realistic magnitudes).
func rateLiteral(rate float64) string {
	return strconv.FormatFloat(rate, 'g', -1, 64)
}
