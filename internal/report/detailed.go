package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/clock"
	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/models"
)

const (
	detailedSheetName    = "Detailed Report"
	detailedHeaderRow    = 3
	detailedFirstDataRow = 4
	detailedCols         = 13
)

var detailedColWidths = []float64{
	17.29, 20.29, 87.14, 18.86, 11.29,
	12.57, 12.0, 13.14, 10.71, 12.43,
	9.43, 24.14, 30.57,
}

// BuildDetailed lays out the detailed sheet: one row per entry in input
// order, a per-row amount formula over the row's own rate and decimal
// duration cells, and a total-amount formula in the title band summing the
// whole amount column. The decimal duration is always re-decoded from the
// clock form, never taken from a pre-rounded source column.
func BuildDetailed(entries []models.TimeEntry, cfg Config) (*Table, error) {
	if cfg.Rate <= 0 {
		return nil, &InvalidRateError{Rate: cfg.Rate}
	}

	t := &Table{
		Sheet:      detailedSheetName,
		ColWidths:  detailedColWidths,
		RowHeights: map[int]float64{1: 30},
		Merges:     []Merge{{FromRow: 1, FromCol: 3, ToRow: 1, ToCol: 8}},
	}

	lastDataRow := detailedHeaderRow + len(entries)

	for col := 1; col <= detailedCols; col++ {
		switch col {
		case 3:
			t.add(Cell{Row: 1, Col: col, Value: "Detailed Report", Style: StyleTitle})
		case 12:
			t.add(Cell{Row: 1, Col: col, Value: "Total Amount:", Style: StyleLabel})
		case 13:
			t.add(Cell{
				Row:     1,
				Col:     col,
				Formula: fmt.Sprintf("=SUM(M%d:M%d)", detailedFirstDataRow, lastDataRow),
				Format:  FormatDecimal,
				Style:   StyleLabel,
			})
		default:
			t.add(Cell{Row: 1, Col: col, Style: StyleBand})
		}
	}
	for col := 1; col <= detailedCols; col++ {
		t.add(Cell{Row: 2, Col: col, Style: StyleBand})
	}

	headers := []string{
		"Project", "Client", "Description", "User", "Tags",
		"Start Date", "Start Time", "End Date", "End Time",
		"Duration (h)", "Duration (decimal)",
		fmt.Sprintf("Billable Rate (%s)", cfg.Currency),
		fmt.Sprintf("Billable Amount (%s)", cfg.Currency),
	}
	for i, h := range headers {
		t.add(Cell{Row: detailedHeaderRow, Col: i + 1, Value: h, Style: StyleHeader})
	}

	row := detailedFirstDataRow
	for _, e := range entries {
		t.add(Cell{Row: row, Col: 1, Value: e.Project, Style: StyleData})
		t.add(Cell{Row: row, Col: 2, Value: e.Client, Style: StyleData})
		t.add(Cell{Row: row, Col: 3, Value: e.Description, Style: StyleData})
		t.add(Cell{Row: row, Col: 4, Value: e.User, Style: StyleData})
		t.add(Cell{Row: row, Col: 5, Value: firstTag(e.Tags), Style: StyleData})
		t.add(Cell{Row: row, Col: 6, Value: dateValue(e.StartDate), Format: FormatDate, Style: StyleData})
		t.add(Cell{Row: row, Col: 7, Value: e.StartTime, Format: FormatClock, Style: StyleData})
		t.add(Cell{Row: row, Col: 8, Value: dateValue(e.EndDate), Format: FormatDate, Style: StyleData})
		t.add(Cell{Row: row, Col: 9, Value: e.EndTime, Format: FormatClock, Style: StyleData})
		t.add(Cell{Row: row, Col: 10, Value: e.Duration, Format: FormatClock, Style: StyleData})
		t.add(Cell{Row: row, Col: 11, Value: clock.ParseClock(e.Duration), Format: FormatDecimal, Style: StyleData})
		t.add(Cell{Row: row, Col: 12, Value: cfg.Rate, Format: FormatDecimal, Style: StyleData})
		t.add(Cell{
			Row:     row,
			Col:     13,
			Formula: fmt.Sprintf("=L%d*K%d", row, row),
			Format:  FormatDecimal,
			Style:   StyleData,
		})
		row++
	}

	// Extent follows the actual row count: header row through last data row.
	t.Banded = &BandedRange{
		Name:      cfg.TableName,
		StyleName: cfg.TableStyle,
		FromRow:   detailedHeaderRow,
		FromCol:   1,
		ToRow:     lastDataRow,
		ToCol:     detailedCols,
	}

	return t, nil
}

// firstTag keeps only the first comma-separated tag, trimmed. Dropping the
// remainder matches the report contract; the full tag list stays in the
// source export.
func firstTag(tags string) string {
	first, _, _ := strings.Cut(tags, ",")
	return strings.TrimSpace(first)
}

// dateValue parses an export date (YYYY-MM-DD) so the writer can store a real
// date cell; unparseable values pass through as text.
func dateValue(s string) any {
	if s == "" {
		return nil
	}
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d
	}
	return s
}
