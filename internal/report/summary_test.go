package report

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/models"
	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/timesheet"
)

func summaryFixture() []models.SummaryRow {
	return timesheet.Aggregate([]models.TimeEntry{
		{Project: "P1", Client: "C1", Description: "d1", Duration: "01:30:00"},
		{Project: "P1", Client: "C1", Description: "d2", Duration: "00:29:30"},
		{Project: "P2", Description: "d1", Duration: "02:00:00"},
	})
}

func TestBuildSummary_Layout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rate = 250

	tbl, err := BuildSummary(summaryFixture(), &models.DateRange{Start: "01/12/2025", End: "26/12/2025"}, cfg)
	require.NoError(t, err)

	assert.Equal(t, "Summary report ", tbl.Sheet)
	assert.Len(t, tbl.ColWidths, 5)
	assert.Equal(t, 30.0, tbl.RowHeights[1])
	require.Len(t, tbl.Merges, 1)
	assert.Equal(t, Merge{FromRow: 1, FromCol: 1, ToRow: 1, ToCol: 4}, tbl.Merges[0])

	title := tbl.CellAt(1, 1)
	require.NotNil(t, title)
	assert.Equal(t, "Summary report", title.Value)
	assert.Equal(t, StyleTitle, title.Style)

	headers := []string{"Project", "Description", "Time (h)", "Time (decimal)", "Amount (BRL)"}
	for i, h := range headers {
		c := tbl.CellAt(3, i+1)
		require.NotNil(t, c, h)
		assert.Equal(t, h, c.Value)
		assert.Equal(t, StyleHeader, c.Style)
	}
}

func TestBuildSummary_ProjectAndDescriptionRows(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rate = 250

	tbl, err := BuildSummary(summaryFixture(), nil, cfg)
	require.NoError(t, err)

	// Project row at 5: label in column 1, description column empty.
	p := tbl.CellAt(5, 1)
	require.NotNil(t, p)
	assert.Equal(t, "P1 - C1", p.Value)
	assert.Equal(t, StyleAccent, p.Style)
	assert.Nil(t, tbl.CellAt(5, 2).Value)
	assert.Equal(t, "01:59:30", tbl.CellAt(5, 3).Value)
	assert.InDelta(t, 1.9917, tbl.CellAt(5, 4).Value.(float64), 1e-4)
	assert.Equal(t, "=D5*250", tbl.CellAt(5, 5).Formula)
	assert.Equal(t, FormatDecimal, tbl.CellAt(5, 5).Format)

	// Description row at 6: label in column 2, project column empty.
	d := tbl.CellAt(6, 2)
	require.NotNil(t, d)
	assert.Equal(t, "d1", d.Value)
	assert.Equal(t, StyleData, d.Style)
	assert.Nil(t, tbl.CellAt(6, 1))
	assert.Equal(t, "=D6*250", tbl.CellAt(6, 5).Formula)

	// Second project at 8.
	assert.Equal(t, "P2", tbl.CellAt(8, 1).Value)
}

func TestBuildSummary_TotalRow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rate = 250

	tbl, err := BuildSummary(summaryFixture(), &models.DateRange{Start: "01/12/2025", End: "26/12/2025"}, cfg)
	require.NoError(t, err)

	// 5 summary rows starting at 5, so the total lands on row 10.
	total := tbl.CellAt(10, 1)
	require.NotNil(t, total)
	assert.Equal(t, "Total (01/12/2025 - 26/12/2025)", total.Value)
	assert.Equal(t, StyleAccent, total.Style)
	assert.Equal(t, "03:59:30", tbl.CellAt(10, 3).Value)
	// Grand total counts project rows only, never their description subsets.
	assert.InDelta(t, 3.9917, tbl.CellAt(10, 4).Value.(float64), 1e-4)
	assert.Equal(t, "=D10*250", tbl.CellAt(10, 5).Formula)
}

func TestBuildSummary_GenericTotalLabel(t *testing.T) {
	tbl, err := BuildSummary(summaryFixture(), nil, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "Total", tbl.CellAt(10, 1).Value)
}

func TestBuildSummary_EmptyDataset(t *testing.T) {
	tbl, err := BuildSummary(nil, nil, DefaultConfig())
	require.NoError(t, err)

	// Total row directly under the header band.
	assert.Equal(t, "Total", tbl.CellAt(5, 1).Value)
	assert.Equal(t, "00:00:00", tbl.CellAt(5, 3).Value)
	assert.Equal(t, 0.0, tbl.CellAt(5, 4).Value)
}

func TestBuildSummary_RateLiteral(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rate = 62.5

	tbl, err := BuildSummary(nil, nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, "=D5*62.5", tbl.CellAt(5, 5).Formula)
}

func TestBuildSummary_InvalidRate(t *testing.T) {
	for _, rate := range []float64{0, -10} {
		cfg := DefaultConfig()
		cfg.Rate = rate

		_, err := BuildSummary(summaryFixture(), nil, cfg)
		require.Error(t, err)

		var rateErr *InvalidRateError
		require.True(t, errors.As(err, &rateErr))
		assert.Equal(t, rate, rateErr.Rate)
	}
}

func TestBuildSummary_CurrencyHeader(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Currency = "EUR"

	tbl, err := BuildSummary(nil, nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, "Amount (EUR)", tbl.CellAt(3, 5).Value)
}
