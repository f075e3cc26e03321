package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/report"
)

// WriteReport renders the given report tables into a new workbook at path,
// one sheet per table, in order.
func WriteReport(path string, tables ...*report.Table) error {
	f, err := Workbook(tables...)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Workbook realizes report tables into an in-memory workbook. The default
// sheet excelize creates is dropped so the report sheets are the only ones.
func Workbook(tables ...*report.Table) (*excelize.File, error) {
	f := excelize.NewFile()
	styles := newStyler(f)

	for _, t := range tables {
		if _, err := f.NewSheet(t.Sheet); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", t.Sheet, err)
		}
		if err := renderTable(f, styles, t); err != nil {
			return nil, fmt.Errorf("render sheet %s: %w", t.Sheet, err)
		}
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	return f, nil
}

func renderTable(f *excelize.File, styles *styler, t *report.Table) error {
	for i, w := range t.ColWidths {
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(t.Sheet, name, name, w); err != nil {
			return err
		}
	}
	for row, h := range t.RowHeights {
		if err := f.SetRowHeight(t.Sheet, row, h); err != nil {
			return err
		}
	}

	for _, c := range t.Cells {
		axis, err := excelize.CoordinatesToCellName(c.Col, c.Row)
		if err != nil {
			return err
		}
		switch {
		case c.Formula != "":
			// The layout carries formulas with a leading "="; excelize wants
			// them without.
			if err := f.SetCellFormula(t.Sheet, axis, strings.TrimPrefix(c.Formula, "=")); err != nil {
				return err
			}
		case c.Value != nil:
			if err := f.SetCellValue(t.Sheet, axis, c.Value); err != nil {
				return err
			}
		}

		id, err := styles.id(c.Style, c.Format)
		if err != nil {
			return err
		}
		if id != 0 {
			if err := f.SetCellStyle(t.Sheet, axis, axis, id); err != nil {
				return err
			}
		}
	}

	for _, m := range t.Merges {
		from, err := excelize.CoordinatesToCellName(m.FromCol, m.FromRow)
		if err != nil {
			return err
		}
		to, err := excelize.CoordinatesToCellName(m.ToCol, m.ToRow)
		if err != nil {
			return err
		}
		if err := f.MergeCell(t.Sheet, from, to); err != nil {
			return err
		}
	}

	// A header-only range is not a valid structured table; skip it when the
	// report has no data rows.
	if b := t.Banded; b != nil && b.ToRow > b.FromRow {
		from, err := excelize.CoordinatesToCellName(b.FromCol, b.FromRow)
		if err != nil {
			return err
		}
		to, err := excelize.CoordinatesToCellName(b.ToCol, b.ToRow)
		if err != nil {
			return err
		}
		stripes := true
		if err := f.AddTable(t.Sheet, &excelize.Table{
			Range:          from + ":" + to,
			Name:           b.Name,
			StyleName:      b.StyleName,
			ShowRowStripes: &stripes,
		}); err != nil {
			return err
		}
	}

	return nil
}

// styler caches excelize style IDs per (style, format) pair so each distinct
// combination is registered once per workbook.
type styler struct {
	f   *excelize.File
	ids map[styleKey]int
}

type styleKey struct {
	style  report.Style
	format report.NumberFormat
}

func newStyler(f *excelize.File) *styler {
	return &styler{f: f, ids: make(map[styleKey]int)}
}

func (s *styler) id(style report.Style, format report.NumberFormat) (int, error) {
	if style == report.StyleNone && format == report.FormatNone {
		return 0, nil
	}
	key := styleKey{style: style, format: format}
	if id, ok := s.ids[key]; ok {
		return id, nil
	}

	spec := &excelize.Style{}
	darkFill := excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"404040"}}

	switch style {
	case report.StyleTitle:
		spec.Fill = darkFill
		spec.Font = &excelize.Font{Color: "FFFFFF", Size: 22}
		spec.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	case report.StyleBand:
		spec.Fill = darkFill
	case report.StyleHeader, report.StyleAccent:
		spec.Fill = darkFill
		spec.Font = &excelize.Font{Color: "FFFF00", Bold: true, Size: 10}
	case report.StyleLabel:
		spec.Fill = darkFill
		spec.Font = &excelize.Font{Color: "FFFF00", Bold: true}
	case report.StyleData:
		spec.Font = &excelize.Font{Size: 10}
	}

	switch format {
	case report.FormatClock:
		mask := "h:mm:ss"
		spec.CustomNumFmt = &mask
	case report.FormatDecimal:
		mask := "#,##0.00"
		spec.CustomNumFmt = &mask
	case report.FormatDate:
		mask := "dd/mm/yyyy"
		spec.CustomNumFmt = &mask
	}

	id, err := s.f.NewStyle(spec)
	if err != nil {
		return 0, err
	}
	s.ids[key] = id
	return id, nil
}
