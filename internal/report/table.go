// Package report turns aggregated timesheet data into positioned, styled,
// formula-bearing table structures. It decides what every cell contains and
// how it is tagged; rendering those tags into a concrete file format is the
// document writer's job.
package report

// NumberFormat tags a cell with the display mask the document writer should
// apply. The core never formats numbers itself.
type NumberFormat string

const (
	FormatNone    NumberFormat = ""
	FormatClock   NumberFormat = "clock"   // h:mm:ss
	FormatDecimal NumberFormat = "decimal" // #,##0.00
	FormatDate    NumberFormat = "date"    // dd/mm/yyyy
)

// Style tags a cell with a named visual treatment from the report template.
type Style string

const (
	StyleNone   Style = ""
	StyleTitle  Style = "title"  // large white text on dark fill, centered
	StyleBand   Style = "band"   // dark fill only (title/separator rows)
	StyleHeader Style = "header" // yellow bold column headers on dark fill
	StyleAccent Style = "accent" // yellow bold data (project and total rows)
	StyleLabel  Style = "label"  // yellow bold free-standing label
	StyleData   Style = "data"   // plain table data
)

// Cell is one positioned value of a report table. Coordinates are 1-based.
// Exactly one of Value and Formula is set; Formula carries a spreadsheet
// formula string including its leading "=".
type Cell struct {
	Row     int
	Col     int
	Value   any
	Formula string
	Format  NumberFormat
	Style   Style
}

// Merge is an inclusive rectangular cell range to be merged.
type Merge struct {
	FromRow, FromCol int
	ToRow, ToCol     int
}

// BandedRange declares a structured table (named range with banded-row
// styling) spanning from the header row to the last data row.
type BandedRange struct {
	Name             string
	StyleName        string
	FromRow, FromCol int
	ToRow, ToCol     int
}

// Table is an ordered, positioned description of one report sheet, handed to
// a document writer for rendering.
type Table struct {
	Sheet      string
	ColWidths  []float64 // one width per column, in order
	RowHeights map[int]float64
	Merges     []Merge
	Cells      []Cell
	Banded     *BandedRange
}

func (t *Table) add(c Cell) {
	t.Cells = append(t.Cells, c)
}

// CellAt returns the cell at the given coordinates, or nil when the position
// is empty. Intended for tests and writers that need random access.
func (t *Table) CellAt(row, col int) *Cell {
	for i := range t.Cells {
		if t.Cells[i].Row == row && t.Cells[i].Col == col {
			return &t.Cells[i]
		}
	}
	return nil
}
