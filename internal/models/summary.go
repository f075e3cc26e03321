package models

// SummaryRowKind distinguishes the two levels of the summary hierarchy.
type SummaryRowKind string

const (
	ProjectTotal     SummaryRowKind = "project"
	DescriptionTotal SummaryRowKind = "description"
)

// SummaryRow is one aggregated line of the summary report: either a project
// total or a description total nested under the preceding project total.
type SummaryRow struct {
	Kind  SummaryRowKind
	Label string
	Hours float64 // decimal hours, full precision (never pre-rounded)
	Clock string  // HH:MM:SS, rounded to whole seconds at encode time
}

// DateRange holds the reporting period extracted from an export filename,
// as DD/MM/YYYY display strings.
type DateRange struct {
	Start string
	End   string
}
