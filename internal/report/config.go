package report

// Config carries the knobs of a single report run. A value is passed into
// each build call so concurrent runs with different settings cannot
// cross-contaminate.
type Config struct {
	Rate       float64 // billable rate per hour; must be positive
	Currency   string  // currency code shown in amount/rate headers
	TableName  string  // display name of the detailed sheet's structured table
	TableStyle string  // banded-row style of the detailed sheet's table
}

// DefaultConfig returns the settings matching the original report template.
func DefaultConfig() Config {
	return Config{
		Rate:       50,
		Currency:   "BRL",
		TableName:  "Table1",
		TableStyle: "TableStyleMedium15",
	}
}
