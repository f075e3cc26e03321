package models

// TimeEntry is one row of a Clockify Detailed export. Dates and times are kept
// in the textual form the export uses; Duration carries the clock form
// (H:MM:SS), which is the authoritative source for all time arithmetic.
type TimeEntry struct {
	Project     string
	Client      string // optional
	Description string
	User        string
	Tags        string // comma-separated, optional
	StartDate   string // YYYY-MM-DD
	StartTime   string // H:MM:SS
	EndDate     string // YYYY-MM-DD
	EndTime     string // H:MM:SS
	Duration    string // H:MM:SS clock form
}
