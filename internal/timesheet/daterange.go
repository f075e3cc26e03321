package timesheet

import (
	"regexp"
	"strings"

	"github.com/mauricio-jmmendes/ClockifyReportManager/internal/models"
)

// Clockify embeds the reporting period in export filenames, e.g.
// Clockify_Time_Report_Detailed_01_12_2025-26_12_2025.xlsx.
var dateRangePattern = regexp.MustCompile(`(\d{2}_\d{2}_\d{4})-(\d{2}_\d{2}_\d{4})`)

// ParseDateRange extracts the reporting period from an export filename as
// DD/MM/YYYY display dates. Returns nil when the filename does not carry the
// two-date pattern; callers fall back to a generic "Total" label.
func ParseDateRange(filename string) *models.DateRange {
	m := dateRangePattern.FindStringSubmatch(filename)
	if m == nil {
		return nil
	}
	return &models.DateRange{
		Start: strings.ReplaceAll(m[1], "_", "/"),
		End:   strings.ReplaceAll(m[2], "_", "/"),
	}
}
