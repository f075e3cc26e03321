// Package clock converts between the textual clock-duration form used by
// Clockify exports (H:MM:SS) and decimal hours.
//
// Summing pre-rounded decimal values drifts by up to half a second per row, so
// all arithmetic decodes the clock form at full precision and rounds exactly
// once, at the seconds granularity, when formatting for display.
package clock

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseClock decodes a clock duration (H:MM:SS, or the degenerate H:MM form)
// into decimal hours at full floating-point precision. Anything unparseable
// decodes to 0.0: upstream data quality is outside this package's control, so
// a bad cell degrades a single entry instead of aborting the run.
func ParseClock(s string) float64 {
	parts := strings.Split(s, ":")

	switch len(parts) {
	case 3:
		h, errH := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		sec, errS := strconv.Atoi(parts[2])
		if errH != nil || errM != nil || errS != nil {
			return 0.0
		}
		return float64(h) + float64(m)/60 + float64(sec)/3600
	case 2:
		h, errH := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		if errH != nil || errM != nil {
			return 0.0
		}
		return float64(h) + float64(m)/60
	}

	return 0.0
}

// FormatClock encodes non-negative decimal hours as zero-padded HH:MM:SS.
// The total is rounded to the nearest whole second here and nowhere else.
func FormatClock(hours float64) string {
	totalSeconds := int(math.Round(hours * 3600))
	h := totalSeconds / 3600
	m := (totalSeconds % 3600) / 60
	s := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
