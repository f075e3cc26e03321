package report

import "fmt"

// InvalidRateError reports a non-positive billable rate. Amount formulas are
// undefined without a positive rate, so no table is built.
type InvalidRateError struct {
	Rate float64
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid billable rate %v: must be positive", e.Rate)
}
