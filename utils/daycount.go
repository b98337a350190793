package utils

import (
	"fmt"
	"strings"
	"time"
)

// DayBasis returns the day-count divisor for an actual/fixed convention.
// Supported conventions: ACT/360, ACT/365F (alias ACT/365).
func DayBasis(convention string) (int, error) {
	switch strings.ToUpper(strings.TrimSpace(convention)) {
	case "ACT/360", "":
		return 360, nil
	case "ACT/365F", "ACT/365":
		return 365, nil
	default:
		return 0, fmt.Errorf("unsupported day count %q (use ACT/360 or ACT/365F)", convention)
	}
}

// YearFraction computes the accrual fraction between two dates as calendar
// days over the convention's basis. Unknown conventions fall back to ACT/365F.
func YearFraction(start, end time.Time, convention string) float64 {
	basis, err := DayBasis(convention)
	if err != nil {
		basis = 365
	}
	return float64(CalendarDays(start, end)) / float64(basis)
}
