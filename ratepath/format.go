package ratepath

import (
	"fmt"
	"strconv"
	"time"
)

var monthAbbrev = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// FormatMeetingDate renders a meeting as Mon'YY, e.g. Mar'25.
func FormatMeetingDate(t time.Time) string {
	return fmt.Sprintf("%s'%02d", monthAbbrev[t.Month()-1], t.Year()%100)
}

// FormatBpsChange renders a change in bps with an explicit sign, or UNCH.
func FormatBpsChange(bps int) string {
	switch {
	case bps == 0:
		return "UNCH"
	case bps > 0:
		return "+" + strconv.Itoa(bps)
	default:
		return strconv.Itoa(bps)
	}
}

// FormatRate renders a percent rate with four decimals.
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 4, 64) + "%"
}
