package marketdata

import "time"

// ReferenceRateFeed supplies overnight reference fixings (e.g. SOFR, IBR) in percent.
type ReferenceRateFeed interface {
	RateOn(date time.Time) (float64, bool)
}

// MapReferenceRateFeed is a static map-backed implementation keyed by YYYY-MM-DD.
type MapReferenceRateFeed struct {
	rates map[string]float64
}

func NewMapReferenceRateFeed(rates map[string]float64) *MapReferenceRateFeed {
	return &MapReferenceRateFeed{rates: rates}
}

func (m *MapReferenceRateFeed) RateOn(date time.Time) (float64, bool) {
	val, ok := m.rates[date.Format("2006-01-02")]
	return val, ok
}

// LatestOnOrBefore walks back up to maxLookback days from date and returns the
// first fixing found, with the fixing date.
func LatestOnOrBefore(feed ReferenceRateFeed, date time.Time, maxLookback int) (float64, time.Time, bool) {
	for i := 0; i <= maxLookback; i++ {
		d := date.AddDate(0, 0, -i)
		if r, ok := feed.RateOn(d); ok {
			return r, d, true
		}
	}
	return 0, time.Time{}, false
}
