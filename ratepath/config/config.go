package config

// Config holds the tunables of the rate path bootstrap.
// A Config is passed by value; there is no package-level active config so the
// bootstrap stays a pure function of its inputs.
type Config struct {
	// NodeTolerance is the distance in months within which a query tenor is
	// treated as hitting a curve node exactly.
	NodeTolerance float64

	// MinMonthsToMeeting rejects meetings too close to the curve date to be
	// resolved from the curve.
	MinMonthsToMeeting float64

	// DaysPerMonth is the day weight of the coarse month difference used for
	// tenor lookups. Changing it alters which meetings are accepted.
	DaysPerMonth float64

	// RateDecimals is the rounding applied to emitted rates.
	RateDecimals int32

	// DefaultDayBasis is used when the caller passes a non-positive basis.
	DefaultDayBasis int
}

// DefaultConfig provides the production values.
var DefaultConfig = Config{
	NodeTolerance:      0.001,
	MinMonthsToMeeting: 0.1,
	DaysPerMonth:       30,
	RateDecimals:       4,
	DefaultDayBasis:    360,
}

// WithDefaults fills zero fields of c from DefaultConfig.
func (c Config) WithDefaults() Config {
	if c.NodeTolerance <= 0 {
		c.NodeTolerance = DefaultConfig.NodeTolerance
	}
	if c.MinMonthsToMeeting <= 0 {
		c.MinMonthsToMeeting = DefaultConfig.MinMonthsToMeeting
	}
	if c.DaysPerMonth <= 0 {
		c.DaysPerMonth = DefaultConfig.DaysPerMonth
	}
	if c.RateDecimals <= 0 {
		c.RateDecimals = DefaultConfig.RateDecimals
	}
	if c.DefaultDayBasis <= 0 {
		c.DefaultDayBasis = DefaultConfig.DefaultDayBasis
	}
	return c
}
