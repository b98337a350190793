package ratepath

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/avelezX/xerenity-fe-sub001/ratepath/config"
)

var (
	// ErrShortCurve is returned by Validate when the curve has fewer than 2 points.
	ErrShortCurve = errors.New("curve needs at least 2 points")
	// ErrUnsortedCurve is returned by Validate when tenors decrease.
	ErrUnsortedCurve = errors.New("curve tenors are not ascending")
	// ErrDuplicateTenor is returned by Validate when two adjacent points share a tenor.
	ErrDuplicateTenor = errors.New("curve has duplicate tenors")
)

// CurvePoint is a par rate (percent) quoted at a tenor in months.
type CurvePoint struct {
	TenorMonths float64 `json:"tenor_months"`
	Rate        float64 `json:"rate"`
}

// Curve is a par OIS curve sorted by strictly increasing tenor.
type Curve []CurvePoint

// Validate reports the first structural problem of the curve, if any.
func (c Curve) Validate() error {
	if len(c) < 2 {
		return ErrShortCurve
	}
	for i := 1; i < len(c); i++ {
		switch {
		case c[i].TenorMonths == c[i-1].TenorMonths:
			return fmt.Errorf("%w: %g", ErrDuplicateTenor, c[i].TenorMonths)
		case c[i].TenorMonths < c[i-1].TenorMonths:
			return fmt.Errorf("%w: %g after %g", ErrUnsortedCurve, c[i].TenorMonths, c[i-1].TenorMonths)
		}
	}
	return nil
}

// MaxTenor returns the last tenor, or 0 for an empty curve.
func (c Curve) MaxTenor() float64 {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1].TenorMonths
}

// Clone returns an independent copy of the curve.
func (c Curve) Clone() Curve {
	if c == nil {
		return nil
	}
	out := make(Curve, len(c))
	copy(out, c)
	return out
}

// Interpolate returns the linearly interpolated rate at months, using the
// default node tolerance.
//
// The second result is false when the curve has fewer than 2 points or months
// is outside [first tenor, last tenor].
func (c Curve) Interpolate(months float64) (float64, bool) {
	return c.interpolate(months, config.DefaultConfig.NodeTolerance)
}

func (c Curve) interpolate(months, tol float64) (float64, bool) {
	n := len(c)
	if n < 2 || math.IsNaN(months) {
		return 0, false
	}
	if months < c[0].TenorMonths || months > c[n-1].TenorMonths {
		return 0, false
	}

	// First node with tenor >= months - tol. Always < n because the last
	// tenor is >= months.
	i := sort.Search(n, func(i int) bool {
		return c[i].TenorMonths >= months-tol
	})

	if math.Abs(c[i].TenorMonths-months) <= tol {
		if c.duplicateAt(i) {
			return 0, false
		}
		return c[i].Rate, true
	}

	// c[i] lies strictly above months, so i > 0 and (i-1, i) brackets it.
	lo, hi := c[i-1], c[i]
	span := hi.TenorMonths - lo.TenorMonths
	if span <= 0 {
		return 0, false
	}
	t := (months - lo.TenorMonths) / span
	return lo.Rate + t*(hi.Rate-lo.Rate), true
}

// duplicateAt reports whether node i shares its tenor with a neighbour.
func (c Curve) duplicateAt(i int) bool {
	if i > 0 && c[i-1].TenorMonths == c[i].TenorMonths {
		return true
	}
	return i+1 < len(c) && c[i+1].TenorMonths == c[i].TenorMonths
}
