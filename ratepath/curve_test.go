package ratepath_test

import (
	"errors"
	"math"
	"testing"

	"github.com/avelezX/xerenity-fe-sub001/ratepath"
)

func TestInterpolate_NodesReturnExactRate(t *testing.T) {
	t.Parallel()

	crv := ratepath.Curve{{0, 4.33}, {1, 4.31}, {3, 4.2712345}, {12, 4.00}}
	for _, p := range crv {
		got, ok := crv.Interpolate(p.TenorMonths)
		if !ok {
			t.Fatalf("Interpolate(%g) absent", p.TenorMonths)
		}
		if got != p.Rate {
			t.Fatalf("Interpolate(%g) = %.12f, want %.12f", p.TenorMonths, got, p.Rate)
		}
	}

	// Within node tolerance snaps to the node.
	got, ok := crv.Interpolate(3.0004)
	if !ok || got != 4.2712345 {
		t.Fatalf("Interpolate(3.0004) = %.12f, %v", got, ok)
	}
}

func TestInterpolate_Linear(t *testing.T) {
	t.Parallel()

	crv := ratepath.Curve{{0, 4.33}, {12, 4.00}}
	got, ok := crv.Interpolate(6)
	if !ok {
		t.Fatalf("Interpolate(6) absent")
	}
	if math.Abs(got-4.165) > 1e-12 {
		t.Fatalf("Interpolate(6) = %.12f, want 4.165", got)
	}

	crv = ratepath.Curve{{1, 4.0}, {3, 4.2}, {6, 3.9}}
	got, _ = crv.Interpolate(4.5)
	if math.Abs(got-4.05) > 1e-12 {
		t.Fatalf("Interpolate(4.5) = %.12f, want 4.05", got)
	}
	got, _ = crv.Interpolate(2)
	if math.Abs(got-4.1) > 1e-12 {
		t.Fatalf("Interpolate(2) = %.12f, want 4.1", got)
	}
}

func TestInterpolate_DefinedOnClosedRangeOnly(t *testing.T) {
	t.Parallel()

	crv := ratepath.Curve{{0.5, 4.3}, {2, 4.2}, {7, 4.1}, {24, 3.8}}
	for m := 0.5; m <= 24; m += 0.25 {
		if _, ok := crv.Interpolate(m); !ok {
			t.Fatalf("Interpolate(%g) absent inside range", m)
		}
	}
	for _, m := range []float64{0, 0.4999, 24.0001, 100, -1, math.NaN()} {
		if _, ok := crv.Interpolate(m); ok {
			t.Fatalf("Interpolate(%g) defined outside range", m)
		}
	}
}

func TestInterpolate_ShortCurveAbsent(t *testing.T) {
	t.Parallel()

	for _, crv := range []ratepath.Curve{nil, {}, {{12, 4.0}}} {
		for _, m := range []float64{0, 6, 12} {
			if _, ok := crv.Interpolate(m); ok {
				t.Fatalf("Interpolate(%g) defined on %d-point curve", m, len(crv))
			}
		}
	}
}

func TestInterpolate_DuplicateTenorAbsent(t *testing.T) {
	t.Parallel()

	crv := ratepath.Curve{{0, 4.3}, {6, 4.2}, {6, 4.1}, {12, 4.0}}
	if _, ok := crv.Interpolate(6); ok {
		t.Fatalf("Interpolate on duplicate node should be absent")
	}
	if got, ok := crv.Interpolate(3); !ok || math.Abs(got-4.25) > 1e-12 {
		t.Fatalf("Interpolate(3) = %.12f, %v", got, ok)
	}
	if got, ok := crv.Interpolate(9); !ok || math.Abs(got-4.05) > 1e-12 {
		t.Fatalf("Interpolate(9) = %.12f, %v", got, ok)
	}
}

func TestCurveValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		crv  ratepath.Curve
		want error
	}{
		{ratepath.Curve{{0, 4}, {1, 4}}, nil},
		{ratepath.Curve{{0, 4}}, ratepath.ErrShortCurve},
		{ratepath.Curve{{0, 4}, {3, 4}, {3, 4}}, ratepath.ErrDuplicateTenor},
		{ratepath.Curve{{0, 4}, {3, 4}, {2, 4}}, ratepath.ErrUnsortedCurve},
	}
	for _, c := range cases {
		err := c.crv.Validate()
		if c.want == nil && err != nil {
			t.Fatalf("Validate(%v) = %v, want nil", c.crv, err)
		}
		if c.want != nil && !errors.Is(err, c.want) {
			t.Fatalf("Validate(%v) = %v, want %v", c.crv, err, c.want)
		}
	}
}

func TestCurveClone(t *testing.T) {
	t.Parallel()

	crv := ratepath.Curve{{0, 4.33}, {12, 4.00}}
	cp := crv.Clone()
	cp[0].Rate = 9
	if crv[0].Rate != 4.33 {
		t.Fatalf("Clone shares storage with the original")
	}
	if crv.MaxTenor() != 12 {
		t.Fatalf("MaxTenor = %g", crv.MaxTenor())
	}
}
