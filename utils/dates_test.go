package utils_test

import (
	"math"
	"testing"
	"time"

	"github.com/avelezX/xerenity-fe-sub001/utils"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendarDays(t *testing.T) {
	t.Parallel()

	cases := []struct {
		start, end time.Time
		want       int
	}{
		{date(2025, 1, 1), date(2025, 3, 19), 77},
		{date(2025, 3, 19), date(2025, 6, 18), 91},
		{date(2024, 2, 28), date(2024, 3, 1), 2},
		{date(2025, 6, 18), date(2025, 3, 19), -91},
		{date(2025, 1, 1), date(2025, 1, 1), 0},
	}
	for _, c := range cases {
		if got := utils.CalendarDays(c.start, c.end); got != c.want {
			t.Fatalf("CalendarDays(%s, %s) = %d, want %d",
				utils.FormatDate(c.start), utils.FormatDate(c.end), got, c.want)
		}
	}
}

func TestCalendarDaysIgnoresClock(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 2, 1, 0, 0, 0, time.UTC)
	if got := utils.CalendarDays(start, end); got != 1 {
		t.Fatalf("CalendarDays across midnight = %d, want 1", got)
	}
}

func TestMonthsBetween(t *testing.T) {
	t.Parallel()

	got := utils.MonthsBetween(date(2025, 1, 1), date(2025, 3, 19), 30)
	if math.Abs(got-2.6) > 1e-12 {
		t.Fatalf("MonthsBetween = %.12f, want 2.6", got)
	}

	// Day-of-month going backwards subtracts a fraction.
	got = utils.MonthsBetween(date(2025, 1, 31), date(2025, 3, 1), 30)
	want := 2.0 - 30.0/30.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("MonthsBetween = %.12f, want %.12f", got, want)
	}

	got = utils.MonthsBetween(date(2024, 11, 15), date(2026, 1, 15), 30)
	if math.Abs(got-14) > 1e-12 {
		t.Fatalf("MonthsBetween across years = %.12f, want 14", got)
	}
}

func TestParseDates(t *testing.T) {
	t.Parallel()

	ds, err := utils.ParseDates([]string{"2025-06-18", "2025-03-19"})
	if err != nil {
		t.Fatalf("ParseDates error: %v", err)
	}
	if len(ds) != 2 || !ds[0].Equal(date(2025, 6, 18)) || !ds[1].Equal(date(2025, 3, 19)) {
		t.Fatalf("ParseDates = %v", ds)
	}

	if _, err := utils.ParseDates([]string{"2025-13-01"}); err == nil {
		t.Fatalf("expected error for invalid month")
	}
}

func TestSortDates(t *testing.T) {
	t.Parallel()

	ds := []time.Time{date(2025, 6, 18), date(2025, 1, 29), date(2025, 3, 19)}
	utils.SortDates(ds)
	for i := 1; i < len(ds); i++ {
		if ds[i].Before(ds[i-1]) {
			t.Fatalf("dates not sorted: %v", ds)
		}
	}
}

func TestRounding(t *testing.T) {
	t.Parallel()

	if got := utils.RoundTo(4.176916666, 4); got != 4.1769 {
		t.Fatalf("RoundTo = %v, want 4.1769", got)
	}
	if got := utils.RoundInt(-7.150000000003); got != -7 {
		t.Fatalf("RoundInt = %d, want -7", got)
	}
	if got := utils.RoundInt(2.5); got != 3 {
		t.Fatalf("RoundInt(2.5) = %d, want 3", got)
	}
	if got := utils.RoundInt(-2.5); got != -3 {
		t.Fatalf("RoundInt(-2.5) = %d, want -3", got)
	}
}

func TestDayBasis(t *testing.T) {
	t.Parallel()

	for conv, want := range map[string]int{"ACT/360": 360, "act/365f": 365, "ACT/365": 365, "": 360} {
		got, err := utils.DayBasis(conv)
		if err != nil {
			t.Fatalf("DayBasis(%q) error: %v", conv, err)
		}
		if got != want {
			t.Fatalf("DayBasis(%q) = %d, want %d", conv, got, want)
		}
	}
	if _, err := utils.DayBasis("30/360"); err == nil {
		t.Fatalf("expected error for 30/360")
	}

	yf := utils.YearFraction(date(2025, 1, 1), date(2026, 1, 1), "ACT/360")
	if math.Abs(yf-365.0/360.0) > 1e-12 {
		t.Fatalf("YearFraction = %.12f", yf)
	}
}
