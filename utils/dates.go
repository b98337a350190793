package utils

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const isoLayout = "2006-01-02"

// SortDates sorts a slice of time.Time in ascending order.
func SortDates(dates []time.Time) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
}

// ParseDate converts YYYY-MM-DD to a UTC midnight time.Time.
func ParseDate(strDate string) (time.Time, error) {
	t, err := time.Parse(isoLayout, strDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", strDate, err)
	}
	return t, nil
}

// ParseDates parses a list of ISO dates, preserving order.
func ParseDates(strDates []string) ([]time.Time, error) {
	out := make([]time.Time, 0, len(strDates))
	for _, s := range strDates {
		t, err := ParseDate(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(isoLayout)
}

// DateOnly drops the clock and location of t, keeping its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CalendarDays returns the number of calendar days from start to end.
// Both are reduced to their calendar date first, so DST or clock offsets never
// leak into the count.
func CalendarDays(start, end time.Time) int {
	hours := DateOnly(end).Sub(DateOnly(start)).Hours()
	return int(decimal.NewFromFloat(hours / 24).Round(0).IntPart())
}

// MonthsBetween is a coarse calendar-month difference where each day counts as
// 1/daysPerMonth of a month:
//
//	(y2-y1)*12 + (m2-m1) + (d2-d1)/daysPerMonth
//
// It is used for curve tenor lookups, not for accrual.
func MonthsBetween(start, end time.Time, daysPerMonth float64) float64 {
	y1, m1, d1 := start.Date()
	y2, m2, d2 := end.Date()
	return float64((y2-y1)*12+int(m2-m1)) + float64(d2-d1)/daysPerMonth
}

// RoundTo rounds a float to the specified decimal places (half away from zero).
func RoundTo(val float64, decimals int32) float64 {
	f, _ := decimal.NewFromFloat(val).Round(decimals).Float64()
	return f
}

// RoundInt rounds a float to the nearest integer (half away from zero).
func RoundInt(val float64) int {
	return int(decimal.NewFromFloat(val).Round(0).IntPart())
}
