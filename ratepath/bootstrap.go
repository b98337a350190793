package ratepath

import (
	"fmt"
	"time"

	"github.com/avelezX/xerenity-fe-sub001/ratepath/config"
	"github.com/avelezX/xerenity-fe-sub001/utils"
)

// RatePathPoint is the implied overnight rate for the period ending at a
// policy meeting.
//
// Rates are in percent, changes in basis points.
type RatePathPoint struct {
	MeetingDate         time.Time `json:"meeting_date"`
	ImpliedRate         float64   `json:"implied_rate"`
	ImpliedChangeBps    int       `json:"implied_change_bps"`
	CumulativeChangeBps int       `json:"cumulative_change_bps"`
	OISRateAtMeeting    float64   `json:"ois_rate_at_meeting"`
}

// DiscardReason says why a candidate meeting produced no point.
type DiscardReason int

const (
	// ReasonNotFuture: the meeting is on or before the curve date.
	ReasonNotFuture DiscardReason = iota + 1
	// ReasonBeyondCurve: the meeting is past the curve's last tenor.
	ReasonBeyondCurve
	// ReasonTooClose: the meeting is too close to the curve date to resolve.
	ReasonTooClose
	// ReasonNoRate: the curve could not be interpolated at the meeting tenor.
	ReasonNoRate
	// ReasonNoElapsedDays: no calendar days between curve date and meeting.
	ReasonNoElapsedDays
	// ReasonEmptyPeriod: the period since the previous meeting has no days.
	ReasonEmptyPeriod
)

func (r DiscardReason) String() string {
	switch r {
	case ReasonNotFuture:
		return "not_future"
	case ReasonBeyondCurve:
		return "beyond_curve"
	case ReasonTooClose:
		return "too_close"
	case ReasonNoRate:
		return "no_rate"
	case ReasonNoElapsedDays:
		return "no_elapsed_days"
	case ReasonEmptyPeriod:
		return "empty_period"
	default:
		return fmt.Sprintf("DiscardReason(%d)", int(r))
	}
}

// Discard records a meeting that was skipped.
type Discard struct {
	MeetingDate time.Time
	Reason      DiscardReason
}

// Request holds the inputs of a bootstrap.
type Request struct {
	Curve       Curve
	CurrentRate float64
	Meetings    []time.Time
	CurveDate   time.Time
	// DayBasis is the accrual divisor; non-positive selects the config default.
	DayBasis int
}

// Result is the rate path plus the meetings that did not make it.
type Result struct {
	Points    []RatePathPoint
	Discarded []Discard
}

type validMeeting struct {
	date    time.Time
	parRate float64
	days    int
}

// BootstrapRatePath derives the overnight rate implied for each inter-meeting
// period from a par OIS curve, using the default config.
//
// Meetings may be unsorted and contain duplicates. Meetings that cannot be
// resolved are omitted; an unresolvable call returns an empty slice.
func BootstrapRatePath(curve Curve, currentRate float64, meetings []time.Time, curveDate time.Time, dayBasis int) []RatePathPoint {
	return Bootstrap(Request{
		Curve:       curve,
		CurrentRate: currentRate,
		Meetings:    meetings,
		CurveDate:   curveDate,
		DayBasis:    dayBasis,
	}, config.DefaultConfig).Points
}

// Bootstrap solves the rate path period by period.
//
// A par rate R at T days is the day-weighted average of the period rates up to
// T, so R(T)*T/basis = sum(r_k*d_k)/basis. With every earlier r_k known, the
// newest period's rate is the curve's weighted total at T minus the weight
// already accounted for, divided by the period's days.
func Bootstrap(req Request, cfg config.Config) Result {
	cfg = cfg.WithDefaults()
	basis := float64(req.DayBasis)
	if req.DayBasis <= 0 {
		basis = float64(cfg.DefaultDayBasis)
	}

	res := Result{Points: []RatePathPoint{}}
	curveDate := utils.DateOnly(req.CurveDate)

	future := make([]time.Time, 0, len(req.Meetings))
	for _, m := range req.Meetings {
		m = utils.DateOnly(m)
		if !m.After(curveDate) {
			res.discard(m, ReasonNotFuture)
			continue
		}
		future = append(future, m)
	}
	if len(future) == 0 {
		return res
	}
	utils.SortDates(future)

	valid := validMeetings(req.Curve, curveDate, future, cfg, &res)
	if len(valid) == 0 {
		return res
	}

	accrued := 0.0
	prevRate := req.CurrentRate
	periodStart := curveDate
	for _, m := range valid {
		periodDays := utils.CalendarDays(periodStart, m.date)
		if periodDays <= 0 {
			res.discard(m.date, ReasonEmptyPeriod)
			continue
		}

		weighted := m.parRate * float64(m.days) / basis
		implied := (weighted - accrued) * basis / float64(periodDays)
		accrued = weighted

		res.Points = append(res.Points, RatePathPoint{
			MeetingDate:         m.date,
			ImpliedRate:         utils.RoundTo(implied, cfg.RateDecimals),
			ImpliedChangeBps:    utils.RoundInt((implied - prevRate) * 100),
			CumulativeChangeBps: utils.RoundInt((implied - req.CurrentRate) * 100),
			OISRateAtMeeting:    utils.RoundTo(m.parRate, cfg.RateDecimals),
		})
		prevRate = implied
		periodStart = m.date
	}
	return res
}

// validMeetings keeps the sorted future meetings the curve can price.
func validMeetings(curve Curve, curveDate time.Time, future []time.Time, cfg config.Config, res *Result) []validMeeting {
	maxTenor := curve.MaxTenor()
	out := make([]validMeeting, 0, len(future))
	for _, m := range future {
		months := utils.MonthsBetween(curveDate, m, cfg.DaysPerMonth)
		if months > maxTenor {
			res.discard(m, ReasonBeyondCurve)
			continue
		}
		if months < cfg.MinMonthsToMeeting {
			res.discard(m, ReasonTooClose)
			continue
		}
		rate, ok := curve.interpolate(months, cfg.NodeTolerance)
		if !ok {
			res.discard(m, ReasonNoRate)
			continue
		}
		days := utils.CalendarDays(curveDate, m)
		if days <= 0 {
			res.discard(m, ReasonNoElapsedDays)
			continue
		}
		out = append(out, validMeeting{date: m, parRate: rate, days: days})
	}
	return out
}

func (r *Result) discard(date time.Time, reason DiscardReason) {
	r.Discarded = append(r.Discarded, Discard{MeetingDate: date, Reason: reason})
}
