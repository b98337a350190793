package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/avelezX/xerenity-fe-sub001/calendar"
	"github.com/avelezX/xerenity-fe-sub001/marketdata/sqlstore"
	"github.com/avelezX/xerenity-fe-sub001/ratepath"
	"github.com/avelezX/xerenity-fe-sub001/ratepath/config"
	"github.com/avelezX/xerenity-fe-sub001/utils"
	"github.com/google/subcommands"
)

// bootstrapInput is the JSON request of the bootstrap command.
//
// Conventions:
// - rates are in percent (e.g., 4.33 means 4.33%)
// - meetings are YYYY-MM-DD; when empty, the calendar's dates are used
// - day_basis wins over day_count when both are set
type bootstrapInput struct {
	CurveDate   string         `json:"curve_date"`
	CurrentRate *float64       `json:"current_rate"`
	Curve       ratepath.Curve `json:"curve"`
	Meetings    []string       `json:"meetings,omitempty"`
	Calendar    string         `json:"calendar,omitempty"`
	DayCount    string         `json:"day_count,omitempty"`
	DayBasis    int            `json:"day_basis,omitempty"`
}

type pathPointJSON struct {
	Meeting             string  `json:"meeting"`
	Label               string  `json:"label"`
	ImpliedRate         float64 `json:"implied_rate"`
	ImpliedChangeBps    int     `json:"implied_change_bps"`
	CumulativeChangeBps int     `json:"cumulative_change_bps"`
	OISRateAtMeeting    float64 `json:"ois_rate_at_meeting"`
}

type discardJSON struct {
	Meeting string `json:"meeting"`
	Reason  string `json:"reason"`
}

type bootstrapOutput struct {
	CurveDate   string          `json:"curve_date"`
	CurrentRate float64         `json:"current_rate"`
	DayBasis    int             `json:"day_basis"`
	Points      []pathPointJSON `json:"points"`
	Discarded   []discardJSON   `json:"discarded,omitempty"`
}

type bootstrapCmd struct {
	*app

	input        string
	format       string
	style        string
	calendarName string
	meetingsFile string
	dayCount     string
	verbose      bool

	curveName string
	rateName  string
	asOf      string
	dsn       string
	driver    string
}

func (*bootstrapCmd) Name() string     { return "bootstrap" }
func (*bootstrapCmd) Synopsis() string { return "derive the OIS-implied policy rate path" }
func (*bootstrapCmd) Usage() string {
	return `ratepath bootstrap [-input <file>] [-format json|markdown] [-v]
ratepath bootstrap -curve <name> -rate <name> [-asof <date>] [-calendar <id> | -meetings <file>]

  Reads a JSON request from -input or stdin, or loads the curve and the
  reference rate from the market data store, and prints the implied rate path.
`
}

func (c *bootstrapCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "input", "", "JSON request path (reads stdin if omitted)")
	f.StringVar(&c.format, "format", "json", "output format: json or markdown")
	f.StringVar(&c.style, "style", "auto", "glamour style for markdown output (auto, dark, light, notty)")
	f.StringVar(&c.calendarName, "calendar", "", "meeting calendar when the request has no meetings (default $RATEPATH_CALENDAR)")
	f.StringVar(&c.meetingsFile, "meetings", "", "JSON array of meeting dates, overrides the calendar")
	f.StringVar(&c.dayCount, "daycount", "", "day count when the request has none (default $RATEPATH_DAY_COUNT)")
	f.BoolVar(&c.verbose, "v", false, "log discarded meetings to stderr")

	f.StringVar(&c.curveName, "curve", "", "load the par curve with this name from the store")
	f.StringVar(&c.rateName, "rate", "", "reference rate name in the store (defaults to -curve)")
	f.StringVar(&c.asOf, "asof", "", "store lookup date (defaults to today)")
	f.StringVar(&c.dsn, "dsn", "", "store DSN (default $RATEPATH_DB_DSN)")
	f.StringVar(&c.driver, "driver", "", "store driver: postgres or sqlite (default $RATEPATH_DB_DRIVER)")
}

func (c *bootstrapCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format := strings.ToLower(strings.TrimSpace(c.format))
	if format != "json" && format != "markdown" {
		fmt.Fprintf(c.stderr, "unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	var (
		in  bootstrapInput
		err error
	)
	if strings.TrimSpace(c.curveName) != "" {
		in, err = c.loadFromStore(ctx)
	} else {
		in, err = c.loadFromJSON()
	}
	if err != nil {
		return c.writeError(err.Error())
	}

	req, err := c.request(in)
	if err != nil {
		return c.writeError(err.Error())
	}
	res := ratepath.Bootstrap(req, config.DefaultConfig)

	if c.verbose {
		for _, d := range res.Discarded {
			c.logger.Printf("skipped meeting %s: %s", utils.FormatDate(d.MeetingDate), d.Reason)
		}
	}

	out := toOutput(req, res)
	if format == "markdown" {
		rendered, err := renderMarkdown(out, c.style)
		if err != nil {
			return c.writeError(fmt.Sprintf("render markdown: %v", err))
		}
		fmt.Fprint(c.stdout, rendered)
		return subcommands.ExitSuccess
	}
	return c.writeJSON(out)
}

func (c *bootstrapCmd) loadFromJSON() (bootstrapInput, error) {
	raw, err := c.readInput(c.input)
	if err != nil {
		return bootstrapInput{}, fmt.Errorf("failed to read input: %v", err)
	}
	var in bootstrapInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return bootstrapInput{}, fmt.Errorf("failed to parse JSON input: %v", err)
	}
	return in, nil
}

func (c *bootstrapCmd) loadFromStore(ctx context.Context) (bootstrapInput, error) {
	asOf := utils.DateOnly(time.Now())
	if strings.TrimSpace(c.asOf) != "" {
		d, err := utils.ParseDate(strings.TrimSpace(c.asOf))
		if err != nil {
			return bootstrapInput{}, fmt.Errorf("invalid asof: %v", err)
		}
		asOf = d
	}

	store, err := openStore(ctx, firstNonEmpty(c.driver, c.cfg.DBDriver), firstNonEmpty(c.dsn, c.cfg.DBDSN))
	if err != nil {
		return bootstrapInput{}, err
	}
	defer store.Close()

	snap, err := store.Snapshot(ctx, c.curveName, asOf)
	if err != nil {
		return bootstrapInput{}, fmt.Errorf("load curve: %w", err)
	}
	// The reference rate must be observed on the curve date.
	rate, fixed, err := store.ReferenceRate(ctx, firstNonEmpty(c.rateName, c.curveName), snap.AsOf)
	if err != nil {
		return bootstrapInput{}, fmt.Errorf("load reference rate: %w", err)
	}
	if !fixed.Equal(snap.AsOf) {
		c.logger.Printf("reference rate fixed %s, curve is %s", utils.FormatDate(fixed), utils.FormatDate(snap.AsOf))
	}

	return bootstrapInput{
		CurveDate:   utils.FormatDate(snap.AsOf),
		CurrentRate: &rate,
		Curve:       snap.Curve,
	}, nil
}

// request validates the JSON request and resolves meetings and day basis.
func (c *bootstrapCmd) request(in bootstrapInput) (ratepath.Request, error) {
	curveDate, err := utils.ParseDate(strings.TrimSpace(in.CurveDate))
	if err != nil {
		return ratepath.Request{}, fmt.Errorf("invalid curve_date: %v", err)
	}
	if in.CurrentRate == nil {
		return ratepath.Request{}, fmt.Errorf("current_rate is required")
	}
	if err := in.Curve.Validate(); err != nil {
		return ratepath.Request{}, fmt.Errorf("invalid curve: %v", err)
	}

	basis := in.DayBasis
	if basis <= 0 {
		basis, err = utils.DayBasis(firstNonEmpty(in.DayCount, c.dayCount, c.cfg.DayCount))
		if err != nil {
			return ratepath.Request{}, err
		}
	}

	meetings, err := c.meetings(in)
	if err != nil {
		return ratepath.Request{}, err
	}

	return ratepath.Request{
		Curve:       in.Curve,
		CurrentRate: *in.CurrentRate,
		Meetings:    meetings,
		CurveDate:   curveDate,
		DayBasis:    basis,
	}, nil
}

func (c *bootstrapCmd) meetings(in bootstrapInput) ([]time.Time, error) {
	if len(in.Meetings) > 0 {
		ds, err := utils.ParseDates(in.Meetings)
		if err != nil {
			return nil, fmt.Errorf("invalid meetings: %v", err)
		}
		return ds, nil
	}
	if strings.TrimSpace(c.meetingsFile) != "" {
		fh, err := os.Open(c.meetingsFile)
		if err != nil {
			return nil, fmt.Errorf("open meetings: %v", err)
		}
		defer fh.Close()
		return calendar.LoadMeetings(fh)
	}
	id, err := calendar.ParseID(firstNonEmpty(in.Calendar, c.calendarName, c.cfg.Calendar))
	if err != nil {
		return nil, err
	}
	return calendar.Meetings(id)
}

func toOutput(req ratepath.Request, res ratepath.Result) bootstrapOutput {
	out := bootstrapOutput{
		CurveDate:   utils.FormatDate(req.CurveDate),
		CurrentRate: req.CurrentRate,
		DayBasis:    req.DayBasis,
		Points:      make([]pathPointJSON, 0, len(res.Points)),
	}
	for _, p := range res.Points {
		out.Points = append(out.Points, pathPointJSON{
			Meeting:             utils.FormatDate(p.MeetingDate),
			Label:               ratepath.FormatMeetingDate(p.MeetingDate),
			ImpliedRate:         p.ImpliedRate,
			ImpliedChangeBps:    p.ImpliedChangeBps,
			CumulativeChangeBps: p.CumulativeChangeBps,
			OISRateAtMeeting:    p.OISRateAtMeeting,
		})
	}
	for _, d := range res.Discarded {
		out.Discarded = append(out.Discarded, discardJSON{
			Meeting: utils.FormatDate(d.MeetingDate),
			Reason:  d.Reason.String(),
		})
	}
	return out
}

func openStore(ctx context.Context, driver, dsn string) (*sqlstore.Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("store DSN is required (-dsn or RATEPATH_DB_DSN)")
	}
	return sqlstore.Open(ctx, driver, dsn)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
