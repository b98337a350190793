package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/avelezX/xerenity-fe-sub001/calendar"
	"github.com/avelezX/xerenity-fe-sub001/ratepath"
	"github.com/avelezX/xerenity-fe-sub001/utils"
	"github.com/google/subcommands"
)

type meetingJSON struct {
	Date  string `json:"date"`
	Label string `json:"label"`
}

type meetingsCmd struct {
	*app

	calendarName string
	after        string
}

func (*meetingsCmd) Name() string     { return "meetings" }
func (*meetingsCmd) Synopsis() string { return "list bundled policy meeting dates" }
func (*meetingsCmd) Usage() string {
	return `ratepath meetings [-calendar <id>] [-after <date>]

  Prints the decision dates of a bundled calendar as JSON.
`
}

func (c *meetingsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.calendarName, "calendar", "", "calendar id (default $RATEPATH_CALENDAR)")
	f.StringVar(&c.after, "after", "", "only dates strictly after this YYYY-MM-DD date")
}

func (c *meetingsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := calendar.ParseID(firstNonEmpty(c.calendarName, c.cfg.Calendar))
	if err != nil {
		fmt.Fprintf(c.stderr, "%v (known: %v)\n", err, calendar.IDs())
		return subcommands.ExitUsageError
	}

	dates, err := calendar.Meetings(id)
	if strings.TrimSpace(c.after) != "" {
		after, perr := utils.ParseDate(strings.TrimSpace(c.after))
		if perr != nil {
			fmt.Fprintf(c.stderr, "invalid -after: %v\n", perr)
			return subcommands.ExitUsageError
		}
		dates, err = calendar.MeetingsAfter(id, after)
	}
	if err != nil {
		return c.writeError(err.Error())
	}

	out := make([]meetingJSON, 0, len(dates))
	for _, d := range dates {
		out = append(out, meetingJSON{Date: utils.FormatDate(d), Label: ratepath.FormatMeetingDate(d)})
	}
	return c.writeJSON(out)
}
