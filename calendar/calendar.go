package calendar

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// CalendarID identifies a policy-meeting calendar.
type CalendarID string

const (
	// FOMC is the US Federal Open Market Committee decision calendar.
	FOMC CalendarID = "FOMC"
)

// ErrUnknownCalendar is returned for calendar IDs with no bundled dates.
var ErrUnknownCalendar = errors.New("unknown meeting calendar")

var meetingDates = map[CalendarID][]time.Time{}

func init() {
	meetingDates[FOMC] = mustParse(fomcDecisionDates)
}

func mustParse(dates []string) []time.Time {
	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			panic(fmt.Sprintf("calendar: bad bundled date %q: %v", d, err))
		}
		out = append(out, t)
	}
	return out
}

// IDs lists the bundled calendars.
func IDs() []CalendarID {
	ids := make([]CalendarID, 0, len(meetingDates))
	for id := range meetingDates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// ParseID normalizes a calendar name such as "fomc".
func ParseID(name string) (CalendarID, error) {
	id := CalendarID(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := meetingDates[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCalendar, name)
	}
	return id, nil
}

// Meetings returns a copy of the bundled decision dates, ascending.
func Meetings(id CalendarID) ([]time.Time, error) {
	dates, ok := meetingDates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalendar, id)
	}
	out := make([]time.Time, len(dates))
	copy(out, dates)
	return out, nil
}

// MeetingsAfter returns the bundled decision dates strictly after t.
func MeetingsAfter(id CalendarID, t time.Time) ([]time.Time, error) {
	dates, err := Meetings(id)
	if err != nil {
		return nil, err
	}
	i := sort.Search(len(dates), func(i int) bool {
		return dates[i].After(t)
	})
	return dates[i:], nil
}

// LoadMeetings reads a JSON array of YYYY-MM-DD dates, e.g. a calendar
// maintained outside the binary. The result is sorted ascending.
func LoadMeetings(r io.Reader) ([]time.Time, error) {
	var raw []string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode meeting dates: %w", err)
	}
	out := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("meeting date %q: %w", s, err)
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out, nil
}
