package main

import (
	"fmt"
	"strings"

	"github.com/avelezX/xerenity-fe-sub001/ratepath"
	"github.com/charmbracelet/glamour"
)

// markdownTable lays the path out as meeting, implied rate, period change,
// cumulative change.
func markdownTable(out bootstrapOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Implied rate path\n\nCurve date %s, current rate %s, ACT/%d\n\n",
		out.CurveDate, ratepath.FormatRate(out.CurrentRate), out.DayBasis)

	if len(out.Points) == 0 {
		b.WriteString("No meeting could be resolved from the curve.\n")
		return b.String()
	}

	b.WriteString("| Meeting | Implied | Change | Cumulative | OIS |\n")
	b.WriteString("|:--|--:|--:|--:|--:|\n")
	for _, p := range out.Points {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			p.Label,
			ratepath.FormatRate(p.ImpliedRate),
			ratepath.FormatBpsChange(p.ImpliedChangeBps),
			ratepath.FormatBpsChange(p.CumulativeChangeBps),
			ratepath.FormatRate(p.OISRateAtMeeting),
		)
	}
	return b.String()
}

func renderMarkdown(out bootstrapOutput, style string) (string, error) {
	opt := glamour.WithStandardStyle(style)
	if style == "" || style == "auto" {
		opt = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return "", err
	}
	return r.Render(markdownTable(out))
}
