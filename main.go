package main

import (
	"fmt"
	"log"

	"github.com/avelezX/xerenity-fe-sub001/calendar"
	"github.com/avelezX/xerenity-fe-sub001/marketdata"
	"github.com/avelezX/xerenity-fe-sub001/ratepath"
	"github.com/avelezX/xerenity-fe-sub001/utils"
)

func main() {
	curve := ratepath.Curve{
		{TenorMonths: 0, Rate: 4.3300},
		{TenorMonths: 1, Rate: 4.3150},
		{TenorMonths: 3, Rate: 4.2900},
		{TenorMonths: 6, Rate: 4.2050},
		{TenorMonths: 9, Rate: 4.1200},
		{TenorMonths: 12, Rate: 4.0400},
		{TenorMonths: 18, Rate: 3.9300},
		{TenorMonths: 24, Rate: 3.8600},
	}

	curveDate, err := utils.ParseDate("2025-01-02")
	if err != nil {
		log.Fatal(err)
	}
	feed := marketdata.NewMapReferenceRateFeed(map[string]float64{"2025-01-02": 4.33})
	currentRate, ok := feed.RateOn(curveDate)
	if !ok {
		log.Fatalf("no reference fixing on %s", utils.FormatDate(curveDate))
	}

	meetings, err := calendar.Meetings(calendar.FOMC)
	if err != nil {
		log.Fatal(err)
	}

	path := ratepath.BootstrapRatePath(curve, currentRate, meetings, curveDate, 360)
	for _, p := range path {
		fmt.Printf("%s  %s  %6s  %6s\n",
			ratepath.FormatMeetingDate(p.MeetingDate),
			ratepath.FormatRate(p.ImpliedRate),
			ratepath.FormatBpsChange(p.ImpliedChangeBps),
			ratepath.FormatBpsChange(p.CumulativeChangeBps),
		)
	}
}
