package cli

import (
	"fmt"
	"strings"

	"github.com/DanielWang2002/KanseiTabi/internal/trip"
	"github.com/DanielWang2002/KanseiTabi/internal/ui"
)

func runPlan(state *trip.State, args []string) int {
	if len(args) == 0 {
		ui.Fail("usage: tabi plan <add|ls|rm>")
		return 2
	}
	sub, a := args[0], args[1:]

	switch sub {
	case "add":
		fs := newFlagSet("plan add")
		day := fs.IntP("day", "d", 1, "trip day to plan")
		at := fs.StringP("time", "t", "", "time as HH:MM (required)")
		location := fs.StringP("location", "l", "", "where it happens")
		notes := fs.String("notes", "", "free-form notes")
		if err := fs.Parse(a); err != nil {
			ui.Fail("plan add: " + err.Error())
			return 2
		}
		activity := strings.Join(fs.Args(), " ")
		item, rej, err := state.AddItineraryItem(trip.ItineraryInput{
			Day:      *day,
			Time:     *at,
			Activity: activity,
			Location: *location,
			Notes:    *notes,
		})
		if rej != nil {
			ui.Fail("plan add: " + rej.Reason)
			return 2
		}
		if err != nil {
			ui.Fail("save: " + err.Error())
			return 1
		}
		ui.OK(fmt.Sprintf("added to day %d: %s %s", item.Day, item.Time, item.Activity))
		return 0

	case "ls":
		items := state.Itinerary()
		if len(items) == 0 {
			fmt.Println(ui.Muted.Render("nothing planned yet"))
			return 0
		}
		// Indexes are positions in the flat list, as `rm` expects; the list
		// order is the shared time sort, so a day's lines are already sorted.
		var lines []string
		for _, d := range state.Days() {
			dayItems := state.ItemsForDay(d)
			if len(dayItems) == 0 {
				continue
			}
			lines = append(lines, ui.Accent.Render(fmt.Sprintf("Day %d", d)))
			for i, it := range items {
				if it.Day != d {
					continue
				}
				line := fmt.Sprintf("%2d. %s  %s", i+1, it.Time, ui.Title.Render(it.Activity))
				if it.Location != "" {
					line += ui.Muted.Render("  @ " + it.Location)
				}
				lines = append(lines, line)
			}
		}
		fmt.Println(ui.Panel(strings.Join(lines, "\n")))
		return 0

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: tabi plan rm <index>")
			return 2
		}
		items := state.Itinerary()
		idx, err := parseIndex(a[0], len(items))
		if err != nil {
			ui.Fail("rm: " + err.Error())
			return 2
		}
		if err := state.RemoveItineraryItem(items[idx].ID); err != nil {
			ui.Fail("save: " + err.Error())
			return 1
		}
		ui.OK("removed")
		return 0
	}

	ui.Fail("usage: tabi plan <add|ls|rm>")
	return 2
}
