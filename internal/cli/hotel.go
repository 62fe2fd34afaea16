package cli

import (
	"fmt"
	"strings"

	"github.com/DanielWang2002/KanseiTabi/internal/trip"
	"github.com/DanielWang2002/KanseiTabi/internal/ui"
)

func runHotel(state *trip.State, args []string) int {
	if len(args) == 0 {
		ui.Fail("usage: tabi hotel <add|ls|rm>")
		return 2
	}
	sub, a := args[0], args[1:]

	switch sub {
	case "add":
		fs := newFlagSet("hotel add")
		name := fs.StringP("name", "n", "", "hotel name (required)")
		address := fs.StringP("address", "a", "", "street address (required)")
		mapsURL := fs.String("maps", "", "map link (generated from the address if empty)")
		checkIn := fs.String("check-in", "", "check-in time (default 15:00)")
		checkOut := fs.String("check-out", "", "check-out time (default 11:00)")
		notes := fs.String("notes", "", "free-form notes, e.g. booking id")
		if err := fs.Parse(a); err != nil {
			ui.Fail("hotel add: " + err.Error())
			return 2
		}
		h, rej, err := state.AddHotel(trip.HotelInput{
			Name:     *name,
			Address:  *address,
			MapsURL:  *mapsURL,
			CheckIn:  *checkIn,
			CheckOut: *checkOut,
			Notes:    *notes,
		})
		if rej != nil {
			ui.Fail("hotel add: " + rej.Reason)
			return 2
		}
		if err != nil {
			ui.Fail("save: " + err.Error())
			return 1
		}
		ui.OK("added " + h.Name)
		return 0

	case "ls":
		hotels := state.Hotels()
		if len(hotels) == 0 {
			fmt.Println(ui.Muted.Render("no hotels yet"))
			return 0
		}
		var lines []string
		for i, h := range hotels {
			lines = append(lines, fmt.Sprintf("%2d. %s", i+1, ui.Title.Render(h.Name)))
			lines = append(lines, "    "+h.Address)
			lines = append(lines, "    "+ui.Muted.Render("in "+h.CheckIn+" / out "+h.CheckOut))
			lines = append(lines, "    "+ui.Muted.Render(h.MapsURL))
			if h.Notes != "" {
				lines = append(lines, "    "+ui.Muted.Render(h.Notes))
			}
		}
		fmt.Println(ui.Panel(strings.Join(lines, "\n")))
		return 0

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: tabi hotel rm <index>")
			return 2
		}
		hotels := state.Hotels()
		idx, err := parseIndex(a[0], len(hotels))
		if err != nil {
			ui.Fail("rm: " + err.Error())
			return 2
		}
		if err := state.RemoveHotel(hotels[idx].ID); err != nil {
			ui.Fail("save: " + err.Error())
			return 1
		}
		ui.OK("removed")
		return 0
	}

	ui.Fail("usage: tabi hotel <add|ls|rm>")
	return 2
}
