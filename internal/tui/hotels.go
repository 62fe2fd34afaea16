package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanielWang2002/KanseiTabi/internal/trip"
	"github.com/DanielWang2002/KanseiTabi/internal/ui"
)

const (
	hotelName = iota
	hotelAddress
	hotelCheckIn
	hotelCheckOut
	hotelNotes
)

// hotelsView is the accommodation directory tab: a card per booking and an
// inline add form. There is no edit; a wrong entry is deleted and re-added.
type hotelsView struct {
	cursor int
	adding bool
	form   form
}

func newHotelsView() hotelsView {
	return hotelsView{
		form: newForm("Hotel Name", "Address", "Check-in (15:00)", "Check-out (11:00)", "Notes (e.g. Booking ID)"),
	}
}

func (v *hotelsView) editing() bool { return v.adding }

func (v *hotelsView) update(a *App, msg tea.Msg) tea.Cmd {
	if v.adding {
		return v.updateForm(a, msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	hotels := a.state.Hotels()
	switch key.String() {
	case "j":
		if v.cursor < len(hotels)-1 {
			v.cursor++
		}
	case "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "a":
		v.adding = true
		v.form.open()
	case "d":
		if v.cursor >= 0 && v.cursor < len(hotels) {
			_ = a.state.RemoveHotel(hotels[v.cursor].ID)
			if v.cursor > 0 {
				v.cursor--
			}
		}
	}
	return nil
}

func (v *hotelsView) updateForm(a *App, msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			v.adding = false
			return nil
		case "enter":
			_, rej, err := a.state.AddHotel(trip.HotelInput{
				Name:     v.form.value(hotelName),
				Address:  v.form.value(hotelAddress),
				CheckIn:  v.form.value(hotelCheckIn),
				CheckOut: v.form.value(hotelCheckOut),
				Notes:    v.form.value(hotelNotes),
			})
			if rej != nil {
				v.form.errMsg = rej.Reason
				return nil
			}
			if err != nil {
				v.form.errMsg = err.Error()
				return nil
			}
			v.adding = false
			return nil
		}
	}
	return v.form.update(msg)
}

func (v *hotelsView) view(a *App) string {
	hotels := a.state.Hotels()

	var b strings.Builder
	if len(hotels) == 0 && !v.adding {
		b.WriteString(ui.Muted.Render("No hotels added yet. Press a to add one."))
	}
	for i, h := range hotels {
		prefix := "  "
		if i == v.cursor && !v.adding {
			prefix = ui.Selected.Render("> ")
		}
		b.WriteString(prefix + ui.Title.Render(h.Name) + "\n")
		b.WriteString("    " + h.Address + "\n")
		b.WriteString("    " + ui.Muted.Render(h.MapsURL) + "\n")
		b.WriteString("    " + ui.Muted.Render("In: ") + h.CheckIn + ui.Muted.Render("  Out: ") + h.CheckOut + "\n")
		if h.Notes != "" {
			b.WriteString("    " + ui.Muted.Render(h.Notes) + "\n")
		}
		if i < len(hotels)-1 {
			b.WriteString("\n")
		}
	}

	content := ui.Panel(b.String())
	if v.adding {
		content += "\n" + v.form.view("New Hotel")
	}
	return content
}
