package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanielWang2002/KanseiTabi/internal/trip"
	"github.com/DanielWang2002/KanseiTabi/internal/ui"
)

const (
	itinTime = iota
	itinActivity
	itinLocation
	itinNotes
)

// itineraryView is the day-by-day planner tab: a day selector, the active
// day's timeline and an inline add form targeting the active day.
type itineraryView struct {
	activeDay int
	cursor    int
	adding    bool
	form      form
}

func newItineraryView() itineraryView {
	return itineraryView{
		activeDay: 1,
		form:      newForm("Time (HH:MM)", "Activity", "Location (optional)", "Notes"),
	}
}

func (v *itineraryView) editing() bool { return v.adding }

func (v *itineraryView) update(a *App, msg tea.Msg) tea.Cmd {
	if v.adding {
		return v.updateForm(a, msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	items := a.state.ItemsForDay(v.activeDay)
	switch key.String() {
	case "left", "h":
		v.shiftDay(a, -1)
	case "right", "l":
		v.shiftDay(a, +1)
	case "n":
		v.activeDay = a.state.NextDay()
		v.cursor = 0
	case "j":
		if v.cursor < len(items)-1 {
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
		if v.cursor >= 0 && v.cursor < len(items) {
			_ = a.state.RemoveItineraryItem(items[v.cursor].ID)
			if v.cursor > 0 {
				v.cursor--
			}
		}
	}
	return nil
}

func (v *itineraryView) shiftDay(a *App, delta int) {
	days := a.state.Days()
	for i, d := range days {
		if d == v.activeDay {
			next := i + delta
			if next >= 0 && next < len(days) {
				v.activeDay = days[next]
				v.cursor = 0
			}
			return
		}
	}
	// Active day no longer listed (e.g. its last item was deleted).
	v.activeDay = days[0]
	v.cursor = 0
}

func (v *itineraryView) updateForm(a *App, msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			v.adding = false
			return nil
		case "enter":
			_, rej, err := a.state.AddItineraryItem(trip.ItineraryInput{
				Day:      v.activeDay,
				Time:     v.form.value(itinTime),
				Activity: v.form.value(itinActivity),
				Location: v.form.value(itinLocation),
				Notes:    v.form.value(itinNotes),
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

func (v *itineraryView) view(a *App) string {
	var b strings.Builder

	// Day selector: every known day plus the "new day" slot.
	chips := make([]string, 0, len(a.state.Days())+1)
	for _, d := range a.state.Days() {
		chip := fmt.Sprintf(" Day %d ", d)
		if d == v.activeDay {
			chips = append(chips, ui.Selected.Render(chip))
		} else {
			chips = append(chips, ui.Muted.Render(chip))
		}
	}
	if v.activeDay == a.state.NextDay() {
		chips = append(chips, ui.Selected.Render(fmt.Sprintf(" Day %d ", v.activeDay)))
	} else {
		chips = append(chips, ui.Muted.Render(" + "))
	}
	b.WriteString(strings.Join(chips, " ") + "\n\n")

	items := a.state.ItemsForDay(v.activeDay)
	if len(items) == 0 {
		b.WriteString(ui.Muted.Render(fmt.Sprintf("Nothing planned for Day %d yet.", v.activeDay)))
	}
	for i, item := range items {
		prefix := "  "
		if i == v.cursor && !v.adding {
			prefix = ui.Selected.Render("> ")
		}
		line := prefix + ui.Accent.Render(item.Time) + "  " + ui.Title.Render(item.Activity)
		if item.Location != "" {
			line += ui.Muted.Render("  @ " + item.Location)
		}
		b.WriteString(line + "\n")
		if item.Notes != "" {
			b.WriteString(ui.Muted.Render("      "+item.Notes) + "\n")
		}
	}

	content := ui.Panel(b.String())
	if v.adding {
		content += "\n" + v.form.view(fmt.Sprintf("Add to Day %d", v.activeDay))
	}
	return content
}
