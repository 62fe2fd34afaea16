package tui

import (
	"strconv"
	"strings"

	"github.com/DanielWang2002/KanseiTabi/internal/ui"
)

// homeView is the summary tab: trip header, spend total and the next
// planned activity, with shortcuts to the other tabs.
func (a *App) homeView() string {
	t := a.state.Trip()

	var b strings.Builder
	b.WriteString(ui.Title.Render(t.Name) + "\n")
	b.WriteString(ui.Muted.Render(strings.Join(t.Members, ", ")) + "\n\n")

	b.WriteString(ui.Accent.Render("Total Spent") + "\n")
	b.WriteString(ui.Title.Render(ui.Money(a.cfg.Currency, a.state.Total())) + "\n\n")

	b.WriteString(ui.Accent.Render("Next Up") + "\n")
	if items := a.state.Itinerary(); len(items) > 0 {
		next := items[0]
		b.WriteString(next.Time + "  " + next.Activity + ui.Muted.Render("  (day "+strconv.Itoa(next.Day)+")") + "\n")
	} else {
		b.WriteString(ui.Muted.Render("No plans yet — press 2 to start the itinerary.") + "\n")
	}

	b.WriteString("\n" + ui.Muted.Render("Need a quick translation or restaurant idea? Press 5 for the guide."))
	return ui.Panel(b.String())
}
