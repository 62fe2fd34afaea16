package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DanielWang2002/KanseiTabi/internal/assistant"
	"github.com/DanielWang2002/KanseiTabi/internal/config"
	"github.com/DanielWang2002/KanseiTabi/internal/trip"
	"github.com/DanielWang2002/KanseiTabi/internal/ui"
)

type tab int

const (
	tabHome tab = iota
	tabItinerary
	tabHotels
	tabExpenses
	tabChat
)

var tabLabels = [...]string{"Home", "Plan", "Stay", "Wallet", "Guide"}

// App is the root model. It owns the trip state, the assistant session and
// the active tab, and renders exactly one view per tab. Every mutation goes
// through *trip.State, which persists the changed collection immediately.
type App struct {
	cfg     config.Config
	state   *trip.State
	session *assistant.Session

	active tab
	width  int
	height int

	itinerary itineraryView
	hotels    hotelsView
	expenses  expensesView
	chat      chatView
}

func newApp(cfg config.Config, state *trip.State, session *assistant.Session) *App {
	a := &App{
		cfg:     cfg,
		state:   state,
		session: session,
	}
	a.itinerary = newItineraryView()
	a.hotels = newHotelsView()
	a.expenses = newExpensesView()
	a.chat = newChatView()
	a.chat.refresh(a)
	return a
}

// Run starts the full-screen program and blocks until quit.
func Run(cfg config.Config, state *trip.State, session *assistant.Session) error {
	p := tea.NewProgram(newApp(cfg, state, session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.chat.resize(a)
		return a, nil

	case assistantReplyMsg:
		a.session.Finish(msg.reply)
		a.chat.refresh(a)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// A focused form or chat input owns the keyboard.
		if a.activeEditing() {
			return a, a.updateActive(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return a, tea.Quit
		case "1", "2", "3", "4", "5":
			a.active = tab(int(msg.String()[0] - '1'))
			return a, nil
		case "tab":
			a.active = (a.active + 1) % tab(len(tabLabels))
			return a, nil
		case "shift+tab":
			a.active = (a.active + tab(len(tabLabels)) - 1) % tab(len(tabLabels))
			return a, nil
		}
		return a, a.updateActive(msg)
	}
	return a, a.updateActive(msg)
}

func (a *App) activeEditing() bool {
	switch a.active {
	case tabItinerary:
		return a.itinerary.editing()
	case tabHotels:
		return a.hotels.editing()
	case tabExpenses:
		return a.expenses.editing()
	case tabChat:
		return a.chat.editing()
	}
	return false
}

func (a *App) updateActive(msg tea.Msg) tea.Cmd {
	switch a.active {
	case tabItinerary:
		return a.itinerary.update(a, msg)
	case tabHotels:
		return a.hotels.update(a, msg)
	case tabExpenses:
		return a.expenses.update(a, msg)
	case tabChat:
		return a.chat.update(a, msg)
	}
	return nil
}

func (a *App) View() string {
	var body string
	switch a.active {
	case tabHome:
		body = a.homeView()
	case tabItinerary:
		body = a.itinerary.view(a)
	case tabHotels:
		body = a.hotels.view(a)
	case tabExpenses:
		body = a.expenses.view(a)
	case tabChat:
		body = a.chat.view(a)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		a.header(),
		body,
		a.footer(),
	)
}

func (a *App) header() string {
	parts := make([]string, 0, len(tabLabels))
	for i, label := range tabLabels {
		label = fmt.Sprintf(" %d %s ", i+1, label)
		if tab(i) == a.active {
			parts = append(parts, ui.Selected.Render(label))
		} else {
			parts = append(parts, ui.Muted.Render(label))
		}
	}
	title := ui.Title.Render(a.state.Trip().Name)
	return title + "  " + strings.Join(parts, " ")
}

func (a *App) footer() string {
	if a.activeEditing() {
		return ui.Help.Render("tab next field • enter save • esc cancel")
	}
	hints := map[tab]string{
		tabHome:      "1-5 switch tab • q quit",
		tabItinerary: "←/→ day • n new day • a add • j/k move • d delete • q quit",
		tabHotels:    "a add • j/k move • d delete • q quit",
		tabExpenses:  "a add • j/k move • q quit",
		tabChat:      "i type • esc back • q quit",
	}
	return ui.Help.Render(hints[a.active])
}
