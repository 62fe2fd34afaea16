package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanielWang2002/KanseiTabi/internal/ui"
)

// form is a small vertical stack of labelled text inputs used by the inline
// add panels. The owning view decides what enter/esc mean; the form only
// handles focus cycling and character input.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newForm(labels ...string) form {
	f := form{labels: labels}
	f.inputs = make([]textinput.Model, len(labels))
	for i, label := range labels {
		ti := textinput.New()
		ti.Prompt = "> "
		ti.Placeholder = label
		ti.CharLimit = 200
		f.inputs[i] = ti
	}
	return f
}

func (f *form) open() {
	f.reset()
	f.inputs[0].Focus()
}

func (f *form) reset() {
	f.focus = 0
	f.errMsg = ""
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
}

func (f *form) value(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }

func (f *form) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = (i + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update routes a message to the focused input, cycling focus on tab and
// arrow keys. Enter and esc are left for the owning view.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return nil
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) view(title string) string {
	var b strings.Builder
	b.WriteString(ui.Title.Render(title))
	if f.errMsg != "" {
		b.WriteString(" — " + ui.Error.Render(f.errMsg))
	}
	for i, in := range f.inputs {
		b.WriteString("\n" + ui.Muted.Render(f.labels[i]) + "\n" + in.View())
	}
	return ui.Panel(b.String())
}
