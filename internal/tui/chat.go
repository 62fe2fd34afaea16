package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanielWang2002/KanseiTabi/internal/assistant"
	"github.com/DanielWang2002/KanseiTabi/internal/model"
	"github.com/DanielWang2002/KanseiTabi/internal/ui"
)

// assistantReplyMsg carries the resolved reply of the single outstanding
// request back into the update loop.
type assistantReplyMsg struct {
	reply assistant.Reply
}

// chatView is the assistant tab: scrollback, an input line and a spinner
// while the one in-flight request resolves. The transcript lives in the
// session, never on disk.
type chatView struct {
	vp      viewport.Model
	input   textinput.Model
	spin    spinner.Model
	focused bool
}

func newChatView() chatView {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask AI..."
	ti.CharLimit = 500
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return chatView{
		vp:      viewport.New(0, 0),
		input:   ti,
		spin:    sp,
		focused: true,
	}
}

func (v *chatView) editing() bool { return v.focused }

func (v *chatView) resize(a *App) {
	v.vp.Width = max(20, a.width-4)
	v.vp.Height = max(5, a.height-8)
	v.refresh(a)
}

func (v *chatView) update(a *App, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !a.session.Busy() {
			return nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return cmd

	case tea.KeyMsg:
		if !v.focused {
			switch msg.String() {
			case "i", "enter":
				v.focused = true
				v.input.Focus()
			case "j", "down":
				v.vp.LineDown(1)
			case "k", "up":
				v.vp.LineUp(1)
			}
			return nil
		}
		switch msg.String() {
		case "esc":
			v.focused = false
			v.input.Blur()
			return nil
		case "enter":
			// Submit refuses blank text and refuses while a request is in
			// flight, so mashing enter cannot fan out extra calls.
			do, ok := a.session.Submit(v.input.Value())
			if !ok {
				return nil
			}
			v.input.SetValue("")
			v.refresh(a)
			return tea.Batch(
				v.spin.Tick,
				func() tea.Msg { return assistantReplyMsg{reply: do()} },
			)
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return cmd
	}
	return nil
}

// refresh re-renders the transcript into the viewport and pins the bottom.
func (v *chatView) refresh(a *App) {
	var b strings.Builder
	for _, m := range a.session.Messages() {
		if m.Role == model.RoleUser {
			b.WriteString(ui.Accent.Render("You: ") + m.Text + "\n\n")
		} else {
			b.WriteString(ui.Success.Render("Guide: ") + m.Text + "\n\n")
		}
	}
	v.vp.SetContent(strings.TrimRight(b.String(), "\n"))
	v.vp.GotoBottom()
}

func (v *chatView) view(a *App) string {
	status := v.input.View()
	if a.session.Busy() {
		status = v.spin.View() + ui.Muted.Render(" thinking...")
	}
	return ui.Panel(v.vp.View()) + "\n" + status
}
