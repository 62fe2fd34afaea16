package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/DanielWang2002/KanseiTabi/internal/model"
	"github.com/DanielWang2002/KanseiTabi/internal/trip"
	"github.com/DanielWang2002/KanseiTabi/internal/ui"
)

const (
	expTitle = iota
	expAmount
	expPayer
)

const breakdownBarWidth = 24

// expensesView is the shared wallet tab: trip total, per-category breakdown,
// member balances against the even split, and the recent ledger.
type expensesView struct {
	cursor   int
	adding   bool
	form     form
	category int // index into model.Categories while adding
}

func newExpensesView() expensesView {
	return expensesView{
		form: newForm("What for?", "Amount", "Payer (first member if blank)"),
	}
}

func (v *expensesView) editing() bool { return v.adding }

func (v *expensesView) update(a *App, msg tea.Msg) tea.Cmd {
	if v.adding {
		return v.updateForm(a, msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "j":
		if v.cursor < len(a.state.Expenses())-1 {
			v.cursor++
		}
	case "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "a":
		v.adding = true
		v.category = 0
		v.form.open()
	}
	return nil
}

func (v *expensesView) updateForm(a *App, msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			v.adding = false
			return nil
		case "left":
			v.category = (v.category + len(model.Categories) - 1) % len(model.Categories)
			return nil
		case "right":
			v.category = (v.category + 1) % len(model.Categories)
			return nil
		case "enter":
			amount, convErr := strconv.ParseFloat(v.form.value(expAmount), 64)
			if convErr != nil {
				amount = 0 // rejected below with the standard reason
			}
			_, rej, err := a.state.AddExpense(trip.ExpenseInput{
				Title:    v.form.value(expTitle),
				Amount:   amount,
				Payer:    v.form.value(expPayer),
				Category: model.Categories[v.category],
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
			v.cursor = 0
			return nil
		}
	}
	return v.form.update(msg)
}

func (v *expensesView) view(a *App) string {
	var b strings.Builder

	b.WriteString(ui.Muted.Render("Total Trip Cost") + "\n")
	b.WriteString(ui.Title.Render(ui.Money(a.cfg.Currency, a.state.Total())) + "\n")

	if totals := a.state.CategoryTotals(); len(totals) > 0 {
		b.WriteString("\n")
		grand := a.state.Total()
		for _, ct := range totals {
			bar := breakdownBar(ct.Total, grand)
			b.WriteString(fmt.Sprintf("%-7s %s %s\n",
				ct.Category.Label(), bar, ui.Money(a.cfg.Currency, ct.Total)))
		}
	}

	if balances := a.state.Balances(); len(balances) > 0 {
		b.WriteString("\n" + ui.Accent.Render("Who Owes Who?") + "\n")
		for _, bal := range balances {
			amount := ui.Money(a.cfg.Currency, bal.Balance)
			if bal.Balance >= 0 {
				amount = ui.Positive.Render("+" + amount)
			} else {
				amount = ui.Negative.Render("-" + ui.Money(a.cfg.Currency, -bal.Balance))
			}
			b.WriteString(fmt.Sprintf("%-12s %s\n", bal.Member, amount))
		}
	}

	expenses := a.state.Expenses()
	if len(expenses) > 0 {
		b.WriteString("\n" + ui.Accent.Render("Recent") + "\n")
		for i, e := range expenses {
			prefix := "  "
			if i == v.cursor && !v.adding {
				prefix = ui.Selected.Render("> ")
			}
			b.WriteString(prefix + ui.Title.Render(e.Title) +
				ui.Muted.Render("  "+e.Payer+" • "+e.Date+" • "+e.Category.Label()) +
				"  " + ui.Money(a.cfg.Currency, e.Amount) + "\n")
		}
	}

	content := ui.Panel(b.String())
	if v.adding {
		chips := make([]string, len(model.Categories))
		for i, c := range model.Categories {
			chip := " " + c.Label() + " "
			if i == v.category {
				chips[i] = ui.Selected.Render(chip)
			} else {
				chips[i] = ui.Muted.Render(chip)
			}
		}
		content += "\n" + v.form.view("New Expense") +
			"\n" + ui.Muted.Render("category (←/→): ") + strings.Join(chips, " ")
	}
	return content
}

func breakdownBar(part, total float64) string {
	if total <= 0 {
		total = 1
	}
	filled := int(part / total * breakdownBarWidth)
	if filled > breakdownBarWidth {
		filled = breakdownBarWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", breakdownBarWidth-filled)
}
