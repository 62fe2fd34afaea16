package cli

import (
	"fmt"
	"strings"

	"github.com/DanielWang2002/KanseiTabi/internal/config"
	"github.com/DanielWang2002/KanseiTabi/internal/trip"
	"github.com/DanielWang2002/KanseiTabi/internal/ui"
)

func runExpense(cfg config.Config, state *trip.State, args []string) int {
	if len(args) == 0 {
		ui.Fail("usage: tabi expense <add|ls|balances>")
		return 2
	}
	sub, a := args[0], args[1:]

	switch sub {
	case "add":
		fs := newFlagSet("expense add")
		amount := fs.Float64P("amount", "a", 0, "amount in trip currency (required)")
		payer := fs.StringP("payer", "p", "", "who paid (default: first member)")
		category := fs.StringP("category", "c", "other", "food|transport|stay|shopping|other")
		date := fs.String("date", "", "date as YYYY-MM-DD (default: today)")
		if err := fs.Parse(a); err != nil {
			ui.Fail("expense add: " + err.Error())
			return 2
		}
		title := strings.Join(fs.Args(), " ")
		e, rej, err := state.AddExpense(trip.ExpenseInput{
			Title:    title,
			Amount:   *amount,
			Payer:    *payer,
			Date:     *date,
			Category: categoryFromString(*category),
		})
		if rej != nil {
			ui.Fail("expense add: " + rej.Reason)
			return 2
		}
		if err != nil {
			ui.Fail("save: " + err.Error())
			return 1
		}
		ui.OK(fmt.Sprintf("added %s (%s, paid by %s)", e.Title, ui.Money(cfg.Currency, e.Amount), e.Payer))
		return 0

	case "ls":
		expenses := state.Expenses()
		if len(expenses) == 0 {
			fmt.Println(ui.Muted.Render("no expenses yet"))
			return 0
		}
		var lines []string
		lines = append(lines, ui.Title.Render("Total ")+ui.Money(cfg.Currency, state.Total()))
		for _, ct := range state.CategoryTotals() {
			lines = append(lines, ui.Muted.Render(fmt.Sprintf("  %-10s", ct.Category.Label()))+ui.Money(cfg.Currency, ct.Total))
		}
		lines = append(lines, "")
		for _, e := range expenses {
			lines = append(lines, fmt.Sprintf("%s  %s  %s",
				ui.Money(cfg.Currency, e.Amount),
				ui.Title.Render(e.Title),
				ui.Muted.Render(e.Payer+" • "+e.Date+" • "+string(e.Category))))
		}
		fmt.Println(ui.Panel(strings.Join(lines, "\n")))
		return 0

	case "balances":
		balances := state.Balances()
		if len(balances) == 0 {
			fmt.Println(ui.Muted.Render("no members on this trip"))
			return 0
		}
		var lines []string
		lines = append(lines, ui.Title.Render("Who Owes Who?"))
		for _, b := range balances {
			amount := "+" + ui.Money(cfg.Currency, b.Balance)
			style := ui.Positive
			if b.Balance < 0 {
				amount = "-" + ui.Money(cfg.Currency, -b.Balance)
				style = ui.Negative
			}
			lines = append(lines, fmt.Sprintf("%-14s %s %s",
				b.Member, style.Render(amount),
				ui.Muted.Render("(paid "+ui.Money(cfg.Currency, b.Paid)+")")))
		}
		fmt.Println(ui.Panel(strings.Join(lines, "\n")))
		return 0
	}

	ui.Fail("usage: tabi expense <add|ls|balances>")
	return 2
}
