package trip

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/DanielWang2002/KanseiTabi/internal/model"
)

// ExpenseInput is an expense form submission before validation and defaults.
type ExpenseInput struct {
	Title    string
	Amount   float64
	Payer    string
	Date     string
	Category model.Category
}

// CategoryTotal is one slice of the spend breakdown.
type CategoryTotal struct {
	Category model.Category
	Total    float64
}

// Balance is one member's position against the group mean. Positive means
// the group owes them (they over-contributed relative to an even split).
type Balance struct {
	Member  string
	Paid    float64
	Balance float64
}

// AddExpense validates the input, fills defaults (today's date, first member
// as payer, "other" category) and prepends so the ledger reads most recent
// first.
func (s *State) AddExpense(in ExpenseInput) (model.Expense, *Rejection, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Expense{}, reject("title", "title is required"), nil
	}
	if !(in.Amount > 0) {
		return model.Expense{}, reject("amount", "amount must be greater than zero"), nil
	}

	payer := strings.TrimSpace(in.Payer)
	if payer == "" && len(s.trip.Members) > 0 {
		payer = s.trip.Members[0]
	}
	if payer != "" && !lo.Contains(s.trip.Members, payer) {
		return model.Expense{}, reject("payer", "payer must be a trip member"), nil
	}

	category := in.Category
	if !category.Valid() {
		category = model.CategoryOther
	}
	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	e := model.Expense{
		ID:       uuid.NewString(),
		Title:    title,
		Amount:   in.Amount,
		Payer:    payer,
		Date:     date,
		Category: category,
	}
	s.expenses = append([]model.Expense{e}, s.expenses...)
	return e, nil, s.store.Save(keyExpenses, s.expenses)
}

// Total is the whole-trip spend.
func (s *State) Total() float64 {
	return lo.SumBy(s.expenses, func(e model.Expense) float64 { return e.Amount })
}

// CategoryTotals sums spend per category in canonical category order.
// Categories with nothing spent are excluded from the breakdown.
func (s *State) CategoryTotals() []CategoryTotal {
	var out []CategoryTotal
	for _, c := range model.Categories {
		sum := lo.SumBy(s.expenses, func(e model.Expense) float64 {
			if e.Category == c {
				return e.Amount
			}
			return 0
		})
		if sum > 0 {
			out = append(out, CategoryTotal{Category: c, Total: sum})
		}
	}
	return out
}

// Balances computes each member's signed position against an even split of
// the total: paid minus fair share. The balances sum to zero (within
// floating-point tolerance) by construction. Members are deduplicated first
// so a repeated name cannot be assigned two fair shares; no cross-member
// netting is performed.
func (s *State) Balances() []Balance {
	members := lo.Uniq(s.trip.Members)
	share := s.Total() / float64(max(1, len(members)))

	return lo.Map(members, func(m string, _ int) Balance {
		paid := lo.SumBy(s.expenses, func(e model.Expense) float64 {
			if e.Payer == m {
				return e.Amount
			}
			return 0
		})
		return Balance{Member: m, Paid: paid, Balance: paid - share}
	})
}
