package model

// Category classifies an expense for the per-category breakdown.
type Category string

const (
	CategoryFood      Category = "food"
	CategoryTransport Category = "transport"
	CategoryStay      Category = "stay"
	CategoryShopping  Category = "shopping"
	CategoryOther     Category = "other"
)

// Categories lists all categories in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryStay,
	CategoryShopping,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// Label is the short human name shown in the UI.
func (c Category) Label() string {
	switch c {
	case CategoryFood:
		return "Food"
	case CategoryTransport:
		return "Travel"
	case CategoryStay:
		return "Stay"
	case CategoryShopping:
		return "Shop"
	default:
		return "Other"
	}
}

// Expense is one shared group expense, paid by a single member and split
// evenly across the whole group for settlement. Date is "YYYY-MM-DD".
type Expense struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Amount   float64  `json:"amount"`
	Payer    string   `json:"payer"`
	Date     string   `json:"date"`
	Category Category `json:"category"`
}
