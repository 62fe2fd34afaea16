package ui

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// Money formats an amount with the trip currency symbol and grouped digits
// ("¥12,300"). Whole amounts drop the decimals; anything fractional keeps
// two places.
func Money(symbol string, amount float64) string {
	if amount == math.Trunc(amount) {
		return symbol + moneyPrinter.Sprintf("%d", int64(amount))
	}
	return symbol + moneyPrinter.Sprintf("%.2f", amount)
}
