package order

import (
	"github.com/Zhima-Mochi/minishop-checkout/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// Total is the aggregate of a cart: titles joined by ", ", the summed amount
// and the currency of the last line item.
type Total struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
}

// CalculateTotal folds the line items into a Total. An empty cart yields the
// zero Total, which callers must reject before contacting the gateway.
func CalculateTotal(items []catalog.Product) Total {
	total := Total{Amount: decimal.Zero}
	for _, item := range items {
		if total.Description == "" {
			total.Description = item.Title
		} else {
			total.Description = total.Description + ", " + item.Title
		}
		total.Amount = total.Amount.Add(item.Amount)
		total.Currency = item.Currency
	}
	return total
}

func (t Total) IsEmpty() bool {
	return t.Description == "" && t.Amount.IsZero() && t.Currency == ""
}

// FormattedAmount renders the amount with exactly two decimals.
func (t Total) FormattedAmount() string {
	return t.Amount.StringFixed(2)
}

// CheckCurrency returns ErrMixedCurrency when items are priced in more than one currency.
func CheckCurrency(items []catalog.Product) error {
	if len(items) == 0 {
		return nil
	}
	first := items[0].Currency
	for _, item := range items[1:] {
		if item.Currency != first {
			return ErrMixedCurrency
		}
	}
	return nil
}
