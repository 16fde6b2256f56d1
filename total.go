package shopping

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Breakdown details how a total is reached from the subtotal.
type Breakdown struct {
	Subtotal decimal.Decimal // Σ quantity × unit price
	Tax      decimal.Decimal // tax added to the subtotal
	Discount decimal.Decimal // discount taken from the tax-inclusive amount
	Total    decimal.Decimal
}

// Subtotal returns the sum of quantity × unit price over all items.
func Subtotal(l *Ledger) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range l.All() {
		sum = sum.Add(item.Cost())
	}
	return sum
}

// NewBreakdown computes the total cost of l.
//
// Tax is applied first, then the discount is taken from the tax-inclusive
// running total, not from the subtotal. Amounts are kept at full precision,
// rounding is left to the display.
//
// tax and discount are assumed to be valid percentages.
func NewBreakdown(l *Ledger, tax, discount Percent) Breakdown {
	b := Breakdown{Subtotal: Subtotal(l)}
	running := b.Subtotal
	b.Tax = running.Mul(tax.rate())
	running = running.Add(b.Tax)
	b.Discount = running.Mul(discount.rate())
	running = running.Sub(b.Discount)
	b.Total = running
	return b
}

// ComputeTotal returns the total cost of l, see NewBreakdown.
// An empty ledger costs zero whatever the tax and discount.
func ComputeTotal(l *Ledger, tax, discount Percent) decimal.Decimal {
	return NewBreakdown(l, tax, discount).Total
}

// Total returns the total cost of the ledger or an ErrInvalidInput if tax or
// discount is outside [0, 100].
func (l *Ledger) Total(tax, discount Percent) (decimal.Decimal, error) {
	b, err := l.Breakdown(tax, discount)
	return b.Total, err
}

// Breakdown is like Total but returns the intermediate amounts too.
func (l *Ledger) Breakdown(tax, discount Percent) (Breakdown, error) {
	if err := validate.Struct(totalInput{Tax: tax, Discount: discount}); err != nil {
		return Breakdown{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return NewBreakdown(l, tax, discount), nil
}
