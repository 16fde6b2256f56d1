package shopping

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount to display in a currency.
//
// The core computes amounts without any currency, Money is only used to
// present them.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value in currency cur, an empty cur means no currency.
func M(value decimal.Decimal, cur string) Money {
	return Money{value: value, cur: cur}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount rounded to the currency fraction and formatted by
// go-money, e.g. "$9.90". Without a currency, the amount is rounded to 2
// digits.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}
