package renderer

import (
	"strconv"
	"strings"

	"github.com/etnz/shopping"
)

// Row is one item of a shopping list, ready for display.
type Row struct {
	Name     string
	Quantity int64
	Price    string
	Cost     string
}

// List is the display model of a shopping list.
type List struct {
	Items    []Row
	Subtotal string
}

// Total is the display model of a total cost computation.
type Total struct {
	Subtotal     string
	TaxRate      string
	Tax          string
	DiscountRate string
	Discount     string
	Total        string
}

// NewList builds the display model of l, amounts are displayed in currency.
func NewList(l *shopping.Ledger, currency string) *List {
	list := &List{
		Items:    []Row{},
		Subtotal: shopping.M(shopping.Subtotal(l), currency).String(),
	}
	for name, item := range l.All() {
		list.Items = append(list.Items, Row{
			Name:     escapeCell(name),
			Quantity: item.Quantity,
			Price:    shopping.M(item.UnitPrice, currency).String(),
			Cost:     shopping.M(item.Cost(), currency).String(),
		})
	}
	return list
}

// NewTotal builds the display model of b.
func NewTotal(b shopping.Breakdown, tax, discount shopping.Percent, currency string) *Total {
	return &Total{
		Subtotal:     shopping.M(b.Subtotal, currency).String(),
		TaxRate:      tax.String(),
		Tax:          shopping.M(b.Tax, currency).String(),
		DiscountRate: discount.String(),
		Discount:     shopping.M(b.Discount, currency).String(),
		Total:        shopping.M(b.Total, currency).String(),
	}
}

// escapeCell makes s safe to use inside a markdown table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}

// ListMarkdown renders l as a markdown table.
func ListMarkdown(l *shopping.Ledger, currency string) string {
	return RenderList(NewList(l, currency))
}

// TotalMarkdown renders the total cost breakdown as markdown.
func TotalMarkdown(b shopping.Breakdown, tax, discount shopping.Percent, currency string) string {
	return RenderTotal(NewTotal(b, tax, discount, currency))
}

// Count returns "n item" or "n items".
func Count(n int) string {
	if n == 1 {
		return "1 item"
	}
	return strconv.Itoa(n) + " items"
}
