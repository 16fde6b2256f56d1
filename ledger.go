package shopping

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// LineItem is the value held for each item name in a Ledger.
type LineItem struct {
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Cost returns quantity × unit price.
func (i LineItem) Cost() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}

// Ledger represents a shopping list: a mapping from item name to LineItem.
//
// In a Ledger items are enumerated in insertion order. Merging into an
// existing item keeps its place, deleting an item and adding it again moves
// it to the end.
type Ledger struct {
	names []string            // insertion order
	items map[string]LineItem // index items by name
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		names: make([]string, 0),
		items: make(map[string]LineItem),
	}
}

// Upsert adds quantity units of name to the ledger.
//
// If name is new it is inserted with unitPrice. If name already exists its
// quantity is increased by quantity and the stored unit price is kept: the
// new unitPrice is validated but ignored. This mirrors the behavior of
// existing shopping list files and may change to "last price wins" later.
//
// An ErrInvalidInput is returned, and the ledger left unmodified, if name is
// empty, if quantity or unitPrice is negative, or if the merged quantity would
// overflow.
func (l *Ledger) Upsert(name string, quantity int64, unitPrice decimal.Decimal) error {
	if err := validateItem(name, quantity, unitPrice); err != nil {
		return err
	}
	if item, exists := l.items[name]; exists {
		if quantity > math.MaxInt64-item.Quantity {
			return fmt.Errorf("%w: quantity of %q would overflow", ErrInvalidInput, name)
		}
		item.Quantity += quantity
		l.items[name] = item
		log.Debug().Str("item", name).Int64("quantity", item.Quantity).Msg("merged item")
		return nil
	}
	l.Put(name, LineItem{Quantity: quantity, UnitPrice: unitPrice})
	log.Debug().Str("item", name).Int64("quantity", quantity).Str("price", unitPrice.String()).Msg("added item")
	return nil
}

// UpsertString is Upsert for raw user input: quantity and unitPrice are parsed
// first and any parsing error is an ErrInvalidInput.
func (l *Ledger) UpsertString(name, quantity, unitPrice string) error {
	q, err := ParseQuantity(quantity)
	if err != nil {
		return err
	}
	p, err := ParsePrice(unitPrice)
	if err != nil {
		return err
	}
	return l.Upsert(name, q, p)
}

// Put sets the item for name, overwriting any previous value.
//
// Put does not validate the item, it is meant for loaders that have already
// parsed it.
func (l *Ledger) Put(name string, item LineItem) {
	if _, exists := l.items[name]; !exists {
		l.names = append(l.names, name)
	}
	l.items[name] = item
}

// Exists reports whether name is in the ledger.
func (l *Ledger) Exists(name string) bool {
	_, ok := l.items[name]
	return ok
}

// Get returns the item for name.
func (l *Ledger) Get(name string) (item LineItem, exists bool) {
	item, exists = l.items[name]
	return
}

// Delete removes name from the ledger, or return an ErrNotFound.
//
// Asking for confirmation is up to the caller, typically after a call to
// Exists.
func (l *Ledger) Delete(name string) error {
	if !l.Exists(name) {
		return fmt.Errorf("cannot delete %q: %w", name, ErrNotFound)
	}
	delete(l.items, name)
	l.names = slices.DeleteFunc(l.names, func(n string) bool { return n == name })
	log.Debug().Str("item", name).Msg("deleted item")
	return nil
}

// Len returns the number of items in the ledger.
func (l *Ledger) Len() int { return len(l.names) }

// Names returns a copy of the item names in enumeration order.
func (l *Ledger) Names() []string { return slices.Clone(l.names) }

// All iterates over the items in insertion order.
//
// The iteration reflects the ledger at the time each item is reached, it is
// not a snapshot.
func (l *Ledger) All() iter.Seq2[string, LineItem] {
	return func(yield func(string, LineItem) bool) {
		for i := 0; i < len(l.names); i++ {
			name := l.names[i]
			item, ok := l.items[name]
			if !ok {
				continue
			}
			if !yield(name, item) {
				return
			}
		}
	}
}

// Replace replaces the whole content of l with the content of other.
// other must not be used afterwards.
func (l *Ledger) Replace(other *Ledger) {
	l.names = other.names
	l.items = other.items
}
