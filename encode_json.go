package shopping

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jsonItem is the JSON view of one item.
type jsonItem struct {
	Name     string           `json:"name"`
	Quantity *int64           `json:"quantity"`
	Price    *decimal.Decimal `json:"price"`
}

// marshalItem renders an item with a stable field order: name, quantity, price.
func marshalItem(name string, item LineItem) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("name", name)
	w.Append("quantity", item.Quantity)
	w.Append("price", item.UnitPrice)
	return w.MarshalJSON()
}

// EncodeJSON writes l to w as a JSON array of {"name","quantity","price"}
// objects, one per line, in enumeration order.
func EncodeJSON(w io.Writer, l *Ledger) error {
	sep := "[\n"
	for name, item := range l.All() {
		data, err := marshalItem(name, item)
		if err != nil {
			return fmt.Errorf("cannot marshal item %q: %w", name, err)
		}
		if _, err := fmt.Fprintf(w, "%s%s", sep, data); err != nil {
			return fmt.Errorf("cannot write JSON format: %w", err)
		}
		sep = ",\n"
	}
	if sep == "[\n" {
		_, err := io.WriteString(w, "[]\n")
		return err
	}
	_, err := io.WriteString(w, "\n]\n")
	return err
}

// DecodeJSON reads a ledger written by EncodeJSON.
//
// Like DecodeCSV, an item appearing twice is overwritten and the first invalid
// item is an ErrParse.
func DecodeJSON(r io.Reader) (*Ledger, error) {
	var items []jsonItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	l := NewLedger()
	for i, ji := range items {
		if ji.Quantity == nil || ji.Price == nil {
			return nil, fmt.Errorf("%w: item #%d: missing quantity or price", ErrParse, i)
		}
		if err := validateItem(ji.Name, *ji.Quantity, *ji.Price); err != nil {
			return nil, fmt.Errorf("%w: item #%d: %v", ErrParse, i, err)
		}
		l.Put(ji.Name, LineItem{Quantity: *ji.Quantity, UnitPrice: *ji.Price})
	}
	return l, nil
}
