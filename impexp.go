package shopping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/rs/zerolog/log"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, a single file that any spreadsheet can open.

// csvHeader is the first row of the import/export format.
var csvHeader = []string{"Item", "Quantity", "Price"}

// EncodeCSV writes l to w in the import/export format.
//
// The format is a comma separated file whose first row is the header
// "Item,Quantity,Price" followed by one "name,quantity,unitPrice" row per item
// in enumeration order.
//
// Names containing a comma or a newline are not part of the format contract.
func EncodeCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}
	for name, item := range l.All() {
		record := []string{name, strconv.FormatInt(item.Quantity, 10), item.UnitPrice.String()}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write item %q: %w", name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeCSV reads a ledger from r in the import/export format.
//
// The first row is the header, it is skipped whatever its content. Each
// following row must have exactly three fields: a non-empty item name, a
// non-negative integer quantity and a non-negative decimal unit price. A bare
// quote inside an unquoted field is kept as is. An
// item appearing twice is overwritten by the last row, quantities are not
// merged.
//
// Decoding stops at the first malformed row with an ErrParse, no ledger is
// returned in that case.
func DecodeCSV(r io.Reader) (*Ledger, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // the header is not checked, rows are checked one by one.
	reader.LazyQuotes = true    // hand written files use bare quotes, as in `5" nails`.

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header row", ErrParse)
	}
	if err != nil {
		return nil, readError(err)
	}
	if !slices.Equal(header, csvHeader) {
		log.Debug().Strs("header", header).Msg("unexpected header row, ignored")
	}

	l := NewLedger()
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, readError(err)
		}
		line, _ := reader.FieldPos(0)
		if len(record) != 3 {
			return nil, fmt.Errorf("%w: line %d: want 3 fields, got %d", ErrParse, line, len(record))
		}
		quantity, err := ParseQuantity(record[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, line, err)
		}
		price, err := ParsePrice(record[2])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, line, err)
		}
		if err := validateItem(record[0], quantity, price); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrParse, line, err)
		}
		l.Put(record[0], LineItem{Quantity: quantity, UnitPrice: price})
	}
	return l, nil
}

// readError sorts csv.Reader errors between malformed content and I/O failures.
func readError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return fmt.Errorf("%w: %v", ErrParse, err)
	}
	return fmt.Errorf("%w: %w", ErrIO, err)
}

// ExportFile writes l to the file at path in the import/export format,
// creating or truncating it.
func ExportFile(path string, l *Ledger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %w", ErrIO, cerr)
		}
	}()
	if err := EncodeCSV(f, l); err != nil {
		return fmt.Errorf("%w: cannot export to %q: %w", ErrIO, path, err)
	}
	return nil
}

// ImportFile reads a ledger from the file at path in the import/export format.
func ImportFile(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	l, err := DecodeCSV(f)
	if err != nil {
		return nil, fmt.Errorf("cannot import %q: %w", path, err)
	}
	return l, nil
}

// ExportTo writes the ledger to the file at path, see ExportFile.
func (l *Ledger) ExportTo(path string) error {
	return ExportFile(path, l)
}

// ImportFrom replaces the content of the ledger with the file at path, see
// ImportFile. On any error the ledger is left untouched.
func (l *Ledger) ImportFrom(path string) error {
	imported, err := ImportFile(path)
	if err != nil {
		return err
	}
	l.Replace(imported)
	return nil
}
