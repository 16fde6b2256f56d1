package shopping

import "errors"

// Error kinds reported by the package. Callers test them with errors.Is, the
// returned errors wrap them with the details.
var (
	// ErrInvalidInput reports an unparseable or out of range user input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound reports an operation on an item that is not in the ledger.
	ErrNotFound = errors.New("item not found")
	// ErrIO reports a failure to open, read, write or close a file.
	ErrIO = errors.New("i/o error")
	// ErrParse reports malformed persisted data.
	ErrParse = errors.New("parse error")
)
