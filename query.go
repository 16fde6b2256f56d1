package shopping

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates the JSONPath expression path against the JSON view of l
// (see EncodeJSON), for instance
//
//	$[?(@.quantity > 2)].name
//
// Prices are JSON numbers in the view. An invalid expression is an
// ErrInvalidInput.
func Query(l *Ledger, path string) (any, error) {
	var buf bytes.Buffer
	if err := EncodeJSON(&buf, l); err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(buf.Bytes(), &jobj); err != nil {
		return nil, fmt.Errorf("cannot read JSON view: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("%w: query %q: %v", ErrInvalidInput, path, err)
	}
	return jval, nil
}
