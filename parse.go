package shopping

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validate checks the struct tags of the boundary inputs.
var validate = validator.New()

// itemInput is an upsert request once its fields have been parsed.
type itemInput struct {
	Name     string `validate:"required"`
	Quantity int64  `validate:"gte=0"`
}

// totalInput is a total request once its fields have been parsed.
type totalInput struct {
	Tax      Percent `validate:"gte=0,lte=100"`
	Discount Percent `validate:"gte=0,lte=100"`
}

// ParseQuantity parses a non-negative integer quantity.
func ParseQuantity(s string) (int64, error) {
	q, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: quantity %q is not an integer", ErrInvalidInput, s)
	}
	if q < 0 {
		return 0, fmt.Errorf("%w: quantity %q is negative", ErrInvalidInput, s)
	}
	return q, nil
}

// ParsePrice parses a non-negative decimal unit price.
//
// Prices are kept as exact decimals, "0.1" is exactly one tenth.
func ParsePrice(s string) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price %q is not a number", ErrInvalidInput, s)
	}
	if p.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: price %q is negative", ErrInvalidInput, s)
	}
	return p, nil
}

// validateItem returns an ErrInvalidInput when the item fields break the rules.
func validateItem(name string, quantity int64, price decimal.Decimal) error {
	if err := validate.Struct(itemInput{Name: name, Quantity: quantity}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: price %s is negative", ErrInvalidInput, price)
	}
	return nil
}
