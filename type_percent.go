package shopping

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Percent is a rate expressed as a percentage, 10 means 10%.
type Percent float64

// ParsePercent parses a percentage in [0, 100] written without the percent sign.
func ParsePercent(s string) (Percent, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: percentage %q is not a number", ErrInvalidInput, s)
	}
	p := Percent(v)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p, nil
}

// Validate returns an ErrInvalidInput if p is outside [0, 100].
func (p Percent) Validate() error {
	if err := validate.Var(p, "gte=0,lte=100"); err != nil {
		return fmt.Errorf("%w: percentage %v is outside [0, 100]", ErrInvalidInput, float64(p))
	}
	return nil
}

// rate returns p/100 as an exact decimal.
func (p Percent) rate() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Div(decimal.NewFromInt(100))
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}
