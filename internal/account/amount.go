package account

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// centPlaces is the number of fractional digits a valid amount may carry
const centPlaces = 2

// ValidShape reports whether amount has at most two fractional digits
func ValidShape(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(centPlaces))
}

// ParseAmount parses a decimal string such as "20.02" into an amount
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	return d, nil
}

func checkPositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	return checkShape(amount)
}

func checkShape(amount decimal.Decimal) error {
	if !ValidShape(amount) {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, amount, centPlaces)
	}
	return nil
}
