package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a report amount field into an exact decimal,
// stripping thousands separators ("1,234.56" → 1234.56).
func ParseAmount(value string) (decimal.Decimal, error) {
	stripped := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	d, err := decimal.NewFromString(stripped)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount: %q", value)
	}
	return d, nil
}
