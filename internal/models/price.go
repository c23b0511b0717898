package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is a money amount. It always travels as a two-decimal JSON string
// ("10.00") and accepts either a string or a number on input, since the
// front end sends both.
type Price struct {
	decimal.Decimal
}

func NewPrice(d decimal.Decimal) Price {
	return Price{Decimal: d}
}

// ParsePrice parses the text form of a NUMERIC column.
func ParsePrice(value string) (Price, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Price{Decimal: decimal.Zero}, nil
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", value, err)
	}
	return Price{Decimal: d}, nil
}

func (p Price) String() string {
	return p.StringFixed(2)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.StringFixed(2) + `"`), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		p.Decimal = decimal.Zero
		return nil
	}
	parsed, err := ParsePrice(strings.Trim(raw, `"`))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
