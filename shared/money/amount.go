// Package money decodes backend prices without ever failing the surrounding entity.
package money

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is an exact decimal. Missing, null, negative or unreadable input decodes to zero.
type Amount struct {
	decimal.Decimal
}

func New(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func FromString(value string) Amount {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || d.IsNegative() {
		return Amount{}
	}

	return Amount{Decimal: d}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = Amount{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}

		*a = FromString(raw)

		return nil
	}

	*a = FromString(string(data))

	return nil
}

// MarshalJSON writes the exact value as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// Display rounds to cents for presentation.
func (a Amount) Display() string {
	return a.StringFixed(2)
}
