package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Normalize formats phone as E.164, trying each region in order for numbers
// without a country code. A number no region accepts is returned trimmed, as entered.
func Normalize(phone string, regions []string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	for _, region := range regions {
		parsedNumber, err := phonenumbers.Parse(phone, strings.ToUpper(region))
		if err == nil && phonenumbers.IsValidNumber(parsedNumber) {
			return phonenumbers.Format(parsedNumber, phonenumbers.E164)
		}
	}

	return phone
}
