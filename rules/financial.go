package rules

import (
	"strings"

	govalid "github.com/reoring/govalid"
)

// CreditCard fails unless the string is a plausible card number: digits only
// after stripping spaces and dashes, 13-19 digits, passing the Luhn
// checksum.
func CreditCard[T any]() govalid.Rule[T, string] {
	return newCheckRule[T](govalid.CodeCreditCard, "must be a valid credit card number", func(v string) (bool, map[string]any) {
		return isCreditCard(v), nil
	})
}

func isCreditCard(v string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(v, " ", ""), "-", "")
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}
	for i := 0; i < len(cleaned); i++ {
		if cleaned[i] < '0' || cleaned[i] > '9' {
			return false
		}
	}
	return luhn(cleaned)
}

// luhn processes digits right to left, doubling every second one.
func luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d = d/10 + d%10
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
