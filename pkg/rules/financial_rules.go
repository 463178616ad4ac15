package rules

import (
	"context"
	"strings"

	"github.com/dmitrymomot/formval/pkg/validate"
)

// CreditCard validates a card number: 13-19 digits after stripping spaces
// and dashes, passing the Luhn checksum.
func CreditCard(opts ...Option) validate.Func {
	msg := resolveMessage("credit_card", nil, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		s, ok := asString(value)
		if !ok || !isValidCardNumber(s) {
			return msg, nil
		}
		return "", nil
	}
}

func isValidCardNumber(value string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}
	for _, c := range cleaned {
		if c < '0' || c > '9' {
			return false
		}
	}

	// Luhn algorithm: from the rightmost digit, double every second digit,
	// subtracting 9 when the doubled digit exceeds 9.
	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}
