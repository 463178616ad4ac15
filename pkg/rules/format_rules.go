package rules

import (
	"context"
	"math"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/dmitrymomot/formval/pkg/validate"
)

var (
	// US phone number after stripping everything but digits and a plus:
	// optional +1/1 country prefix, then a standard 10-digit number.
	phoneRegex = regexp.MustCompile(`^\+?1?[2-9]\d{9}$`)

	// US ZIP code, plain or ZIP+4
	postalCodeRegex = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

	// Alphanumeric regex
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	// Alpha regex
	alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

	nonPhoneChars = regexp.MustCompile(`[^0-9+]`)
)

// Email validates an email address using RFC 5322 parsing plus the stricter
// domain shape expected in web forms.
func Email(opts ...Option) validate.Func {
	msg := resolveMessage("email", nil, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		s, ok := asString(value)
		if !ok || !isValidEmail(s) {
			return msg, nil
		}
		return "", nil
	}
}

func isValidEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 {
		return false
	}
	localPart, domain := parts[0], parts[1]
	if localPart == "" {
		return false
	}

	// Domain must contain at least one dot and no empty labels.
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL validates that a string parses as an absolute URL with a scheme and host.
func URL(opts ...Option) validate.Func {
	msg := resolveMessage("url", nil, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		s, ok := asString(value)
		if !ok {
			return msg, nil
		}
		u, err := url.ParseRequestURI(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return msg, nil
		}
		return "", nil
	}
}

// Phone validates a US phone number, tolerating common formatting: all
// characters other than digits and a leading plus are stripped before the
// pattern check.
func Phone(opts ...Option) validate.Func {
	msg := resolveMessage("phone", nil, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		s, ok := asString(value)
		if !ok {
			return msg, nil
		}
		cleaned := nonPhoneChars.ReplaceAllString(s, "")
		if !phoneRegex.MatchString(cleaned) {
			return msg, nil
		}
		return "", nil
	}
}

// PostalCode validates a US ZIP code in NNNNN or NNNNN-NNNN form.
func PostalCode(opts ...Option) validate.Func {
	msg := resolveMessage("postal_code", nil, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		s, ok := asString(value)
		if !ok || !postalCodeRegex.MatchString(s) {
			return msg, nil
		}
		return "", nil
	}
}

// Alpha validates that a string contains only letters.
func Alpha(opts ...Option) validate.Func {
	msg := resolveMessage("alpha", nil, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		s, ok := asString(value)
		if !ok || !alphaRegex.MatchString(s) {
			return msg, nil
		}
		return "", nil
	}
}

// Alphanumeric validates that a string contains only letters and numbers.
func Alphanumeric(opts ...Option) validate.Func {
	msg := resolveMessage("alphanumeric", nil, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		s, ok := asString(value)
		if !ok || !alphanumericRegex.MatchString(s) {
			return msg, nil
		}
		return "", nil
	}
}

// Numeric validates that a value is a number or a numeric string.
func Numeric(opts ...Option) validate.Func {
	msg := resolveMessage("numeric", nil, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		if _, ok := asNumber(value); !ok {
			return msg, nil
		}
		return "", nil
	}
}

// Integer validates that a value is a whole number or a string parsing to one.
func Integer(opts ...Option) validate.Func {
	msg := resolveMessage("integer", nil, opts)
	return func(ctx context.Context, value any, values validate.Values) (string, error) {
		if isEmpty(value) {
			return "", nil
		}
		n, ok := asNumber(value)
		if !ok || n != math.Trunc(n) {
			return msg, nil
		}
		return "", nil
	}
}
