package checkout

import (
	"strings"
	"unicode"
)

// Validation error names. They appear verbatim in operator notifications, so
// they match the wire error codes.
const (
	ErrMissingName     = "missing_name"
	ErrInvalidPhone    = "invalid_phone"
	ErrMissingAddress  = "missing_address"
	ErrInvalidQuantity = "invalid_quantity"
	ErrInvalidLanding  = "invalid_landing"
)

const minPhoneDigits = 7

// DigitCount reports how many digit characters the phone contains. Separators
// and formatting are ignored; only the digit count decides validity.
func DigitCount(phone string) int {
	n := 0
	for _, r := range phone {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// Validate checks a checkout attempt. Every rule is evaluated so the returned
// list is complete; an empty list means the request is valid.
func (r *Request) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, ErrMissingName)
	}
	if DigitCount(r.Phone) < minPhoneDigits {
		errs = append(errs, ErrInvalidPhone)
	}
	if strings.TrimSpace(r.Address) == "" {
		errs = append(errs, ErrMissingAddress)
	}
	if r.Quantity < 1 {
		errs = append(errs, ErrInvalidQuantity)
	}
	return errs
}

// ValidateLead checks the subset of rules used by the contact-request flow.
// The lead form is served from exactly one landing page, so the landing key
// must match, and no address is collected.
func (r *Request) ValidateLead(allowedLanding string) []string {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, ErrMissingName)
	}
	if DigitCount(r.Phone) < minPhoneDigits {
		errs = append(errs, ErrInvalidPhone)
	}
	if r.Landing != allowedLanding {
		errs = append(errs, ErrInvalidLanding)
	}
	return errs
}
