package validate

import (
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	minPANLength = 13
	maxPANLength = 19
)

// IsPAN reports whether s is a plausible card number: digits only, of a
// length a card network would issue, with a valid Luhn check digit.
func IsPAN(s string) bool {
	if len(s) < minPANLength || len(s) > maxPANLength {
		return false
	}
	if strings.TrimLeft(s, "0123456789") != "" {
		return false
	}
	return goluhn.Validate(s) == nil
}
