package domain

import (
	"strings"
	"unicode"
)

// Digits strips every non-digit rune, e.g. formatting of tax IDs and CNJ numbers.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsCompanyTaxID reports whether a digit-only tax ID is a company (14 digits)
// rather than a person (11 digits).
func IsCompanyTaxID(taxID string) bool {
	return len(Digits(taxID)) == 14
}

// ParseBarNumber splits "123456/SP" or "SP123456" into number and state.
func ParseBarNumber(s string) (number, state string) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			number += string(r)
		case unicode.IsLetter(r):
			state += string(r)
		}
	}
	return number, state
}

// LookupKey is the canonical cache key of a lookup value for kind.
func LookupKey(kind MonitoringKind, value string) string {
	switch kind {
	case KindBarNumber:
		n, st := ParseBarNumber(value)
		return string(kind) + ":" + n + st
	case KindTaxID, KindCaseNumber:
		return string(kind) + ":" + Digits(value)
	}
	return string(kind) + ":" + strings.ToLower(strings.TrimSpace(value))
}

// FormatCaseNumber renders a 20-digit CNJ number as NNNNNNN-DD.AAAA.J.TR.OOOO.
// Other inputs are returned unchanged.
func FormatCaseNumber(s string) string {
	d := Digits(s)
	if len(d) != 20 {
		return s
	}
	return d[0:7] + "-" + d[7:9] + "." + d[9:13] + "." + d[13:14] + "." + d[14:16] + "." + d[16:20]
}
