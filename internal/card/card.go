// Package card holds the pure formatting rules for card entry: network
// detection, display grouping and the per-field input filters. Everything
// here is a function of the complete current input, recomputed on every
// change, never incremental.
package card

import (
	"strconv"
	"strings"

	"github.com/Luchito30/ShopCart/internal/domain"
)

const (
	amexDigits    = 15
	defaultDigits = 16

	// Display lengths of a complete formatted number: amex groups 4-6-5
	// (two separators), everything else 4-4-4-4 (three separators).
	amexFormattedLen    = amexDigits + 2
	defaultFormattedLen = defaultDigits + 3
)

// DetectNetwork classifies a raw digit string by its prefix. Unknown or
// empty input yields NetworkUnknown.
func DetectNetwork(digits string) domain.CardNetwork {
	if digits == "" {
		return domain.NetworkUnknown
	}
	if strings.HasPrefix(digits, "34") || strings.HasPrefix(digits, "37") {
		return domain.NetworkAmex
	}
	if strings.HasPrefix(digits, "4") {
		return domain.NetworkVisa
	}
	if len(digits) >= 2 {
		if p, err := strconv.Atoi(digits[:2]); err == nil && p >= 51 && p <= 55 {
			return domain.NetworkMastercard
		}
	}
	if len(digits) >= 4 {
		if p, err := strconv.Atoi(digits[:4]); err == nil && p >= 2221 && p <= 2720 {
			return domain.NetworkMastercard
		}
	}
	return domain.NetworkUnknown
}

// FormattedLength is the display length a complete card number must reach
// for the given network. Validation compares the formatted string against
// this, so it must agree exactly with what FormatForDisplay emits.
func FormattedLength(network domain.CardNetwork) int {
	if network == domain.NetworkAmex {
		return amexFormattedLen
	}
	return defaultFormattedLen
}

// Format strips non-digits from raw input, detects the network and returns
// the grouped display string.
func Format(raw string) (string, domain.CardNetwork) {
	digits := FilterDigits(raw)
	network := DetectNetwork(digits)
	return FormatForDisplay(digits, network), network
}

// FormatForDisplay groups a digit string for display: amex as 4-6-5, all
// other networks in chunks of 4, single-space separated with no trailing
// separator.
func FormatForDisplay(digits string, network domain.CardNetwork) string {
	if network == domain.NetworkAmex {
		return groupDigits(digits, 4, 6, 5)
	}
	return groupDigits(digits, 4, 4, 4, 4)
}

func groupDigits(digits string, sizes ...int) string {
	var b strings.Builder
	rest := digits
	for _, size := range sizes {
		if rest == "" {
			break
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		if len(rest) <= size {
			b.WriteString(rest)
			rest = ""
			break
		}
		b.WriteString(rest[:size])
		rest = rest[size:]
	}
	// Digits beyond the grouping pattern are appended to the last chunk.
	b.WriteString(rest)
	return b.String()
}

// FilterDigits strips every non-digit character.
func FilterDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FilterHolder strips every character that is not an ASCII letter or space.
func FilterHolder(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FilterPostalCode keeps digits only, at most 4 of them. A fifth digit is
// dropped as it is typed, never accumulated.
func FilterPostalCode(s string) string {
	digits := FilterDigits(s)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return digits
}

// FormatExpiry strips non-digits and inserts the MM/YY slash once more than
// two digits are present. Output never exceeds 5 characters.
func FormatExpiry(s string) string {
	digits := FilterDigits(s)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}
