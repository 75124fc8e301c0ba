// Package card formats card numbers and expiry dates and detects the card brand.
package card

import (
	"regexp"
	"strings"
)

// Brand is a card network name.
type Brand string

const (
	Visa       Brand = "visa"
	Mastercard Brand = "mastercard"
	Amex       Brand = "amex"
	Discover   Brand = "discover"
	DinersClub Brand = "dinersclub"
	JCB        Brand = "jcb"
)

type brandPattern struct {
	brand   Brand
	pattern *regexp.Regexp
}

// Evaluated in order; the first match wins.
var brandPatterns = []brandPattern{
	{Visa, regexp.MustCompile(`^4`)},
	{Mastercard, regexp.MustCompile(`^5[1-5]`)},
	{Amex, regexp.MustCompile(`^3[47]`)},
	{Discover, regexp.MustCompile(`^6(?:011|5)`)},
	{DinersClub, regexp.MustCompile(`^3(?:0[0-5]|[68])`)},
	{JCB, regexp.MustCompile(`^(?:2131|1800|35)`)},
}

var nonDigit = regexp.MustCompile(`\D`)

var (
	amexGroups    = []int{4, 6, 5}
	defaultGroups = []int{4, 4, 4, 4}
)

// Type returns the brand of the card number, or false when no prefix matches.
func Type(number string) (Brand, bool) {
	digits := nonDigit.ReplaceAllString(number, "")
	if digits == "" {
		return "", false
	}
	for _, bp := range brandPatterns {
		if bp.pattern.MatchString(digits) {
			return bp.brand, true
		}
	}
	return "", false
}

// FormatNumber groups the digits 4-6-5 for Amex and in fours otherwise.
// Digits beyond the last group stay attached to it.
func FormatNumber(number string) string {
	if number == "" {
		return ""
	}
	digits := nonDigit.ReplaceAllString(number, "")

	groups := defaultGroups
	if brand, ok := Type(digits); ok && brand == Amex {
		groups = amexGroups
	}
	return group(digits, groups)
}

// FormatExpiry renders the digits of value as MM/YY once at least two are present.
func FormatExpiry(value string) string {
	if value == "" {
		return ""
	}
	digits := nonDigit.ReplaceAllString(value, "")
	if len(digits) < 2 {
		return digits
	}
	year := digits[2:]
	if len(year) > 2 {
		year = year[:2]
	}
	return digits[:2] + "/" + year
}

func group(digits string, sizes []int) string {
	parts := make([]string, 0, len(sizes))
	rest := digits
	for _, size := range sizes {
		if rest == "" {
			break
		}
		if len(rest) < size {
			// The leading group is all-or-nothing; later groups take what is left.
			if len(parts) == 0 {
				return digits
			}
			size = len(rest)
		}
		parts = append(parts, rest[:size])
		rest = rest[size:]
	}
	if rest != "" {
		parts[len(parts)-1] += rest
	}
	return strings.Join(parts, " ")
}
