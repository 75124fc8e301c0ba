// Package phone formats and validates customer phone numbers per country.
//
// Numbers are always reduced to their digits first; the country layout table
// decides how those digits are grouped for display and how many are expected.
package phone

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	placeholder = 'X'

	msgRequired = "Phone number is required"
	msgInvalid  = "Please enter a valid phone number"
)

// Layout describes the display pattern and expected digit count for a country.
type Layout struct {
	Pattern string
	Length  int
}

var (
	nonDigit      = regexp.MustCompile(`\D`)
	placeholders  = regexp.MustCompile(`X+`)
	genericNumber = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

	defaultLayout = Layout{Pattern: "XXX XXX XXXX", Length: 10}
)

var layouts = map[string]Layout{
	// North America & Caribbean
	"US": {"(XXX) XXX-XXXX", 10},
	"CA": {"(XXX) XXX-XXXX", 10},
	"MX": {"(XX) XXXX XXXX", 10},
	"JM": {"(XXX) XXX-XXXX", 10},
	"BB": {"(XXX) XXX-XXXX", 10},

	// Europe
	"GB": {"XXXXX XXXXXX", 11},
	"DE": {"XXXX XXXXXXX", 11},
	"FR": {"XX XX XX XX XX", 10},
	"IT": {"XXX XXX XXXX", 10},
	"ES": {"XXX XXX XXX", 9},
	"PT": {"XXX XXX XXX", 9},
	"NL": {"XX XXXXXXXX", 10},
	"BE": {"XXX XX XX XX", 9},
	"CH": {"XXX XXX XXXX", 10},
	"AT": {"XXXX XXXXXX", 10},
	"GR": {"XXX XXX XXXX", 10},
	"IE": {"XXX XXX XXXX", 10},
	"SE": {"XX XXX XXXX", 9},
	"NO": {"XXX XX XXX", 8},
	"DK": {"XXXX XXXX", 8},
	"FI": {"XXX XXX XXXX", 10},
	"PL": {"XXX XXX XXX", 9},
	"RO": {"XXX XXX XXX", 9},
	"HU": {"XXX XXX XXXX", 10},
	"CZ": {"XXX XXX XXX", 9},
	"SK": {"XXX XXX XXX", 9},
	"BG": {"XXX XXX XXX", 9},

	// Asia Pacific
	"AU": {"XXXX XXX XXX", 10},
	"NZ": {"XXX XXX XXXX", 10},
	"CN": {"XXX XXXX XXXX", 11},
	"JP": {"XX XXXX XXXX", 10},
	"KR": {"XX XXXX XXXX", 10},
	"IN": {"XXXXX XXXXX", 10},
	"ID": {"XXX XXXX XXXX", 11},
	"MY": {"XX XXXX XXXX", 10},
	"SG": {"XXXX XXXX", 8},
	"TH": {"X XXXX XXXX", 9},
	"VN": {"XXX XXX XXXX", 10},
	"PH": {"XXX XXX XXXX", 10},
	"HK": {"XXXX XXXX", 8},
	"TW": {"XXX XXX XXX", 9},

	// Middle East
	"AE": {"XX XXX XXXX", 9},
	"SA": {"XX XXX XXXX", 9},
	"IL": {"XX XXX XXXX", 9},
	"TR": {"XXX XXX XXXX", 10},
	"QA": {"XXXX XXXX", 8},
	"BH": {"XXXX XXXX", 8},
	"KW": {"XXXX XXXX", 8},
	"OM": {"XXXX XXXX", 8},

	// Africa
	"ZA": {"XXX XXX XXXX", 10},
	"EG": {"XX XXXX XXXX", 10},
	"NG": {"XXX XXX XXXX", 10},

	// South America
	"BR": {"XX XXXXX XXXX", 11},
	"AR": {"XX XXXX XXXX", 10},
	"CL": {"X XXXX XXXX", 9},
	"CO": {"XXX XXX XXXX", 10},
	"PE": {"XXX XXX XXX", 9},
}

// LayoutFor returns the layout registered for the ISO 3166 alpha-2 country code.
func LayoutFor(country string) (Layout, bool) {
	l, ok := layouts[strings.ToUpper(country)]
	return l, ok
}

// Digits strips everything but ASCII digits.
func Digits(raw string) string {
	return nonDigit.ReplaceAllString(raw, "")
}

// Format renders raw for display using the country layout. Numbers longer than
// the layout are grouped in runs of three to four digits instead.
func Format(raw, country string) string {
	if raw == "" {
		return ""
	}
	digits := Digits(raw)

	layout, ok := LayoutFor(country)
	if !ok {
		layout = defaultLayout
	}

	if len(digits) > layout.Length {
		return groupDigits(digits)
	}

	out := []byte(layout.Pattern)
	next := 0
	for i := 0; i < len(out) && next < len(digits); i++ {
		if out[i] == placeholder {
			out[i] = digits[next]
			next++
		}
	}

	return strings.TrimSpace(placeholders.ReplaceAllString(string(out), ""))
}

// groupDigits splits digits into blocks of four, falling back to three so that
// a block is always followed by at least one digit.
func groupDigits(digits string) string {
	var b strings.Builder
	rest := digits
	for len(rest) >= 4 {
		n := 4
		if len(rest) == 4 {
			n = 3
		}
		b.WriteString(rest[:n])
		b.WriteByte(' ')
		rest = rest[n:]
	}
	b.WriteString(rest)
	return strings.TrimSpace(b.String())
}

// Validate reports whether raw has the exact digit count of the country layout,
// or for unlisted countries whether it looks like a 7 to 15 digit number.
func Validate(raw, country string) bool {
	if raw == "" {
		return false
	}
	digits := Digits(raw)
	if layout, ok := LayoutFor(country); ok {
		return len(digits) == layout.Length
	}
	return genericNumber.MatchString(digits)
}

// Error returns a user-facing message describing why raw is not acceptable,
// or an empty string when it is.
func Error(raw, country string) string {
	if raw == "" {
		return msgRequired
	}
	if Validate(raw, country) {
		return ""
	}
	if layout, ok := LayoutFor(country); ok {
		return fmt.Sprintf("Please enter a valid %d-digit phone number", layout.Length)
	}
	return msgInvalid
}

// FormatForAPI converts raw into "+<dial code><digits>". Unknown countries get
// an empty dial code.
func FormatForAPI(raw, country string) string {
	if raw == "" {
		return ""
	}
	return "+" + DialCode(country) + Digits(raw)
}
