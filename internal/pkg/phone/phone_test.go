package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		country string
		want    string
	}{
		{"au mobile", "0412345678", "AU", "0412 345 678"},
		{"au with separators", "0412-345-678", "au", "0412 345 678"},
		{"us full", "2025550143", "US", "(202) 555-0143"},
		{"us partial keeps literals", "202", "US", "(202) -"},
		{"unknown country uses default", "2025550143", "ZZ", "202 555 0143"},
		{"longer than layout", "61412345678", "AU", "6141 2345 678"},
		{"longer grouping keeps a trailing digit", "614123456789", "AU", "6141 2345 678 9"},
		{"empty", "", "AU", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.raw, tt.country))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		raw     string
		country string
		want    bool
	}{
		{"0412345678", "AU", true},
		{"61412345678", "AU", false},
		{"412345678", "AU", false},
		{"(202) 555-0143", "US", true},
		{"12025550143", "US", false},
		{"20123456", "XX", true},
		{"0123456789", "XX", false},
		{"123456", "XX", false},
		{"1234567890123456", "XX", false},
		{"", "AU", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Validate(tt.raw, tt.country), "%s/%s", tt.raw, tt.country)
	}
}

func TestError(t *testing.T) {
	assert.Equal(t, "Phone number is required", Error("", "AU"))
	assert.Equal(t, "Please enter a valid 10-digit phone number", Error("0412", "AU"))
	assert.Equal(t, "Please enter a valid phone number", Error("12", "XX"))
	assert.Empty(t, Error("0412345678", "AU"))
}

func TestFormatForAPI(t *testing.T) {
	assert.Equal(t, "+610412345678", FormatForAPI("0412 345 678", "AU"))
	assert.Equal(t, "+12025550143", FormatForAPI("(202) 555-0143", "us"))
	assert.Equal(t, "+0412345678", FormatForAPI("0412345678", "ZZ"))
	assert.Equal(t, "", FormatForAPI("", "AU"))
}
