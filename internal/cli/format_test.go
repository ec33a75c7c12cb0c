package cli

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{12.5, "$12.50"},
		{1234.56, "$1,234.56"},
		{1234567.891, "$1,234,567.89"},
		{0.005, "$0.01"}, // rounds half-up
		{-3, "-$3.00"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDateKey(t *testing.T) {
	if got := FormatDateKey("2024-03-13"); got != "Wed, Mar 13 2024" {
		t.Errorf("FormatDateKey = %q", got)
	}
	if got := FormatDateKey("junk"); got != "junk" {
		t.Errorf("FormatDateKey on malformed key = %q, want pass-through", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.755); got != "75.5%" {
		t.Errorf("FormatPercent = %q", got)
	}
}
