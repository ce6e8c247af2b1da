package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Small amount", 12.5, "$12.50"},
		{"Thousands separator", 1234.56, "$1,234.56"},
		{"Millions", 1234567.89, "$1,234,567.89"},
		{"Negative", -1234.56, "-$1,234.56"},
		{"Zero", 0, "$0.00"},
		{"Exactly one thousand", 1000, "$1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Currency(tt.amount)
			if result != tt.expected {
				t.Errorf("Currency(%v) = %s, expected %s", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestWholeCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Rounds down", 1234.49, "$1,234"},
		{"Rounds up", 1234.5, "$1,235"},
		{"Already whole", 500, "$500"},
		{"Zero", 0, "$0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WholeCurrency(tt.amount)
			if result != tt.expected {
				t.Errorf("WholeCurrency(%v) = %s, expected %s", tt.amount, result, tt.expected)
			}
		})
	}
}
