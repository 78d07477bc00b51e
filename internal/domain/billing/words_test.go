package billing

import "testing"

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{"zero", 0, "ZERO RUPEES ONLY"},
		{"single digit", 7, "SEVEN RUPEES ONLY"},
		{"teens", 14, "FOURTEEN RUPEES ONLY"},
		{"round tens", 90, "NINETY RUPEES ONLY"},
		{"composed tens", 42, "FORTY TWO RUPEES ONLY"},
		{"hundred", 100, "ONE HUNDRED RUPEES ONLY"},
		{"hundreds composed", 256, "TWO HUNDRED FIFTY SIX RUPEES ONLY"},
		{"thousand", 5000, "FIVE THOUSAND RUPEES ONLY"},
		{"lakh", 100000, "ONE LAKH RUPEES ONLY"},
		{"mixed lakh", 1234567, "TWELVE LAKH THIRTY FOUR THOUSAND FIVE HUNDRED SIXTY SEVEN RUPEES ONLY"},
		{"crore", 10000000, "ONE CRORE RUPEES ONLY"},
		{"crore composed", 23456789, "TWO CRORE THIRTY FOUR LAKH FIFTY SIX THOUSAND SEVEN HUNDRED EIGHTY NINE RUPEES ONLY"},
		{"hundred crore", 2500000000, "TWO HUNDRED FIFTY CRORE RUPEES ONLY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AmountInWords(tt.amount); got != tt.want {
				t.Errorf("AmountInWords(%d) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
