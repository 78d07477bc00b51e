package billing

import "strings"

// Indian numbering: crore = 1,00,00,000 and lakh = 1,00,000.
const (
	crore = 10000000
	lakh  = 100000
)

var onesWords = []string{
	"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
	"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN",
	"SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

var tensWords = []string{
	"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY",
}

// AmountInWords converts a whole-rupee amount to Indian-numbering words,
// e.g. 1234567 -> "TWELVE LAKH THIRTY FOUR THOUSAND FIVE HUNDRED SIXTY
// SEVEN RUPEES ONLY". The paise portion is not represented; callers round
// to whole rupees first.
func AmountInWords(amount int64) string {
	if amount <= 0 {
		return "ZERO RUPEES ONLY"
	}
	return strings.Join(groupWords(amount), " ") + " RUPEES ONLY"
}

func groupWords(n int64) []string {
	var parts []string

	if n >= crore {
		parts = append(parts, groupWords(n/crore)...)
		parts = append(parts, "CRORE")
		n %= crore
	}
	if n >= lakh {
		parts = append(parts, belowHundred(n/lakh)...)
		parts = append(parts, "LAKH")
		n %= lakh
	}
	if n >= 1000 {
		parts = append(parts, belowHundred(n/1000)...)
		parts = append(parts, "THOUSAND")
		n %= 1000
	}
	if n >= 100 {
		parts = append(parts, onesWords[n/100], "HUNDRED")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, belowHundred(n)...)
	}
	return parts
}

func belowHundred(n int64) []string {
	if n < 20 {
		return []string{onesWords[n]}
	}
	if n%10 == 0 {
		return []string{tensWords[n/10]}
	}
	return []string{tensWords[n/10], onesWords[n%10]}
}
