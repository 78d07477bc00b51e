package billing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func bothGST(rate string) TaxConfig {
	return TaxConfig{
		CGSTEnabled: true, SGSTEnabled: true,
		CGSTRate: dec(rate), SGSTRate: dec(rate),
	}
}

func TestApplyForward(t *testing.T) {
	tests := []struct {
		name        string
		taxable     string
		cfg         TaxConfig
		wantCGST    string
		wantSGST    string
		wantInclTot string
	}{
		{
			name:    "both enabled at 9",
			taxable: "380", cfg: bothGST("9"),
			wantCGST: "34.2", wantSGST: "34.2", wantInclTot: "448.4",
		},
		{
			name:    "cgst only",
			taxable: "100",
			cfg:     TaxConfig{CGSTEnabled: true, CGSTRate: dec("5")},
			wantCGST: "5", wantSGST: "0", wantInclTot: "105",
		},
		{
			name:    "both disabled",
			taxable: "250",
			cfg:     TaxConfig{CGSTRate: dec("9"), SGSTRate: dec("9")},
			wantCGST: "0", wantSGST: "0", wantInclTot: "250",
		},
		{
			name:    "disabled rate contributes nothing",
			taxable: "100",
			cfg:     TaxConfig{SGSTEnabled: true, CGSTRate: dec("9"), SGSTRate: dec("2.5")},
			wantCGST: "0", wantSGST: "2.5", wantInclTot: "102.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyForward(dec(tt.taxable), tt.cfg)
			if !got.CGSTAmount.Equal(dec(tt.wantCGST)) {
				t.Errorf("CGSTAmount = %s, want %s", got.CGSTAmount, tt.wantCGST)
			}
			if !got.SGSTAmount.Equal(dec(tt.wantSGST)) {
				t.Errorf("SGSTAmount = %s, want %s", got.SGSTAmount, tt.wantSGST)
			}
			if !got.TaxInclusiveAmount.Equal(dec(tt.wantInclTot)) {
				t.Errorf("TaxInclusiveAmount = %s, want %s", got.TaxInclusiveAmount, tt.wantInclTot)
			}

			// grand total identity
			sum := dec(tt.taxable).Add(got.CGSTAmount).Add(got.SGSTAmount)
			if !decClose(got.TaxInclusiveAmount, sum) {
				t.Errorf("TaxInclusiveAmount = %s, want taxable+cgst+sgst = %s", got.TaxInclusiveAmount, sum)
			}
		})
	}
}

func TestTaxConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     TaxConfig
		wantErr bool
	}{
		{"valid", bothGST("9"), false},
		{"zero rates", bothGST("0"), false},
		{"cgst above cap", TaxConfig{CGSTEnabled: true, CGSTRate: dec("9.5")}, true},
		{"negative sgst", TaxConfig{SGSTEnabled: true, SGSTRate: dec("-1")}, true},
		{"out of range but disabled", TaxConfig{CGSTRate: dec("40"), SGSTRate: dec("40")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReverseDerive_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		qty      int
		discount string
		cfg      TaxConfig
	}{
		{"plain", "100", 2, "0", bothGST("9")},
		{"discounted", "200", 1, "10", bothGST("9")},
		{"no tax", "59.99", 3, "5", TaxConfig{}},
		{"single component", "145.70", 4, "25", TaxConfig{CGSTEnabled: true, CGSTRate: dec("2.5")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := LineItem{Name: "x", Quantity: tt.qty, UnitPrice: dec(tt.unit), DiscountPercent: dec(tt.discount)}
			row, err := item.ComputeRow()
			if err != nil {
				t.Fatalf("ComputeRow() error = %v", err)
			}
			price := ApplyForward(row.TaxableAmount, tt.cfg).TaxInclusiveAmount

			got, err := ReverseDerive(price, tt.qty, dec(tt.discount), tt.cfg)
			if err != nil {
				t.Fatalf("ReverseDerive() error = %v", err)
			}
			if !decClose(got, dec(tt.unit)) {
				t.Errorf("ReverseDerive() = %s, want %s within 0.01", got, tt.unit)
			}
		})
	}
}

func TestReverseDerive_ZeroDenominator(t *testing.T) {
	tests := []struct {
		name     string
		qty      int
		discount string
	}{
		{"full discount", 2, "100"},
		{"zero quantity", 0, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReverseDerive(dec("118"), tt.qty, dec(tt.discount), bothGST("9"))
			if _, ok := err.(*ComputationError); !ok {
				t.Fatalf("ReverseDerive() error = %v, want *ComputationError", err)
			}
		})
	}
}

func TestReverseDerive_ChangedConfigIsLossy(t *testing.T) {
	// Price produced under 9+9, derived under no tax: the unit price must
	// absorb the tax that was baked into the persisted value.
	item := LineItem{Name: "x", Quantity: 1, UnitPrice: dec("100")}
	row, _ := item.ComputeRow()
	price := ApplyForward(row.TaxableAmount, bothGST("9")).TaxInclusiveAmount

	got, err := ReverseDerive(price, 1, decimal.Zero, TaxConfig{})
	if err != nil {
		t.Fatalf("ReverseDerive() error = %v", err)
	}
	if !got.Equal(dec("118")) {
		t.Errorf("ReverseDerive() under changed config = %s, want 118", got)
	}
}
