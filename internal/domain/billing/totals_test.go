package billing

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mkrishnan/retailbill-api/internal/domain/enum"
)

func twoLineItems() []LineItem {
	return []LineItem{
		{Name: "Soap", Quantity: 2, UnitPrice: dec("100"), DiscountPercent: decimal.Zero},
		{Name: "Shampoo", Quantity: 1, UnitPrice: dec("200"), DiscountPercent: dec("10")},
	}
}

func TestAggregate(t *testing.T) {
	totals, err := Aggregate(twoLineItems(), bothGST("9"), decimal.Zero)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}

	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"Subtotal", totals.Subtotal, "400"},
		{"TotalDiscount", totals.TotalDiscount, "20"},
		{"TaxableAmount", totals.TaxableAmount, "380"},
		{"CGSTAmount", totals.CGSTAmount, "34.2"},
		{"SGSTAmount", totals.SGSTAmount, "34.2"},
		{"GrandTotal", totals.GrandTotal, "448.4"},
		{"BalanceAmount", totals.BalanceAmount, "448.4"},
	}
	for _, c := range checks {
		if !c.got.Equal(dec(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
}

func TestAggregate_GrandTotalIdentity(t *testing.T) {
	configs := []TaxConfig{
		bothGST("9"),
		bothGST("0"),
		{CGSTEnabled: true, CGSTRate: dec("2.5")},
		{SGSTEnabled: true, SGSTRate: dec("6")},
		{},
	}
	for _, cfg := range configs {
		totals, err := Aggregate(twoLineItems(), cfg, decimal.Zero)
		if err != nil {
			t.Fatalf("Aggregate() error = %v", err)
		}
		sum := totals.TaxableAmount.Add(totals.CGSTAmount).Add(totals.SGSTAmount)
		if !decClose(totals.GrandTotal, sum) {
			t.Errorf("GrandTotal = %s, want taxable+cgst+sgst = %s", totals.GrandTotal, sum)
		}
	}
}

func TestAggregate_TaxAppliedOnceAtInvoiceLevel(t *testing.T) {
	// Taxable amount is subtotal minus discount computed over the
	// aggregate, not a sum of independently taxed rows.
	totals, err := Aggregate(twoLineItems(), bothGST("9"), decimal.Zero)
	if err != nil {
		t.Fatalf("Aggregate() error = %v", err)
	}
	want := totals.Subtotal.Sub(totals.TotalDiscount)
	if !totals.TaxableAmount.Equal(want) {
		t.Errorf("TaxableAmount = %s, want subtotal-discount = %s", totals.TaxableAmount, want)
	}
}

func TestAggregate_Balance(t *testing.T) {
	tests := []struct {
		name        string
		advance     string
		wantBalance string
	}{
		{"no advance", "0", "448.4"},
		{"partial advance", "200", "248.4"},
		{"exact advance", "448.4", "0"},
		{"overpaid not clamped", "500", "-51.6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals, err := Aggregate(twoLineItems(), bothGST("9"), dec(tt.advance))
			if err != nil {
				t.Fatalf("Aggregate() error = %v", err)
			}
			if !totals.BalanceAmount.Equal(dec(tt.wantBalance)) {
				t.Errorf("BalanceAmount = %s, want %s", totals.BalanceAmount, tt.wantBalance)
			}
		})
	}
}

func TestAggregate_Validation(t *testing.T) {
	tests := []struct {
		name    string
		items   []LineItem
		cfg     TaxConfig
		advance string
	}{
		{"no items", nil, bothGST("9"), "0"},
		{"bad rate", twoLineItems(), TaxConfig{CGSTEnabled: true, CGSTRate: dec("12")}, "0"},
		{"negative advance", twoLineItems(), bothGST("9"), "-1"},
		{
			"bad line carries index",
			[]LineItem{
				{Name: "ok", Quantity: 1, UnitPrice: dec("10")},
				{Name: "bad", Quantity: 0, UnitPrice: dec("10")},
			},
			bothGST("9"), "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Aggregate(tt.items, tt.cfg, dec(tt.advance))
			if err == nil {
				t.Fatal("Aggregate() error = nil, want validation error")
			}
		})
	}

	// Line index is attached for caller-facing messages.
	_, err := Aggregate([]LineItem{
		{Name: "ok", Quantity: 1, UnitPrice: dec("10")},
		{Name: "bad", Quantity: 0, UnitPrice: dec("10")},
	}, bothGST("9"), decimal.Zero)
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Line != 1 {
		t.Errorf("Line = %d, want 1", verr.Line)
	}
}

func TestPaymentStateMachine(t *testing.T) {
	grand := dec("448.4")

	t.Run("advance below total stays unpaid", func(t *testing.T) {
		st := ApplyAdvance(grand, dec("100"))
		if st.Status != enum.PaymentStatusUnpaid {
			t.Errorf("Status = %v, want UNPAID", st.Status)
		}
		if !st.BalanceAmount.Equal(dec("348.4")) {
			t.Errorf("BalanceAmount = %s, want 348.4", st.BalanceAmount)
		}
	})

	t.Run("advance covering total flips to paid", func(t *testing.T) {
		st := ApplyAdvance(grand, dec("448.4"))
		if st.Status != enum.PaymentStatusPaid {
			t.Errorf("Status = %v, want PAID", st.Status)
		}
		if !st.BalanceAmount.IsZero() {
			t.Errorf("BalanceAmount = %s, want 0", st.BalanceAmount)
		}
	})

	t.Run("overpayment is paid with negative balance", func(t *testing.T) {
		st := ApplyAdvance(grand, dec("500"))
		if st.Status != enum.PaymentStatusPaid {
			t.Errorf("Status = %v, want PAID", st.Status)
		}
		if !st.BalanceAmount.Equal(dec("-51.6")) {
			t.Errorf("BalanceAmount = %s, want -51.6", st.BalanceAmount)
		}
	})

	t.Run("toggle paid forces advance to grand total", func(t *testing.T) {
		st := MarkPaid(grand)
		if st.Status != enum.PaymentStatusPaid {
			t.Errorf("Status = %v, want PAID", st.Status)
		}
		if !st.AdvanceAmount.Equal(grand) {
			t.Errorf("AdvanceAmount = %s, want %s", st.AdvanceAmount, grand)
		}
		if !st.BalanceAmount.IsZero() {
			t.Errorf("BalanceAmount = %s, want 0", st.BalanceAmount)
		}
	})

	t.Run("toggle unpaid resets advance", func(t *testing.T) {
		st := MarkUnpaid(grand)
		if st.Status != enum.PaymentStatusUnpaid {
			t.Errorf("Status = %v, want UNPAID", st.Status)
		}
		if !st.AdvanceAmount.IsZero() {
			t.Errorf("AdvanceAmount = %s, want 0", st.AdvanceAmount)
		}
		if !st.BalanceAmount.Equal(grand) {
			t.Errorf("BalanceAmount = %s, want %s", st.BalanceAmount, grand)
		}
	})
}
