package matching

import (
	"testing"

	"buyit/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func po(vendor string, amount int64) model.PurchaseOrder {
	return model.PurchaseOrder{PONumber: "PO-000001", VendorName: vendor, TotalAmount: decimal.NewFromInt(amount)}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		vendor     string
		amount     int64
		po         model.PurchaseOrder
		tolerance  int64
		wantStatus model.MatchStatus
		wantReason []string
	}{
		{
			name:       "within tolerance",
			vendor:     "Dell",
			amount:     1000,
			po:         po("Dell", 1040),
			tolerance:  50,
			wantStatus: model.MatchMatched,
		},
		{
			name:       "gap beyond tolerance",
			vendor:     "Dell",
			amount:     1000,
			po:         po("Dell", 1040),
			tolerance:  30,
			wantStatus: model.MatchException,
			wantReason: []string{"PO=$1040.00", "Invoice=$1000.00", "diff=$40.00", "tol=$30.00"},
		},
		{
			name:       "gap equal to tolerance",
			vendor:     "Dell",
			amount:     1000,
			po:         po("Dell", 1040),
			tolerance:  40,
			wantStatus: model.MatchMatched,
		},
		{
			name:       "vendor case and whitespace ignored",
			vendor:     "  dell ",
			amount:     1040,
			po:         po("Dell", 1040),
			tolerance:  0,
			wantStatus: model.MatchMatched,
		},
		{
			name:       "vendor mismatch cites both names verbatim",
			vendor:     "HP Inc",
			amount:     1040,
			po:         po("Dell", 1040),
			tolerance:  50,
			wantStatus: model.MatchException,
			wantReason: []string{"Vendor mismatch", "PO=Dell", "Invoice=HP Inc"},
		},
		{
			name:       "vendor rule wins over amount rule",
			vendor:     "HP",
			amount:     1,
			po:         po("Dell", 1040),
			tolerance:  0,
			wantStatus: model.MatchException,
			wantReason: []string{"Vendor mismatch"},
		},
		{
			name:       "invoice above po",
			vendor:     "Figma",
			amount:     8050,
			po:         po("Figma", 8000),
			tolerance:  25,
			wantStatus: model.MatchException,
			wantReason: []string{"PO=$8000.00", "Invoice=$8050.00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(Candidate{VendorName: tt.vendor, Amount: decimal.NewFromInt(tt.amount)}, tt.po, decimal.NewFromInt(tt.tolerance))
			assert.Equal(t, tt.wantStatus, got.Status)
			if tt.wantStatus == model.MatchMatched {
				assert.Empty(t, got.Reason)
				assert.Nil(t, got.ReasonPtr())
				return
			}
			for _, part := range tt.wantReason {
				assert.Contains(t, got.Reason, part)
			}
			if assert.NotNil(t, got.ReasonPtr()) {
				assert.Equal(t, got.Reason, *got.ReasonPtr())
			}
		})
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	c := Candidate{VendorName: "Dell", Amount: decimal.RequireFromString("999.99")}
	p := po("Dell", 1040)
	first := Match(c, p, DefaultTolerance)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Match(c, p, DefaultTolerance))
	}
	assert.Equal(t, "1040", p.TotalAmount.String(), "purchase order must not be mutated")
}
