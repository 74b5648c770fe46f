package intake

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var vendors = []string{"Figma", "Microsoft", "Amazon Business", "Dell", "Adobe", "Google"}

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		desc   string
		qty    int
		cost   string
		vendor string
	}{
		{
			name:   "figma licenses",
			text:   "Need 20 Figma licenses for the design team. Budget is $8,000.",
			desc:   "Need 20 Figma licenses for the design team",
			qty:    20,
			cost:   "8000",
			vendor: "Figma",
		},
		{
			name:   "amazon alias and suffix cost",
			text:   "Order 5 laptops from amazon, about 6500 USD total",
			desc:   "Order 5 laptops from amazon, about 6500 USD total",
			qty:    5,
			cost:   "6500",
			vendor: "Amazon Business",
		},
		{
			name:   "unit quantity wins over earlier number",
			text:   "$1,200.50 for 3 seats of Adobe Acrobat",
			desc:   "$1,200",
			qty:    3,
			cost:   "1200.50",
			vendor: "Adobe",
		},
		{
			name:   "usd prefix",
			text:   "Renew Microsoft 365, usd 900",
			desc:   "Renew Microsoft 365, usd 900",
			qty:    365,
			cost:   "900",
			vendor: "Microsoft",
		},
		{
			name: "nothing recognised",
			text: "Please buy a whiteboard",
			desc: "Please buy a whiteboard",
			qty:  1,
			cost: "0",
		},
		{
			name: "empty",
			text: "   ",
			desc: "Software/Hardware purchase",
			qty:  1,
			cost: "0",
		},
	}

	e := NewExtractor(vendors)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.text)
			assert.Equal(t, tt.desc, got.ItemDesc)
			assert.Equal(t, tt.qty, got.Quantity)
			assert.True(t, decimal.RequireFromString(tt.cost).Equal(got.EstCost), "cost: got %s", got.EstCost)
			assert.Equal(t, tt.vendor, got.VendorName)
		})
	}
}

func TestExtractTruncatesDescription(t *testing.T) {
	got := NewExtractor(nil).Extract(strings.Repeat("a", 500))
	assert.Len(t, got.ItemDesc, 180)
}

func TestVendorWordBoundary(t *testing.T) {
	got := NewExtractor(vendors).Extract("Dellwood chairs")
	assert.Empty(t, got.VendorName)
}
