// Package matching decides whether an incoming invoice clears against its
// purchase order. Match has no side effects; callers persist the verdict.
package matching

import (
	"fmt"
	"strings"

	"buyit/internal/model"

	"github.com/shopspring/decimal"
)

// DefaultTolerance is the amount deviation allowed when none is configured.
var DefaultTolerance = decimal.NewFromInt(50)

// Candidate is an invoice that has not been recorded yet.
type Candidate struct {
	VendorName string
	Amount     decimal.Decimal
}

// Verdict is the outcome of matching one candidate.
type Verdict struct {
	Status model.MatchStatus
	Reason string
}

// Matched reports whether the invoice auto-clears.
func (v Verdict) Matched() bool { return v.Status == model.MatchMatched }

// ReasonPtr returns the reason for storage, nil when matched.
func (v Verdict) ReasonPtr() *string {
	if v.Status == model.MatchMatched || v.Reason == "" {
		return nil
	}
	r := v.Reason
	return &r
}

// Match applies the vendor rule and then the amount rule; the first failing
// rule decides the exception reason.
func Match(c Candidate, po model.PurchaseOrder, tolerance decimal.Decimal) Verdict {
	if !SameVendor(c.VendorName, po.VendorName) {
		return Verdict{
			Status: model.MatchException,
			Reason: fmt.Sprintf("Vendor mismatch: PO=%s vs Invoice=%s", po.VendorName, c.VendorName),
		}
	}

	gap := c.Amount.Sub(po.TotalAmount).Abs()
	if gap.GreaterThan(tolerance) {
		return Verdict{
			Status: model.MatchException,
			Reason: fmt.Sprintf("Amount mismatch beyond tolerance: PO=$%s vs Invoice=$%s, diff=$%s, tol=$%s",
				po.TotalAmount.StringFixed(2), c.Amount.StringFixed(2), gap.StringFixed(2), tolerance.StringFixed(2)),
		}
	}

	return Verdict{Status: model.MatchMatched}
}

// SameVendor compares vendor names ignoring case and surrounding whitespace.
func SameVendor(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
