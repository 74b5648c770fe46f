// Package intake pre-fills a purchase request from free text. It is a
// keyword and pattern heuristic; the requester reviews every field before
// the request is submitted.
package intake

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	maxDescLen  = 180
	defaultDesc = "Software/Hardware purchase"
)

var (
	unitQtyRe = regexp.MustCompile(`(?i)\b(\d+)\s*(licenses|license|units|unit|laptops|laptop|seats|seat|subscriptions|subscription)\b`)
	bareQtyRe = regexp.MustCompile(`\b(\d+)\b`)
	prefixRe  = regexp.MustCompile(`(?i)(\$|usd)\s*([\d,]+(\.\d+)?)`)
	suffixRe  = regexp.MustCompile(`(?i)\b([\d,]+(\.\d+)?)\s*(usd|dollars)\b`)
)

// Fields is the pre-filled subset of a request.
type Fields struct {
	ItemDesc   string          `json:"item_desc"`
	Quantity   int             `json:"quantity"`
	EstCost    decimal.Decimal `json:"est_cost"`
	VendorName string          `json:"vendor_name"`
}

type vendorPattern struct {
	name string
	re   *regexp.Regexp
}

// Extractor recognises a fixed list of vendor names.
type Extractor struct {
	vendors []vendorPattern
}

// NewExtractor builds an extractor for the given vendor names. A multi-word
// vendor also matches on its first word, so "Amazon" finds "Amazon Business".
func NewExtractor(knownVendors []string) *Extractor {
	e := &Extractor{}
	for _, v := range knownVendors {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		e.vendors = append(e.vendors, vendorPattern{name: v, re: wordRe(v)})
	}
	for _, v := range knownVendors {
		words := strings.Fields(v)
		if len(words) > 1 {
			e.vendors = append(e.vendors, vendorPattern{name: strings.TrimSpace(v), re: wordRe(words[0])})
		}
	}
	return e
}

func wordRe(s string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s) + `\b`)
}

// Extract never fails: fields it cannot find get defaults.
func (e *Extractor) Extract(text string) Fields {
	t := strings.TrimSpace(text)
	return Fields{
		ItemDesc:   description(t),
		Quantity:   quantity(t),
		EstCost:    cost(t),
		VendorName: e.vendor(t),
	}
}

func description(t string) string {
	if t == "" {
		return defaultDesc
	}
	first, _, _ := strings.Cut(t, ".")
	first = strings.TrimSpace(first)
	if r := []rune(first); len(r) > maxDescLen {
		first = string(r[:maxDescLen])
	}
	if first == "" {
		return defaultDesc
	}
	return first
}

func quantity(t string) int {
	m := unitQtyRe.FindStringSubmatch(t)
	if m == nil {
		m = bareQtyRe.FindStringSubmatch(t)
	}
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

func cost(t string) decimal.Decimal {
	var raw string
	if m := prefixRe.FindStringSubmatch(t); m != nil {
		raw = m[2]
	} else if m := suffixRe.FindStringSubmatch(t); m != nil {
		raw = m[1]
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (e *Extractor) vendor(t string) string {
	for _, v := range e.vendors {
		if v.re.MatchString(t) {
			return v.name
		}
	}
	return ""
}
