// Package types - Priced output types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one billable unit priced by the discount evaluator.
// Line items are ephemeral derived values, recomputed on every call.
type LineItem struct {
	// ProductID is the product this line belongs to
	ProductID ProductID `json:"product_id"`

	// UnitIndex is the zero-based position within a multi-unit product
	UnitIndex int `json:"unit_index"`

	// TierID is the tier that priced this line, if any
	TierID TierID `json:"tier_id,omitempty"`

	// Label is a human-readable description of the line
	Label string `json:"label"`

	// ListPrice is the undiscounted monthly price
	ListPrice decimal.Decimal `json:"list_price"`

	// PermanentDiscount is the monthly amount removed permanently
	PermanentDiscount decimal.Decimal `json:"permanent_discount"`

	// TemporaryDiscount is the monthly amount removed for a bounded period
	TemporaryDiscount decimal.Decimal `json:"temporary_discount"`

	// TemporaryPeriodMonths is how long the temporary amount lasts
	TemporaryPeriodMonths int `json:"temporary_period_months,omitempty"`

	// FinalPrice is max(0, list - permanent - temporary)
	FinalPrice decimal.Decimal `json:"final_price"`

	// PromoLabel names the promotion that produced the discount
	PromoLabel string `json:"promo_label,omitempty"`

	// FromCombo marks the permanent or temporary amount as combo-sourced
	FromCombo bool `json:"from_combo,omitempty"`

	// ReportTemporarySavings includes the temporary amount in the
	// promotion reporter's projected-savings total
	ReportTemporarySavings bool `json:"report_temporary_savings,omitempty"`
}

// TotalDiscount returns the combined monthly discount on this line
func (l LineItem) TotalDiscount() decimal.Decimal {
	return l.PermanentDiscount.Add(l.TemporaryDiscount)
}

// Quote is the aggregate pricing result for one selection
type Quote struct {
	// Total is the sum of final prices across all line items
	Total decimal.Decimal `json:"total"`

	// TotalPermanentDiscount is the monthly permanent discount sum
	TotalPermanentDiscount decimal.Decimal `json:"total_permanent_discount"`

	// TotalTemporaryDiscount is the monthly temporary discount sum
	TotalTemporaryDiscount decimal.Decimal `json:"total_temporary_discount"`

	// Currency is the catalog currency
	Currency Currency `json:"currency"`

	// Lines is the per-item breakdown in catalog order
	Lines []LineItem `json:"lines"`

	// Metadata identifies the computation context
	Metadata QuoteMetadata `json:"metadata"`
}

// TotalDiscount returns the combined monthly "you save" amount
func (q *Quote) TotalDiscount() decimal.Decimal {
	return q.TotalPermanentDiscount.Add(q.TotalTemporaryDiscount)
}

// OriginalTotal returns the undiscounted monthly total, shown struck
// through next to the discounted total.
func (q *Quote) OriginalTotal() decimal.Decimal {
	return q.Total.Add(q.TotalDiscount())
}

// QuoteMetadata contains execution context for a quote
type QuoteMetadata struct {
	// ID uniquely identifies this quote computation
	ID string `json:"id,omitempty"`

	// Timestamp is when the quote was computed
	Timestamp time.Time `json:"timestamp,omitempty"`
}
