// Package promo derives human-auditable discount summaries from priced
// line items: the annualized permanent savings, the projected temporary
// savings (amount times period, a savings figure rather than a cash-flow
// schedule) and the price-over-time progression shown in detail panels.
package promo

import (
	"sort"

	"github.com/shopspring/decimal"

	"bundle-cost/core/pricing"
	"bundle-cost/core/types"
)

var twelve = decimal.NewFromInt(12)

// PermanentSummary reports the ongoing savings of a selection
type PermanentSummary struct {
	// MonthlyTotal is the permanent discount per month
	MonthlyTotal decimal.Decimal `json:"monthly_total"`

	// AnnualTotal is MonthlyTotal * 12
	AnnualTotal decimal.Decimal `json:"annual_total"`

	// Items is the per-line breakdown
	Items []Item `json:"items"`

	// Currency is the catalog currency
	Currency types.Currency `json:"currency"`
}

// TemporarySummary reports the bounded promotional savings of a selection
type TemporarySummary struct {
	// Total is the projected savings: sum of amount * period per item.
	// A discount of 10/mo for 3 months contributes 30 whether or not the
	// subscription outlives it.
	Total decimal.Decimal `json:"total"`

	// Items is the per-line breakdown of reportable promotions
	Items []Item `json:"items"`

	// Progression models "what will I pay in month N": breakpoints at
	// each distinct expiry, adding back the amounts that lapse there.
	Progression []PricePoint `json:"progression"`

	// Currency is the catalog currency
	Currency types.Currency `json:"currency"`
}

// Item is one promotion line in a summary
type Item struct {
	// ProductID is the discounted product
	ProductID types.ProductID `json:"product_id"`

	// Label describes the discounted line
	Label string `json:"label"`

	// MonthlyAmount is the discount per month
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`

	// PeriodMonths bounds a temporary promotion; zero means open-ended
	PeriodMonths int `json:"period_months,omitempty"`

	// Savings is the item's contribution to the summary total
	Savings decimal.Decimal `json:"savings"`

	// PromoLabel names the promotion
	PromoLabel string `json:"promo_label,omitempty"`
}

// PricePoint is one step of the price progression
type PricePoint struct {
	// MonthsElapsed is when this price takes effect
	MonthsElapsed int `json:"months_elapsed"`

	// Price is the monthly total from that month on
	Price decimal.Decimal `json:"price"`
}

// Reporter derives summaries from the same evaluations the aggregator uses
type Reporter struct {
	engine *pricing.Engine
}

// NewReporter creates a reporter sharing the engine's catalog
func NewReporter(engine *pricing.Engine) *Reporter {
	return &Reporter{engine: engine}
}

// SummarizePermanent reports the monthly and annualized permanent savings
func (r *Reporter) SummarizePermanent(sel *types.Selection) (*PermanentSummary, error) {
	quote, err := r.engine.ComputeTotals(sel)
	if err != nil {
		return nil, err
	}

	s := &PermanentSummary{Currency: quote.Currency}
	for _, line := range quote.Lines {
		if line.PermanentDiscount.IsZero() {
			continue
		}
		s.MonthlyTotal = s.MonthlyTotal.Add(line.PermanentDiscount)
		s.Items = append(s.Items, Item{
			ProductID:     line.ProductID,
			Label:         line.Label,
			MonthlyAmount: line.PermanentDiscount,
			Savings:       line.PermanentDiscount.Mul(twelve),
			PromoLabel:    line.PromoLabel,
		})
	}
	s.AnnualTotal = s.MonthlyTotal.Mul(twelve)
	return s, nil
}

// SummarizeTemporary reports projected promotional savings and the price
// progression. Bounded discounts contribute amount * period; open-ended
// amounts routed here (a combo rule reported as temporary) are projected
// over twelve months, the same horizon the permanent summary annualizes
// over. Waivers whose catalog rule opts out of savings reporting still
// shape the progression - the price evolution is fact, not presentation.
func (r *Reporter) SummarizeTemporary(sel *types.Selection) (*TemporarySummary, error) {
	quote, err := r.engine.ComputeTotals(sel)
	if err != nil {
		return nil, err
	}

	s := &TemporarySummary{Currency: quote.Currency}
	for _, line := range quote.Lines {
		if line.TemporaryDiscount.IsZero() {
			continue
		}
		if !line.ReportTemporarySavings && !line.FromCombo {
			continue
		}
		item := Item{
			ProductID:     line.ProductID,
			Label:         line.Label,
			MonthlyAmount: line.TemporaryDiscount,
			PeriodMonths:  line.TemporaryPeriodMonths,
			PromoLabel:    line.PromoLabel,
		}
		if line.TemporaryPeriodMonths > 0 {
			item.Savings = line.TemporaryDiscount.Mul(decimal.NewFromInt(int64(line.TemporaryPeriodMonths)))
		} else {
			item.Savings = line.TemporaryDiscount.Mul(twelve)
		}
		s.Total = s.Total.Add(item.Savings)
		s.Items = append(s.Items, item)
	}
	s.Progression = progression(quote)
	return s, nil
}

// progression builds the ascending price breakpoints: starting at the
// fully discounted month-0 total, each distinct expiry period adds back
// the temporary amounts that lapse at that point.
func progression(quote *types.Quote) []PricePoint {
	expiring := make(map[int]decimal.Decimal)
	for _, line := range quote.Lines {
		if line.TemporaryDiscount.IsZero() || line.TemporaryPeriodMonths <= 0 {
			continue
		}
		expiring[line.TemporaryPeriodMonths] = expiring[line.TemporaryPeriodMonths].Add(line.TemporaryDiscount)
	}

	points := []PricePoint{{MonthsElapsed: 0, Price: quote.Total}}
	if len(expiring) == 0 {
		return points
	}

	periods := make([]int, 0, len(expiring))
	for p := range expiring {
		periods = append(periods, p)
	}
	sort.Ints(periods)

	cumulative := quote.Total
	for _, p := range periods {
		cumulative = cumulative.Add(expiring[p])
		points = append(points, PricePoint{MonthsElapsed: p, Price: cumulative})
	}
	return points
}

// SummarizePermanent is a convenience wrapper over a throwaway engine
func SummarizePermanent(cat *types.Catalog, sel *types.Selection) (*PermanentSummary, error) {
	return NewReporter(pricing.NewEngine(cat)).SummarizePermanent(sel)
}

// SummarizeTemporary is a convenience wrapper over a throwaway engine
func SummarizeTemporary(cat *types.Catalog, sel *types.Selection) (*TemporarySummary, error) {
	return NewReporter(pricing.NewEngine(cat)).SummarizeTemporary(sel)
}
