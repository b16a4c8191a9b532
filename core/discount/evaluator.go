// Package discount evaluates the discount rules for a single billable
// item. Rules stack in a fixed order: the permanent percentage comes off
// the list price first, the temporary amount is then subtracted from the
// permanently discounted price, and the final price is clamped at zero.
package discount

import (
	"github.com/shopspring/decimal"

	"bundle-cost/core/catalog"
	"bundle-cost/core/types"
	"bundle-cost/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// Item references one concrete billable unit awaiting evaluation
type Item struct {
	// Product is the catalog product the unit belongs to
	Product *types.Product

	// TierID is the tier priced for this unit, where the kind has tiers
	TierID types.TierID

	// Position is the zero-based order of the unit within its product
	Position int
}

// Result is the price decomposition for one item
type Result struct {
	// ListPrice is the undiscounted monthly price
	ListPrice decimal.Decimal

	// Permanent is the monthly amount removed permanently
	Permanent decimal.Decimal

	// Temporary is the monthly amount removed for a bounded period
	Temporary decimal.Decimal

	// TemporaryPeriodMonths bounds the temporary amount
	TemporaryPeriodMonths int

	// PromoLabel names the promotion that produced the discount
	PromoLabel string

	// FromCombo marks the discount as combo-sourced
	FromCombo bool

	// ReportTemporarySavings includes the temporary amount in the
	// reported projected-savings total
	ReportTemporarySavings bool
}

// FinalPrice returns max(0, list - permanent - temporary). Clamping keeps
// stacked discounts from driving a line negative.
func (r Result) FinalPrice() decimal.Decimal {
	final := r.ListPrice.Sub(r.Permanent).Sub(r.Temporary)
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}

// Evaluate prices one item against the catalog and the current selection.
// It dispatches to the pricer registered for the product kind.
func Evaluate(x *catalog.Index, sel *types.Selection, item Item) (Result, error) {
	if item.Product == nil {
		return Result{}, errors.Input("discount evaluation requires a product")
	}
	pricer, ok := Get(item.Product.Kind)
	if !ok {
		return Result{}, errors.Newf(errors.TypeCatalogMismatch,
			"no pricer for product kind %q", item.Product.Kind)
	}
	return pricer.Evaluate(x, sel, item)
}

// permanentAmount computes the permanent discount for a tier-priced item.
// The rule applies only when globally enabled, the prerequisite product is
// enabled, the tier is in the eligible set and the unit position falls
// inside the rule scope.
func permanentAmount(x *catalog.Index, sel *types.Selection, item Item, tier *types.Tier) (decimal.Decimal, string) {
	rule := x.PermanentRuleFor(item.Product.ID)
	if rule == nil {
		return decimal.Zero, ""
	}
	if rule.RequiresProduct != "" && !sel.IsEnabled(rule.RequiresProduct) {
		return decimal.Zero, ""
	}
	if !rule.TierEligible(tier.ID) {
		return decimal.Zero, ""
	}
	if !rule.AppliesTo.Matches(item.Position) {
		return decimal.Zero, ""
	}
	return tier.Price.Mul(rule.Percentage).Div(hundred), rule.PromoLabel
}
