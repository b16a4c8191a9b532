// Package discount - Tier-priced products
package discount

import (
	"bundle-cost/core/catalog"
	"bundle-cost/core/types"
)

// tierPricer handles products priced by a selected tier under the
// permanent/temporary discount scheme (internet, fixed phone, simcards).
type tierPricer struct {
	kind types.ProductKind

	// excludeFirstFromTemporary drops the per-line temporary promotion
	// for the unit at position 0. The promotion rewards additional
	// lines, not the first one.
	excludeFirstFromTemporary bool
}

func (p tierPricer) Kind() types.ProductKind {
	return p.kind
}

func (p tierPricer) Evaluate(x *catalog.Index, sel *types.Selection, item Item) (Result, error) {
	tier, err := x.Tier(item.Product.ID, item.TierID)
	if err != nil {
		return Result{}, err
	}

	res := Result{ListPrice: tier.Price}
	res.Permanent, res.PromoLabel = permanentAmount(x, sel, item, tier)

	if tier.Temporary != nil && p.temporaryApplies(item.Position) {
		res.Temporary = tier.Temporary.AmountPerMonth
		res.TemporaryPeriodMonths = tier.Temporary.PeriodMonths
		res.ReportTemporarySavings = true
		if res.PromoLabel == "" {
			res.PromoLabel = tier.Temporary.PromoLabel
		}
	}
	return res, nil
}

func (p tierPricer) temporaryApplies(position int) bool {
	if p.excludeFirstFromTemporary {
		return position >= 1
	}
	return true
}
