// Package discount - Entertainment service products
package discount

import (
	"bundle-cost/core/catalog"
	"bundle-cost/core/types"
	"bundle-cost/internal/errors"
)

// servicePricer handles entertainment services under the combo discount
// scheme. Services have no temporary-discount concept: the only reduction
// is the percentage combo, applied uniformly to every enabled qualifying
// service once the minimum count is reached.
type servicePricer struct {
	kind   types.ProductKind
	tiered bool
}

func (p servicePricer) Kind() types.ProductKind {
	return p.kind
}

func (p servicePricer) Evaluate(x *catalog.Index, sel *types.Selection, item Item) (Result, error) {
	tier, err := p.resolveTier(x, item)
	if err != nil {
		return Result{}, err
	}

	res := Result{ListPrice: tier.Price}

	rule := x.Combo()
	if rule == nil || !rule.Qualifies(item.Product.ID) {
		return res, nil
	}
	if x.EnabledQualifyingCount(sel) < rule.MinProducts {
		return res, nil
	}

	amount := tier.Price.Mul(rule.Percentage).Div(hundred)
	res.FromCombo = true
	res.PromoLabel = rule.PromoLabel

	// The combo amount is open-ended; its reporting class decides which
	// discount bucket it lands in.
	if rule.ReportClass() == types.ClassTemporary {
		res.Temporary = amount
	} else {
		res.Permanent = amount
	}
	return res, nil
}

// resolveTier picks the selected tier for tiered services and the sole
// price entry for flat services.
func (p servicePricer) resolveTier(x *catalog.Index, item Item) (*types.Tier, error) {
	if p.tiered {
		return x.Tier(item.Product.ID, item.TierID)
	}
	if len(item.Product.Tiers) == 0 {
		return nil, errors.Newf(errors.TypeCatalogMismatch,
			"service %s carries no price entry", item.Product.ID)
	}
	return &item.Product.Tiers[0], nil
}
