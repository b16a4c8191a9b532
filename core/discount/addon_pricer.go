// Package discount - Add-on unit products
package discount

import (
	"bundle-cost/core/catalog"
	"bundle-cost/core/types"
)

// addOnPricer handles per-unit add-ons such as WiFi pods: the full unit
// price is temporarily waived for a configured period. A zero quantity
// produces no lines at all, so this pricer never sees one.
type addOnPricer struct{}

func (addOnPricer) Kind() types.ProductKind {
	return types.KindAddOn
}

func (addOnPricer) Evaluate(x *catalog.Index, sel *types.Selection, item Item) (Result, error) {
	addon, err := x.AddOn(item.Product.ID)
	if err != nil {
		return Result{}, err
	}

	res := Result{ListPrice: addon.UnitPrice}
	if addon.FreePeriodMonths > 0 {
		res.Temporary = addon.UnitPrice
		res.TemporaryPeriodMonths = addon.FreePeriodMonths
		res.PromoLabel = addon.PromoLabel
		res.ReportTemporarySavings = addon.ReportSavings
	}
	return res, nil
}
