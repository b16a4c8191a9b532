// Package catalog provides access to the externally supplied product
// catalog. Lookups validate lazily: a missing or malformed entry surfaces
// as a catalog mismatch error at first use, never as a guessed default.
package catalog

import (
	"bundle-cost/core/types"
	"bundle-cost/internal/errors"
)

// Index wraps an immutable catalog with id-keyed lookups
type Index struct {
	cat      *types.Catalog
	products map[types.ProductID]*types.Product
	tiers    map[types.ProductID]map[types.TierID]*types.Tier
}

// NewIndex builds lookup maps over a catalog. The catalog must not be
// mutated afterwards.
func NewIndex(cat *types.Catalog) *Index {
	idx := &Index{
		cat:      cat,
		products: make(map[types.ProductID]*types.Product),
		tiers:    make(map[types.ProductID]map[types.TierID]*types.Tier),
	}
	if cat == nil {
		return idx
	}
	for i := range cat.Products {
		p := &cat.Products[i]
		idx.products[p.ID] = p
		byTier := make(map[types.TierID]*types.Tier, len(p.Tiers))
		for j := range p.Tiers {
			byTier[p.Tiers[j].ID] = &p.Tiers[j]
		}
		idx.tiers[p.ID] = byTier
	}
	return idx
}

// Catalog returns the underlying catalog
func (x *Index) Catalog() *types.Catalog {
	return x.cat
}

// Currency returns the catalog currency, defaulting to EUR
func (x *Index) Currency() types.Currency {
	if x.cat != nil && x.cat.Currency != "" {
		return x.cat.Currency
	}
	return types.CurrencyEUR
}

// Products returns all products in catalog order
func (x *Index) Products() []types.Product {
	if x.cat == nil {
		return nil
	}
	return x.cat.Products
}

// Product returns a product by id
func (x *Index) Product(id types.ProductID) (*types.Product, error) {
	p, ok := x.products[id]
	if !ok {
		return nil, errors.CatalogMismatch("product", id.String())
	}
	if !p.Kind.IsValid() {
		return nil, errors.Newf(errors.TypeCatalogMismatch,
			"product %s has unknown kind %q", id, p.Kind)
	}
	return p, nil
}

// Tier returns a tier of a product by id pair
func (x *Index) Tier(productID types.ProductID, tierID types.TierID) (*types.Tier, error) {
	if _, err := x.Product(productID); err != nil {
		return nil, err
	}
	t, ok := x.tiers[productID][tierID]
	if !ok {
		return nil, errors.CatalogMismatch("tier", productID.String()+"/"+tierID.String()).
			WithContext("product", productID.String())
	}
	return t, nil
}

// AddOn returns the add-on pricing of an addon product
func (x *Index) AddOn(productID types.ProductID) (*types.AddOnUnit, error) {
	p, err := x.Product(productID)
	if err != nil {
		return nil, err
	}
	if p.AddOn == nil {
		return nil, errors.Newf(errors.TypeCatalogMismatch,
			"addon product %s carries no unit pricing", productID)
	}
	return p.AddOn, nil
}

// PermanentRuleFor returns the enabled permanent discount rule targeting
// a product, or nil when none applies.
func (x *Index) PermanentRuleFor(productID types.ProductID) *types.PermanentDiscountRule {
	if x.cat == nil {
		return nil
	}
	for i := range x.cat.PermanentDiscounts {
		r := &x.cat.PermanentDiscounts[i]
		if r.Enabled && r.TargetProduct == productID {
			return r
		}
	}
	return nil
}

// Combo returns the combo discount rule when enabled, or nil
func (x *Index) Combo() *types.ComboDiscountRule {
	if x.cat == nil || x.cat.ComboDiscount == nil || !x.cat.ComboDiscount.Enabled {
		return nil
	}
	return x.cat.ComboDiscount
}

// EnabledQualifyingCount counts enabled service products that qualify for
// the combo rule. Disabled products never count, whatever sub-state they
// still carry.
func (x *Index) EnabledQualifyingCount(sel *types.Selection) int {
	rule := x.Combo()
	if rule == nil {
		return 0
	}
	count := 0
	for i := range x.Products() {
		p := &x.cat.Products[i]
		if !p.Kind.IsServiceKind() {
			continue
		}
		if rule.Qualifies(p.ID) && sel.IsEnabled(p.ID) {
			count++
		}
	}
	return count
}
