// Package discount - Discount stacking invariant tests
// These tests pin the stacking order and eligibility gates; several assert
// that the alternate orderings seen in the wild are NOT what happens here.
package discount

import (
	"testing"

	"github.com/shopspring/decimal"

	"bundle-cost/core/catalog"
	"bundle-cost/core/types"
	"bundle-cost/internal/errors"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// stackingCatalog builds a minimal catalog: one prerequisite product and
// one mobile product whose tier carries both discount kinds.
func stackingCatalog(scope types.UnitScope) *types.Catalog {
	return &types.Catalog{
		Currency: types.CurrencyEUR,
		Products: []types.Product{
			{
				ID:    "internet",
				Title: "Internet",
				Kind:  types.KindSingleTier,
				Tiers: []types.Tier{{ID: "fiber", Title: "Fiber", Price: dec("45")}},
			},
			{
				ID:          "mobile",
				Title:       "Simcard",
				Kind:        types.KindMultiUnit,
				MaxUnits:    5,
				DefaultTier: "combo_tier",
				Tiers: []types.Tier{
					{
						ID:    "combo_tier",
						Title: "Mobile Unlimited",
						Price: dec("30"),
						Temporary: &types.TemporaryDiscount{
							AmountPerMonth: dec("10"),
							PeriodMonths:   3,
						},
					},
				},
			},
		},
		PermanentDiscounts: []types.PermanentDiscountRule{
			{
				Enabled:         true,
				Percentage:      dec("50"),
				TargetProduct:   "mobile",
				RequiresProduct: "internet",
				EligibleTiers:   []types.TierID{"combo_tier"},
				AppliesTo:       scope,
			},
		},
	}
}

func selectionWith(internet bool) *types.Selection {
	sel := types.NewSelection()
	sel.Products["internet"] = &types.ProductSelection{Enabled: internet, TierID: "fiber"}
	sel.Products["mobile"] = &types.ProductSelection{
		Enabled: true,
		Units: []types.UnitSelection{
			{ID: 1, TierID: "combo_tier"},
			{ID: 2, TierID: "combo_tier"},
		},
	}
	return sel
}

func mobileItem(cat *types.Catalog, position int) Item {
	return Item{Product: &cat.Products[1], TierID: "combo_tier", Position: position}
}

// TestStackingOrderPermanentFirst proves the fixed order: the permanent
// percentage comes off the list price, the temporary amount off the rest.
// list 30, permanent 50%, temporary 10 => 30 - 15 - 10 = 5.
func TestStackingOrderPermanentFirst(t *testing.T) {
	cat := stackingCatalog(types.ScopeAllUnits)
	x := catalog.NewIndex(cat)
	sel := selectionWith(true)

	res, err := Evaluate(x, sel, mobileItem(cat, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Permanent.Equal(dec("15")) {
		t.Errorf("expected permanent discount 15, got %s", res.Permanent)
	}
	if !res.Temporary.Equal(dec("10")) {
		t.Errorf("expected temporary discount 10, got %s", res.Temporary)
	}
	if !res.FinalPrice().Equal(dec("5")) {
		t.Errorf("expected final price 5, got %s", res.FinalPrice())
	}
	// The reverse ordering (temporary first, percentage on the reduced
	// price) would yield 30 - 10 - 10 = 10. Make sure that is NOT us.
	if res.FinalPrice().Equal(dec("10")) {
		t.Error("temporary discount was applied before the permanent percentage")
	}
}

// TestPermanentGatingOnPrerequisite proves the cross-product gate: the
// same tier with the prerequisite disabled gets exactly zero.
func TestPermanentGatingOnPrerequisite(t *testing.T) {
	cat := stackingCatalog(types.ScopeAllUnits)
	x := catalog.NewIndex(cat)

	res, err := Evaluate(x, selectionWith(false), mobileItem(cat, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Permanent.IsZero() {
		t.Errorf("expected zero permanent discount without prerequisite, got %s", res.Permanent)
	}

	res, err = Evaluate(x, selectionWith(true), mobileItem(cat, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Permanent.Equal(dec("15")) {
		t.Errorf("expected permanent discount 15 with prerequisite, got %s", res.Permanent)
	}
}

// TestFirstUnitExcludedFromTemporary proves the position gate: the
// per-line promotion rewards additional lines, never the first.
func TestFirstUnitExcludedFromTemporary(t *testing.T) {
	cat := stackingCatalog(types.ScopeAllUnits)
	x := catalog.NewIndex(cat)
	sel := selectionWith(false)

	first, err := Evaluate(x, sel, mobileItem(cat, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.Temporary.IsZero() {
		t.Errorf("unit at position 0 must not get the temporary discount, got %s", first.Temporary)
	}

	second, err := Evaluate(x, sel, mobileItem(cat, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Temporary.Equal(dec("10")) {
		t.Errorf("unit at position 1 must get the temporary discount, got %s", second.Temporary)
	}
}

// TestFinalPriceClampedAtZero proves stacked discounts never drive a line
// negative.
func TestFinalPriceClampedAtZero(t *testing.T) {
	cat := stackingCatalog(types.ScopeAllUnits)
	// Temporary amount alone exceeds the permanently discounted price.
	cat.Products[1].Tiers[0].Temporary.AmountPerMonth = dec("25")
	x := catalog.NewIndex(cat)

	res, err := Evaluate(x, selectionWith(true), mobileItem(cat, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.FinalPrice().IsZero() {
		t.Errorf("expected final price clamped to 0, got %s", res.FinalPrice())
	}
	if res.FinalPrice().IsNegative() {
		t.Error("final price went negative")
	}
}

// TestUnknownTierIsCatalogMismatch proves the evaluator fails loudly on a
// selection referencing a tier the catalog does not carry.
func TestUnknownTierIsCatalogMismatch(t *testing.T) {
	cat := stackingCatalog(types.ScopeAllUnits)
	x := catalog.NewIndex(cat)

	item := Item{Product: &cat.Products[1], TierID: "ghost_tier", Position: 0}
	_, err := Evaluate(x, selectionWith(true), item)
	if err == nil {
		t.Fatal("expected a catalog mismatch error, got nil")
	}
	if !errors.IsType(err, errors.TypeCatalogMismatch) {
		t.Fatalf("expected CATALOG_MISMATCH, got %v", err)
	}
}

// TestPermanentScopeVariants covers the configurable position scoping the
// source material disagrees on: per-unit, first-unit-only, extra-units.
func TestPermanentScopeVariants(t *testing.T) {
	cases := []struct {
		name       string
		scope      types.UnitScope
		wantFirst  string
		wantSecond string
	}{
		{"all units", types.ScopeAllUnits, "15", "15"},
		{"first unit only", types.ScopeFirstUnit, "15", "0"},
		{"extra units only", types.ScopeExtraUnits, "0", "15"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat := stackingCatalog(tc.scope)
			x := catalog.NewIndex(cat)
			sel := selectionWith(true)

			first, err := Evaluate(x, sel, mobileItem(cat, 0))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !first.Permanent.Equal(dec(tc.wantFirst)) {
				t.Errorf("position 0: expected permanent %s, got %s", tc.wantFirst, first.Permanent)
			}

			second, err := Evaluate(x, sel, mobileItem(cat, 1))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !second.Permanent.Equal(dec(tc.wantSecond)) {
				t.Errorf("position 1: expected permanent %s, got %s", tc.wantSecond, second.Permanent)
			}
		})
	}
}

// TestIneligibleTierGetsNoPermanentDiscount proves the eligible-tier set
// is honored.
func TestIneligibleTierGetsNoPermanentDiscount(t *testing.T) {
	cat := stackingCatalog(types.ScopeAllUnits)
	cat.Products[1].Tiers = append(cat.Products[1].Tiers, types.Tier{
		ID:    "basic_tier",
		Price: dec("15"),
	})
	x := catalog.NewIndex(cat)

	item := Item{Product: &cat.Products[1], TierID: "basic_tier", Position: 0}
	res, err := Evaluate(x, selectionWith(true), item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Permanent.IsZero() {
		t.Errorf("tier outside the eligible set must get zero, got %s", res.Permanent)
	}
}
