package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"bundle-cost/core/types"
	"bundle-cost/internal/errors"
)

func indexFixture() *Index {
	ten := decimal.NewFromInt(10)
	return NewIndex(&types.Catalog{
		Currency: types.CurrencyUSD,
		Products: []types.Product{
			{
				ID:          "internet",
				Kind:        types.KindSingleTier,
				DefaultTier: "fiber",
				Tiers:       []types.Tier{{ID: "fiber", Price: ten}},
			},
			{
				ID:    "netflix",
				Kind:  types.KindTieredService,
				Tiers: []types.Tier{{ID: "standard", Price: ten}},
			},
			{
				ID:    "disney",
				Kind:  types.KindService,
				Tiers: []types.Tier{{ID: "base", Price: ten}},
			},
			{
				ID:    "pods",
				Kind:  types.KindAddOn,
				AddOn: &types.AddOnUnit{UnitPrice: ten, MaxUnits: 4},
			},
			{
				ID:   "mystery",
				Kind: types.ProductKind("hologram"),
			},
		},
		PermanentDiscounts: []types.PermanentDiscountRule{
			{Enabled: false, TargetProduct: "internet", Percentage: ten},
			{Enabled: true, TargetProduct: "internet", Percentage: ten},
		},
		ComboDiscount: &types.ComboDiscountRule{
			Enabled:            true,
			Percentage:         decimal.NewFromInt(5),
			MinProducts:        2,
			QualifyingProducts: []types.ProductID{"netflix", "disney"},
		},
	})
}

func TestProductLookup(t *testing.T) {
	x := indexFixture()

	p, err := x.Product("internet")
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if p.ID != "internet" {
		t.Errorf("expected internet, got %s", p.ID)
	}

	if _, err := x.Product("nope"); !errors.IsType(err, errors.TypeCatalogMismatch) {
		t.Errorf("expected catalog mismatch for unknown product, got %v", err)
	}
	if _, err := x.Product("mystery"); !errors.IsType(err, errors.TypeCatalogMismatch) {
		t.Errorf("expected catalog mismatch for unknown kind, got %v", err)
	}
}

func TestTierLookup(t *testing.T) {
	x := indexFixture()

	tier, err := x.Tier("internet", "fiber")
	if err != nil {
		t.Fatalf("Tier: %v", err)
	}
	if tier.ID != "fiber" {
		t.Errorf("expected fiber, got %s", tier.ID)
	}

	if _, err := x.Tier("internet", "copper"); !errors.IsType(err, errors.TypeCatalogMismatch) {
		t.Errorf("expected catalog mismatch for unknown tier, got %v", err)
	}
	if _, err := x.Tier("nope", "fiber"); !errors.IsType(err, errors.TypeCatalogMismatch) {
		t.Errorf("expected catalog mismatch for unknown product, got %v", err)
	}
}

func TestAddOnLookup(t *testing.T) {
	x := indexFixture()

	addon, err := x.AddOn("pods")
	if err != nil {
		t.Fatalf("AddOn: %v", err)
	}
	if addon.MaxUnits != 4 {
		t.Errorf("expected max 4, got %d", addon.MaxUnits)
	}

	// A product without unit pricing cannot be priced as an add-on.
	if _, err := x.AddOn("internet"); !errors.IsType(err, errors.TypeCatalogMismatch) {
		t.Errorf("expected catalog mismatch, got %v", err)
	}
}

func TestPermanentRuleSkipsDisabled(t *testing.T) {
	x := indexFixture()

	rule := x.PermanentRuleFor("internet")
	if rule == nil {
		t.Fatal("expected the enabled rule")
	}
	if !rule.Enabled {
		t.Error("returned rule is disabled")
	}
	if x.PermanentRuleFor("netflix") != nil {
		t.Error("expected no rule for an untargeted product")
	}
}

func TestComboDisabledIsNil(t *testing.T) {
	x := indexFixture()
	if x.Combo() == nil {
		t.Fatal("expected the combo rule")
	}

	x.Catalog().ComboDiscount.Enabled = false
	if x.Combo() != nil {
		t.Error("a disabled combo rule must read as absent")
	}
}

func TestEnabledQualifyingCount(t *testing.T) {
	x := indexFixture()

	sel := types.NewSelection()
	if got := x.EnabledQualifyingCount(sel); got != 0 {
		t.Errorf("empty selection: expected 0, got %d", got)
	}

	sel.Products["netflix"] = &types.ProductSelection{Enabled: true, TierID: "standard"}
	sel.Products["disney"] = &types.ProductSelection{Enabled: true}
	// Enabled but not a qualifying service kind.
	sel.Products["internet"] = &types.ProductSelection{Enabled: true, TierID: "fiber"}
	if got := x.EnabledQualifyingCount(sel); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}

	// A disabled service never counts, stale sub-state or not.
	sel.Products["disney"].Enabled = false
	if got := x.EnabledQualifyingCount(sel); got != 1 {
		t.Errorf("expected 1 after disabling, got %d", got)
	}
}

func TestCurrencyDefaultsToEUR(t *testing.T) {
	if got := indexFixture().Currency(); got != types.CurrencyUSD {
		t.Errorf("expected USD, got %s", got)
	}
	if got := NewIndex(&types.Catalog{}).Currency(); got != types.CurrencyEUR {
		t.Errorf("expected EUR default, got %s", got)
	}
}

func TestNilCatalogIndex(t *testing.T) {
	x := NewIndex(nil)
	if x.Products() != nil {
		t.Error("expected no products")
	}
	if _, err := x.Product("internet"); err == nil {
		t.Error("expected an error on lookup")
	}
	if x.Combo() != nil || x.PermanentRuleFor("internet") != nil {
		t.Error("expected no rules")
	}
}
