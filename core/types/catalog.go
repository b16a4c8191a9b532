// Package types - Catalog types
package types

import "github.com/shopspring/decimal"

// Catalog is the immutable, externally supplied product and discount
// description. It is loaded once per session and never mutated by the engine.
type Catalog struct {
	// Currency is the catalog-wide currency
	Currency Currency `json:"currency" validate:"required"`

	// Products lists all configurable products in display order
	Products []Product `json:"products" validate:"required,min=1,dive"`

	// PermanentDiscounts are percentage rules gated on cross-product eligibility
	PermanentDiscounts []PermanentDiscountRule `json:"permanent_discounts,omitempty" validate:"dive"`

	// ComboDiscount is the entertainment combination discount, if any
	ComboDiscount *ComboDiscountRule `json:"combo_discount,omitempty"`
}

// Product describes one configurable product
type Product struct {
	// ID uniquely identifies the product
	ID ProductID `json:"id" validate:"required"`

	// Title is a human-readable name
	Title string `json:"title"`

	// Kind determines pricing and line item expansion
	Kind ProductKind `json:"kind" validate:"required"`

	// Tiers are the priced variants; at least one except for addon products
	Tiers []Tier `json:"tiers,omitempty" validate:"dive"`

	// DefaultTier is the tier seeded when the product is first enabled
	DefaultTier TierID `json:"default_tier,omitempty"`

	// MaxUnits bounds the unit list for multi_unit products (e.g. simcards)
	MaxUnits int `json:"max_units,omitempty"`

	// AddOn carries per-unit pricing for addon products
	AddOn *AddOnUnit `json:"addon,omitempty"`
}

// Tier is a priced variant of a product
type Tier struct {
	// ID uniquely identifies the tier within its product
	ID TierID `json:"id" validate:"required"`

	// Title is a human-readable name
	Title string `json:"title"`

	// Subtitle is short descriptive copy
	Subtitle string `json:"subtitle,omitempty"`

	// Summary is comma-separated feature copy
	Summary string `json:"summary,omitempty"`

	// Price is the monthly list price
	Price decimal.Decimal `json:"price"`

	// Temporary is an optional bounded monthly discount
	Temporary *TemporaryDiscount `json:"temporary_discount,omitempty"`

	// Copy holds descriptive variants keyed by discount combination
	Copy *CopyVariants `json:"copy,omitempty"`
}

// TemporaryDiscount is a fixed monthly amount off for a bounded period
type TemporaryDiscount struct {
	// AmountPerMonth is subtracted from the permanently discounted price
	AmountPerMonth decimal.Decimal `json:"amount_per_month"`

	// PeriodMonths is how many months the discount lasts
	PeriodMonths int `json:"period_months" validate:"gt=0"`

	// PromoLabel is the display label for the promotion
	PromoLabel string `json:"promo_label,omitempty"`
}

// CopyVariants holds descriptive copy per discount combination
type CopyVariants struct {
	TemporaryOnly string `json:"temporary_only,omitempty"`
	PermanentOnly string `json:"permanent_only,omitempty"`
	Both          string `json:"both,omitempty"`
}

// PermanentDiscountRule is a percentage reduction gated on another
// product being enabled and on the item's tier being in the eligible set.
type PermanentDiscountRule struct {
	// Enabled globally switches the rule on or off
	Enabled bool `json:"enabled"`

	// Percentage is a whole-number percentage (e.g. 50 for 50%)
	Percentage decimal.Decimal `json:"percentage"`

	// TargetProduct is the product whose items the rule discounts
	TargetProduct ProductID `json:"target_product" validate:"required"`

	// RequiresProduct must be enabled in the selection for the rule to apply.
	// Empty means unconditional.
	RequiresProduct ProductID `json:"requires_product,omitempty"`

	// EligibleTiers restricts the rule to these tier ids
	EligibleTiers []TierID `json:"eligible_tiers,omitempty"`

	// AppliesTo scopes the rule by unit position for multi_unit products
	AppliesTo UnitScope `json:"applies_to,omitempty"`

	// PromoLabel is the display label for the promotion
	PromoLabel string `json:"promo_label,omitempty"`
}

// TierEligible reports whether a tier id is in the rule's eligible set.
// An empty set means every tier qualifies.
func (r PermanentDiscountRule) TierEligible(id TierID) bool {
	if len(r.EligibleTiers) == 0 {
		return true
	}
	for _, t := range r.EligibleTiers {
		if t == id {
			return true
		}
	}
	return false
}

// ComboDiscountRule is a percentage reduction applied to every enabled
// qualifying service once a minimum count of them is enabled.
type ComboDiscountRule struct {
	// Enabled globally switches the rule on or off
	Enabled bool `json:"enabled"`

	// Percentage is a whole-number percentage (e.g. 5 for 5%)
	Percentage decimal.Decimal `json:"percentage"`

	// MinProducts is the minimum count of enabled qualifying products
	MinProducts int `json:"min_products" validate:"gt=0"`

	// QualifyingProducts lists the service products that count toward the
	// minimum and receive the discount. Empty means every service product.
	QualifyingProducts []ProductID `json:"qualifying_products,omitempty"`

	// ReportedAs classifies the combo amount in promotion summaries
	ReportedAs DiscountClass `json:"reported_as,omitempty"`

	// PromoLabel is the display label for the promotion
	PromoLabel string `json:"promo_label,omitempty"`
}

// Qualifies reports whether a product id counts toward the combo minimum.
func (r ComboDiscountRule) Qualifies(id ProductID) bool {
	if len(r.QualifyingProducts) == 0 {
		return true
	}
	for _, p := range r.QualifyingProducts {
		if p == id {
			return true
		}
	}
	return false
}

// ReportClass returns the reporting class, defaulting to permanent.
func (r ComboDiscountRule) ReportClass() DiscountClass {
	if r.ReportedAs.IsValid() {
		return r.ReportedAs
	}
	return ClassPermanent
}

// AddOnUnit describes per-unit add-on pricing (e.g. WiFi pods)
type AddOnUnit struct {
	// UnitPrice is the monthly list price per unit
	UnitPrice decimal.Decimal `json:"unit_price"`

	// MaxUnits bounds the selectable quantity
	MaxUnits int `json:"max_units" validate:"gt=0"`

	// FreePeriodMonths waives the full unit price for this many months
	FreePeriodMonths int `json:"free_period_months,omitempty"`

	// PromoLabel is the display label for the waiver
	PromoLabel string `json:"promo_label,omitempty"`

	// ReportSavings includes the waiver in reported temporary savings
	ReportSavings bool `json:"report_savings,omitempty"`
}
