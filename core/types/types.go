// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Currency represents a currency code
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// ProductID uniquely identifies a product in the catalog
type ProductID string

// String returns the string representation
func (p ProductID) String() string {
	return string(p)
}

// TierID identifies a priced variant of a product
type TierID string

// String returns the string representation
func (t TierID) String() string {
	return string(t)
}

// ProductKind classifies how a product is priced and expanded into line items
type ProductKind string

const (
	// KindSingleTier - one line item priced by the selected tier (internet, fixed phone)
	KindSingleTier ProductKind = "single_tier"

	// KindMultiUnit - one line item per unit, each with its own tier (mobile simcards)
	KindMultiUnit ProductKind = "multi_unit"

	// KindService - one line item at a fixed price (entertainment service without tiers)
	KindService ProductKind = "service"

	// KindTieredService - one line item priced by the selected tier (entertainment service with tiers)
	KindTieredService ProductKind = "tiered_service"

	// KindAddOn - one line item per quantity unit at a flat unit price (WiFi pods)
	KindAddOn ProductKind = "addon"
)

// IsValid checks if the kind is a known product kind
func (k ProductKind) IsValid() bool {
	switch k {
	case KindSingleTier, KindMultiUnit, KindService, KindTieredService, KindAddOn:
		return true
	default:
		return false
	}
}

// IsServiceKind reports whether the kind participates in the combo discount
// scheme rather than the permanent/temporary scheme.
func (k ProductKind) IsServiceKind() bool {
	return k == KindService || k == KindTieredService
}

// UnitScope restricts a permanent discount rule to a subset of a
// multi-unit product's units by position.
type UnitScope string

const (
	// ScopeAllUnits applies the rule to every qualifying unit
	ScopeAllUnits UnitScope = "all_units"

	// ScopeFirstUnit applies the rule only to the unit at position 0
	ScopeFirstUnit UnitScope = "first_unit"

	// ScopeExtraUnits applies the rule only to units at position >= 1
	ScopeExtraUnits UnitScope = "extra_units"
)

// Matches reports whether a zero-based unit position falls inside the scope.
// The empty scope behaves as ScopeAllUnits.
func (s UnitScope) Matches(position int) bool {
	switch s {
	case ScopeFirstUnit:
		return position == 0
	case ScopeExtraUnits:
		return position >= 1
	default:
		return true
	}
}

// DiscountClass classifies a discount for reporting purposes
type DiscountClass string

const (
	// ClassPermanent - persists for the life of the subscription
	ClassPermanent DiscountClass = "permanent"

	// ClassTemporary - fixed amount off for a bounded number of months
	ClassTemporary DiscountClass = "temporary"
)

// IsValid checks if the class is known
func (c DiscountClass) IsValid() bool {
	return c == ClassPermanent || c == ClassTemporary
}
