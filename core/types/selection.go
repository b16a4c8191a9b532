// Package types - Selection state types
package types

// Selection is the caller-owned user choice state. The engine only ever
// reads it; toggling, tier seeding and sub-state clearing are the caller's
// responsibility.
type Selection struct {
	// Products maps product id to its selection state
	Products map[ProductID]*ProductSelection `json:"products"`
}

// ProductSelection holds the per-product choice state. Tier, unit and
// quantity fields are meaningful only while Enabled is true; the engine
// treats a disabled product as contributing zero regardless of stale
// sub-state.
type ProductSelection struct {
	// Enabled toggles the product on or off
	Enabled bool `json:"enabled"`

	// TierID is the selected tier for single_tier and tiered_service products
	TierID TierID `json:"tier_id,omitempty"`

	// Units is the ordered unit list for multi_unit products
	Units []UnitSelection `json:"units,omitempty"`

	// Quantity is the unit count for addon products
	Quantity int `json:"quantity,omitempty"`
}

// UnitSelection is one unit of a multi_unit product (a single simcard)
type UnitSelection struct {
	// ID is a caller-assigned stable identifier for the unit
	ID int `json:"id"`

	// TierID is the tier selected for this unit
	TierID TierID `json:"tier_id"`
}

// NewSelection creates an empty selection
func NewSelection() *Selection {
	return &Selection{Products: make(map[ProductID]*ProductSelection)}
}

// Product returns the selection state for a product id, or a disabled
// zero state when the product has never been touched.
func (s *Selection) Product(id ProductID) *ProductSelection {
	if s == nil || s.Products == nil {
		return &ProductSelection{}
	}
	if ps, ok := s.Products[id]; ok && ps != nil {
		return ps
	}
	return &ProductSelection{}
}

// IsEnabled reports whether a product is currently enabled
func (s *Selection) IsEnabled(id ProductID) bool {
	return s.Product(id).Enabled
}
