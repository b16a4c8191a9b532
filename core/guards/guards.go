// Package guards inspects a caller-owned selection for invariant
// violations. Unlike catalog mismatches these are caller bugs: the engine
// clamps the defensive cases to zero contribution and reports them here
// instead of failing, while hard cases (unit overflow) abort pricing.
package guards

import (
	"fmt"
	"sort"

	"bundle-cost/core/catalog"
	"bundle-cost/core/types"
)

// Severity classifies a violation
type Severity string

const (
	// SeverityWarn - defensively clamped, pricing continues
	SeverityWarn Severity = "warn"

	// SeverityError - pricing cannot proceed safely
	SeverityError Severity = "error"
)

// Code identifies the violation class
type Code string

const (
	// CodeUnitOverflow - unit list longer than the catalog max
	CodeUnitOverflow Code = "unit_overflow"

	// CodeQuantityOverflow - add-on quantity above the catalog max
	CodeQuantityOverflow Code = "quantity_overflow"

	// CodeStaleSubState - disabled product still carries tier/unit state
	CodeStaleSubState Code = "stale_substate"

	// CodeNegativeQuantity - add-on quantity below zero
	CodeNegativeQuantity Code = "negative_quantity"
)

// Violation is one detected invariant breach
type Violation struct {
	Code      Code            `json:"code"`
	Severity  Severity        `json:"severity"`
	ProductID types.ProductID `json:"product_id"`
	Message   string          `json:"message"`
}

// Inspect checks every product selection against the catalog invariants.
// Violations are returned in deterministic product-id order.
func Inspect(x *catalog.Index, sel *types.Selection) []Violation {
	if sel == nil || sel.Products == nil {
		return nil
	}

	ids := make([]types.ProductID, 0, len(sel.Products))
	for id := range sel.Products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []Violation
	for _, id := range ids {
		ps := sel.Products[id]
		if ps == nil {
			continue
		}
		p, err := x.Product(id)
		if err != nil {
			// Unknown products are the aggregator's catalog mismatch
			// concern, not an invariant breach.
			continue
		}
		out = append(out, inspectProduct(p, ps)...)
	}
	return out
}

func inspectProduct(p *types.Product, ps *types.ProductSelection) []Violation {
	var out []Violation

	if !ps.Enabled {
		if len(ps.Units) > 0 || ps.TierID != "" || ps.Quantity > 0 {
			out = append(out, Violation{
				Code:      CodeStaleSubState,
				Severity:  SeverityWarn,
				ProductID: p.ID,
				Message:   fmt.Sprintf("disabled product %s still carries selection sub-state", p.ID),
			})
		}
		return out
	}

	if p.Kind == types.KindMultiUnit && p.MaxUnits > 0 && len(ps.Units) > p.MaxUnits {
		out = append(out, Violation{
			Code:      CodeUnitOverflow,
			Severity:  SeverityError,
			ProductID: p.ID,
			Message:   fmt.Sprintf("product %s has %d units, catalog max is %d", p.ID, len(ps.Units), p.MaxUnits),
		})
	}

	if p.Kind == types.KindAddOn {
		if ps.Quantity < 0 {
			out = append(out, Violation{
				Code:      CodeNegativeQuantity,
				Severity:  SeverityError,
				ProductID: p.ID,
				Message:   fmt.Sprintf("product %s has negative quantity %d", p.ID, ps.Quantity),
			})
		} else if p.AddOn != nil && p.AddOn.MaxUnits > 0 && ps.Quantity > p.AddOn.MaxUnits {
			out = append(out, Violation{
				Code:      CodeQuantityOverflow,
				Severity:  SeverityError,
				ProductID: p.ID,
				Message:   fmt.Sprintf("product %s has quantity %d, catalog max is %d", p.ID, ps.Quantity, p.AddOn.MaxUnits),
			})
		}
	}

	return out
}

// FirstError returns the first error-severity violation, or nil
func FirstError(violations []Violation) *Violation {
	for i := range violations {
		if violations[i].Severity == SeverityError {
			return &violations[i]
		}
	}
	return nil
}
