// Package pricing aggregates per-item discount evaluations into a quote.
// ComputeTotals is a pure function of (selection, catalog): it never
// mutates the selection, caches nothing, and repeated calls with
// unchanged inputs return identical results.
package pricing

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"bundle-cost/core/catalog"
	"bundle-cost/core/discount"
	"bundle-cost/core/guards"
	"bundle-cost/core/types"
	"bundle-cost/internal/errors"
	"bundle-cost/internal/logging"
)

// Engine prices selections against one catalog
type Engine struct {
	idx *catalog.Index
	log *zap.Logger
}

// NewEngine creates an engine over an immutable catalog
func NewEngine(cat *types.Catalog) *Engine {
	return &Engine{
		idx: catalog.NewIndex(cat),
		log: logging.Logger.Named("pricing"),
	}
}

// Index exposes the catalog index, shared with the promotion reporter
func (e *Engine) Index() *catalog.Index {
	return e.idx
}

// ComputeTotals expands every enabled product into line items, evaluates
// each through the discount evaluator and sums the results.
func (e *Engine) ComputeTotals(sel *types.Selection) (*types.Quote, error) {
	if err := e.checkSelection(sel); err != nil {
		return nil, err
	}

	quote := &types.Quote{Currency: e.idx.Currency()}
	for i := range e.idx.Products() {
		p := &e.idx.Catalog().Products[i]
		ps := sel.Product(p.ID)
		if !ps.Enabled {
			// Disabled products contribute zero, whatever stale
			// sub-state the caller left behind.
			continue
		}

		items, err := e.expand(p, ps)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			res, err := discount.Evaluate(e.idx, sel, item)
			if err != nil {
				return nil, err
			}
			line := toLineItem(p, item, res)
			quote.Lines = append(quote.Lines, line)
			quote.Total = quote.Total.Add(line.FinalPrice)
			quote.TotalPermanentDiscount = quote.TotalPermanentDiscount.Add(line.PermanentDiscount)
			quote.TotalTemporaryDiscount = quote.TotalTemporaryDiscount.Add(line.TemporaryDiscount)
		}
	}
	return quote, nil
}

// checkSelection rejects unknown product ids and hard invariant breaches
// before any pricing happens. Warn-severity violations are logged as the
// caller bug class they are and pricing continues.
func (e *Engine) checkSelection(sel *types.Selection) error {
	if sel == nil {
		return nil
	}

	ids := make([]types.ProductID, 0, len(sel.Products))
	for id := range sel.Products {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		if _, err := e.idx.Product(id); err != nil {
			return err
		}
	}

	violations := guards.Inspect(e.idx, sel)
	for _, v := range violations {
		if v.Severity == guards.SeverityWarn {
			e.log.Warn("selection invariant violation",
				zap.String("code", string(v.Code)),
				zap.String("product", v.ProductID.String()),
				zap.String("detail", v.Message))
		}
	}
	if v := guards.FirstError(violations); v != nil {
		return errors.Invariant(v.Message).WithContext("code", string(v.Code))
	}
	return nil
}

// expand turns one enabled product selection into concrete items with
// their zero-based positions.
func (e *Engine) expand(p *types.Product, ps *types.ProductSelection) ([]discount.Item, error) {
	switch p.Kind {
	case types.KindSingleTier, types.KindTieredService:
		tierID := ps.TierID
		if tierID == "" {
			tierID = p.DefaultTier
		}
		return []discount.Item{{Product: p, TierID: tierID}}, nil

	case types.KindService:
		return []discount.Item{{Product: p}}, nil

	case types.KindMultiUnit:
		items := make([]discount.Item, 0, len(ps.Units))
		for i, u := range ps.Units {
			tierID := u.TierID
			if tierID == "" {
				tierID = p.DefaultTier
			}
			items = append(items, discount.Item{Product: p, TierID: tierID, Position: i})
		}
		return items, nil

	case types.KindAddOn:
		items := make([]discount.Item, 0, ps.Quantity)
		for i := 0; i < ps.Quantity; i++ {
			items = append(items, discount.Item{Product: p, Position: i})
		}
		return items, nil

	default:
		return nil, errors.Newf(errors.TypeCatalogMismatch,
			"product %s has unknown kind %q", p.ID, p.Kind)
	}
}

func toLineItem(p *types.Product, item discount.Item, res discount.Result) types.LineItem {
	label := p.Title
	if label == "" {
		label = p.ID.String()
	}
	if p.Kind == types.KindMultiUnit || p.Kind == types.KindAddOn {
		label = fmt.Sprintf("%s %d", label, item.Position+1)
	}
	return types.LineItem{
		ProductID:              p.ID,
		UnitIndex:              item.Position,
		TierID:                 item.TierID,
		Label:                  label,
		ListPrice:              res.ListPrice,
		PermanentDiscount:      res.Permanent,
		TemporaryDiscount:      res.Temporary,
		TemporaryPeriodMonths:  res.TemporaryPeriodMonths,
		FinalPrice:             res.FinalPrice(),
		PromoLabel:             res.PromoLabel,
		FromCombo:              res.FromCombo,
		ReportTemporarySavings: res.ReportTemporarySavings,
	}
}

// ComputeTotals is a convenience wrapper constructing a throwaway engine
func ComputeTotals(cat *types.Catalog, sel *types.Selection) (*types.Quote, error) {
	return NewEngine(cat).ComputeTotals(sel)
}
