// Package catalogfile loads catalog documents for the pricing engine.
// Catalogs normally arrive as JSON; an HCL form exists for hand-authored
// fixtures. The engine itself validates lazily - the eager Validate here
// backs the `catalog validate` tooling.
package catalogfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"bundle-cost/core/types"
	"bundle-cost/internal/errors"
)

var validate = validator.New()

// Load reads a catalog document, picking the codec from the extension
// (.json, .hcl).
func Load(path string) (*types.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "reading catalog document", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return ParseHCL(path, data)
	case ".json", "":
		return ParseJSON(path, data)
	default:
		return nil, errors.Newf(errors.TypeInput, "unsupported catalog format: %s", filepath.Ext(path))
	}
}

// ParseJSON decodes a JSON catalog document
func ParseJSON(filename string, data []byte) (*types.Catalog, error) {
	var cat types.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, errors.Parsing("decoding catalog JSON: "+filename, err)
	}
	return &cat, nil
}

// Validate runs eager shape validation over a loaded catalog. Field-level
// requirements come from the validate tags on the catalog types; the
// checks below cover cross-field shape the tags cannot express.
func Validate(cat *types.Catalog) error {
	if cat == nil {
		return errors.Input("catalog is nil")
	}
	if err := validate.Struct(cat); err != nil {
		return errors.Wrap(errors.TypeCatalogMismatch, "catalog shape validation failed", err)
	}

	seen := make(map[types.ProductID]bool)
	for i := range cat.Products {
		p := &cat.Products[i]
		if seen[p.ID] {
			return errors.Newf(errors.TypeCatalogMismatch, "duplicate product id: %s", p.ID)
		}
		seen[p.ID] = true

		if !p.Kind.IsValid() {
			return errors.Newf(errors.TypeCatalogMismatch, "product %s: unknown kind %q", p.ID, p.Kind)
		}
		if p.Kind == types.KindAddOn {
			if p.AddOn == nil {
				return errors.Newf(errors.TypeCatalogMismatch, "product %s: addon kind without unit pricing", p.ID)
			}
		} else if len(p.Tiers) == 0 {
			return errors.Newf(errors.TypeCatalogMismatch, "product %s: no tiers", p.ID)
		}
		if p.DefaultTier != "" && !hasTier(p, p.DefaultTier) {
			return errors.Newf(errors.TypeCatalogMismatch, "product %s: default tier %s not defined", p.ID, p.DefaultTier)
		}
	}

	for _, r := range cat.PermanentDiscounts {
		if !seen[r.TargetProduct] {
			return errors.Newf(errors.TypeCatalogMismatch, "permanent discount targets unknown product: %s", r.TargetProduct)
		}
		if r.RequiresProduct != "" && !seen[r.RequiresProduct] {
			return errors.Newf(errors.TypeCatalogMismatch, "permanent discount requires unknown product: %s", r.RequiresProduct)
		}
	}
	if combo := cat.ComboDiscount; combo != nil {
		for _, id := range combo.QualifyingProducts {
			if !seen[id] {
				return errors.Newf(errors.TypeCatalogMismatch, "combo discount references unknown product: %s", id)
			}
		}
	}
	return nil
}

func hasTier(p *types.Product, id types.TierID) bool {
	for _, t := range p.Tiers {
		if t.ID == id {
			return true
		}
	}
	return false
}
