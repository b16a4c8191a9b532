// Package catalogfile - HCL catalog documents
package catalogfile

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"bundle-cost/core/types"
	"bundle-cost/internal/errors"
)

type hclCatalog struct {
	Currency           string         `hcl:"currency,optional"`
	Products           []hclProduct   `hcl:"product,block"`
	PermanentDiscounts []hclPermanent `hcl:"permanent_discount,block"`
	ComboDiscount      *hclCombo      `hcl:"combo_discount,block"`
}

type hclProduct struct {
	ID          string     `hcl:"id,label"`
	Title       string     `hcl:"title,optional"`
	Kind        string     `hcl:"kind"`
	DefaultTier string     `hcl:"default_tier,optional"`
	MaxUnits    int        `hcl:"max_units,optional"`
	Tiers       []hclTier  `hcl:"tier,block"`
	AddOn       *hclAddOn  `hcl:"addon,block"`
}

type hclTier struct {
	ID        string        `hcl:"id,label"`
	Title     string        `hcl:"title,optional"`
	Subtitle  string        `hcl:"subtitle,optional"`
	Summary   string        `hcl:"summary,optional"`
	Price     cty.Value     `hcl:"price"`
	Temporary *hclTemporary `hcl:"temporary_discount,block"`
}

type hclTemporary struct {
	AmountPerMonth cty.Value `hcl:"amount_per_month"`
	PeriodMonths   int       `hcl:"period_months"`
	PromoLabel     string    `hcl:"promo_label,optional"`
}

type hclPermanent struct {
	Enabled         bool      `hcl:"enabled,optional"`
	Percentage      cty.Value `hcl:"percentage"`
	TargetProduct   string    `hcl:"target_product"`
	RequiresProduct string    `hcl:"requires_product,optional"`
	EligibleTiers   []string  `hcl:"eligible_tiers,optional"`
	AppliesTo       string    `hcl:"applies_to,optional"`
	PromoLabel      string    `hcl:"promo_label,optional"`
}

type hclCombo struct {
	Enabled            bool      `hcl:"enabled,optional"`
	Percentage         cty.Value `hcl:"percentage"`
	MinProducts        int       `hcl:"min_products"`
	QualifyingProducts []string  `hcl:"qualifying_products,optional"`
	ReportedAs         string    `hcl:"reported_as,optional"`
	PromoLabel         string    `hcl:"promo_label,optional"`
}

type hclAddOn struct {
	UnitPrice        cty.Value `hcl:"unit_price"`
	MaxUnits         int       `hcl:"max_units"`
	FreePeriodMonths int       `hcl:"free_period_months,optional"`
	PromoLabel       string    `hcl:"promo_label,optional"`
	ReportSavings    bool      `hcl:"report_savings,optional"`
}

// ParseHCL decodes an HCL catalog document
func ParseHCL(filename string, data []byte) (*types.Catalog, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("parsing catalog HCL: "+filename, diags)
	}

	var doc hclCatalog
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return nil, errors.Parsing("decoding catalog HCL: "+filename, diags)
	}
	return doc.toCatalog()
}

func (d *hclCatalog) toCatalog() (*types.Catalog, error) {
	cat := &types.Catalog{Currency: types.Currency(d.Currency)}

	for _, hp := range d.Products {
		p := types.Product{
			ID:          types.ProductID(hp.ID),
			Title:       hp.Title,
			Kind:        types.ProductKind(hp.Kind),
			DefaultTier: types.TierID(hp.DefaultTier),
			MaxUnits:    hp.MaxUnits,
		}
		for _, ht := range hp.Tiers {
			price, err := money(ht.Price, "product "+hp.ID+" tier "+ht.ID+" price")
			if err != nil {
				return nil, err
			}
			t := types.Tier{
				ID:       types.TierID(ht.ID),
				Title:    ht.Title,
				Subtitle: ht.Subtitle,
				Summary:  ht.Summary,
				Price:    price,
			}
			if ht.Temporary != nil {
				amount, err := money(ht.Temporary.AmountPerMonth, "temporary discount amount")
				if err != nil {
					return nil, err
				}
				t.Temporary = &types.TemporaryDiscount{
					AmountPerMonth: amount,
					PeriodMonths:   ht.Temporary.PeriodMonths,
					PromoLabel:     ht.Temporary.PromoLabel,
				}
			}
			p.Tiers = append(p.Tiers, t)
		}
		if hp.AddOn != nil {
			price, err := money(hp.AddOn.UnitPrice, "product "+hp.ID+" addon unit price")
			if err != nil {
				return nil, err
			}
			p.AddOn = &types.AddOnUnit{
				UnitPrice:        price,
				MaxUnits:         hp.AddOn.MaxUnits,
				FreePeriodMonths: hp.AddOn.FreePeriodMonths,
				PromoLabel:       hp.AddOn.PromoLabel,
				ReportSavings:    hp.AddOn.ReportSavings,
			}
		}
		cat.Products = append(cat.Products, p)
	}

	for _, hr := range d.PermanentDiscounts {
		pct, err := money(hr.Percentage, "permanent discount percentage")
		if err != nil {
			return nil, err
		}
		rule := types.PermanentDiscountRule{
			Enabled:         hr.Enabled,
			Percentage:      pct,
			TargetProduct:   types.ProductID(hr.TargetProduct),
			RequiresProduct: types.ProductID(hr.RequiresProduct),
			AppliesTo:       types.UnitScope(hr.AppliesTo),
			PromoLabel:      hr.PromoLabel,
		}
		for _, id := range hr.EligibleTiers {
			rule.EligibleTiers = append(rule.EligibleTiers, types.TierID(id))
		}
		cat.PermanentDiscounts = append(cat.PermanentDiscounts, rule)
	}

	if d.ComboDiscount != nil {
		pct, err := money(d.ComboDiscount.Percentage, "combo discount percentage")
		if err != nil {
			return nil, err
		}
		combo := &types.ComboDiscountRule{
			Enabled:     d.ComboDiscount.Enabled,
			Percentage:  pct,
			MinProducts: d.ComboDiscount.MinProducts,
			ReportedAs:  types.DiscountClass(d.ComboDiscount.ReportedAs),
			PromoLabel:  d.ComboDiscount.PromoLabel,
		}
		for _, id := range d.ComboDiscount.QualifyingProducts {
			combo.QualifyingProducts = append(combo.QualifyingProducts, types.ProductID(id))
		}
		cat.ComboDiscount = combo
	}

	return cat, nil
}

// money converts an HCL number value to an exact decimal via its string
// form, avoiding float64 round-trips on prices.
func money(v cty.Value, what string) (decimal.Decimal, error) {
	num, err := convert.Convert(v, cty.Number)
	if err != nil {
		return decimal.Zero, errors.Wrap(errors.TypeParsing, what+" is not a number", err)
	}
	d, err := decimal.NewFromString(num.AsBigFloat().Text('f', -1))
	if err != nil {
		return decimal.Zero, errors.Wrap(errors.TypeParsing, what+" is not a valid amount", err)
	}
	return d, nil
}
