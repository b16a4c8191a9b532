package promo

import (
	"testing"

	"github.com/shopspring/decimal"

	"bundle-cost/core/types"
)

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func assertDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	if !got.Equal(mustDec(want)) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func reportCatalog() *types.Catalog {
	return &types.Catalog{
		Currency: types.CurrencyEUR,
		Products: []types.Product{
			{
				ID:          "internet",
				Title:       "Internet",
				Kind:        types.KindSingleTier,
				DefaultTier: "fiber",
				Tiers:       []types.Tier{{ID: "fiber", Price: mustDec("45")}},
			},
			{
				ID:          "mobile",
				Title:       "Simcard",
				Kind:        types.KindMultiUnit,
				MaxUnits:    5,
				DefaultTier: "basic",
				Tiers: []types.Tier{
					{
						ID:    "basic",
						Price: mustDec("20"),
						Temporary: &types.TemporaryDiscount{
							AmountPerMonth: mustDec("5"),
							PeriodMonths:   3,
							PromoLabel:     "extra line promo",
						},
					},
				},
			},
			{
				ID:    "pods",
				Title: "WiFi pod",
				Kind:  types.KindAddOn,
				AddOn: &types.AddOnUnit{
					UnitPrice:        mustDec("4"),
					MaxUnits:         4,
					FreePeriodMonths: 6,
					PromoLabel:       "free pods",
					ReportSavings:    true,
				},
			},
			{
				ID:    "disney",
				Title: "Disney+",
				Kind:  types.KindService,
				Tiers: []types.Tier{{ID: "base", Price: mustDec("10")}},
			},
			{
				ID:    "sport",
				Title: "Sport",
				Kind:  types.KindService,
				Tiers: []types.Tier{{ID: "base", Price: mustDec("10")}},
			},
		},
		PermanentDiscounts: []types.PermanentDiscountRule{
			{
				Enabled:         true,
				Percentage:      mustDec("50"),
				TargetProduct:   "mobile",
				RequiresProduct: "internet",
				PromoLabel:      "combo advantage",
			},
		},
		ComboDiscount: &types.ComboDiscountRule{
			Enabled:            true,
			Percentage:         mustDec("10"),
			MinProducts:        2,
			QualifyingProducts: []types.ProductID{"disney", "sport"},
		},
	}
}

func TestPermanentSummaryAnnualizes(t *testing.T) {
	sel := types.NewSelection()
	sel.Products["internet"] = &types.ProductSelection{Enabled: true, TierID: "fiber"}
	sel.Products["mobile"] = &types.ProductSelection{
		Enabled: true,
		Units:   []types.UnitSelection{{ID: 1, TierID: "basic"}},
	}

	s, err := SummarizePermanent(reportCatalog(), sel)
	if err != nil {
		t.Fatalf("SummarizePermanent: %v", err)
	}

	assertDec(t, "10", s.MonthlyTotal) // 50% of 20
	assertDec(t, "120", s.AnnualTotal)
	if len(s.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(s.Items))
	}
	if s.Items[0].PromoLabel != "combo advantage" {
		t.Errorf("unexpected promo label %q", s.Items[0].PromoLabel)
	}
	assertDec(t, "120", s.Items[0].Savings)
}

func TestTemporarySummaryProjectsAmountTimesPeriod(t *testing.T) {
	// Two simcards: only the second gets the 5/3mo promo, so the
	// projected savings are 5 * 3 = 15.
	sel := types.NewSelection()
	sel.Products["mobile"] = &types.ProductSelection{
		Enabled: true,
		Units: []types.UnitSelection{
			{ID: 1, TierID: "basic"},
			{ID: 2, TierID: "basic"},
		},
	}

	s, err := SummarizeTemporary(reportCatalog(), sel)
	if err != nil {
		t.Fatalf("SummarizeTemporary: %v", err)
	}

	assertDec(t, "15", s.Total)
	if len(s.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(s.Items))
	}
	if s.Items[0].PeriodMonths != 3 {
		t.Errorf("expected period 3, got %d", s.Items[0].PeriodMonths)
	}
}

func TestProgressionAddsBackExpiringAmounts(t *testing.T) {
	// Month 0: both promos active. The pod waiver (4) lapses at month 6,
	// the simcard promo (5) at month 3. Totals: 35 -> 40 -> 44.
	sel := types.NewSelection()
	sel.Products["mobile"] = &types.ProductSelection{
		Enabled: true,
		Units: []types.UnitSelection{
			{ID: 1, TierID: "basic"},
			{ID: 2, TierID: "basic"},
		},
	}
	sel.Products["pods"] = &types.ProductSelection{Enabled: true, Quantity: 1}

	s, err := SummarizeTemporary(reportCatalog(), sel)
	if err != nil {
		t.Fatalf("SummarizeTemporary: %v", err)
	}

	if len(s.Progression) != 3 {
		t.Fatalf("expected 3 price points, got %d: %+v", len(s.Progression), s.Progression)
	}
	expect := []struct {
		months int
		price  string
	}{
		{0, "35"}, // 20 + 15 + 0
		{3, "40"}, // simcard promo lapses
		{6, "44"}, // pod waiver lapses
	}
	for i, want := range expect {
		got := s.Progression[i]
		if got.MonthsElapsed != want.months {
			t.Errorf("point %d: expected month %d, got %d", i, want.months, got.MonthsElapsed)
		}
		assertDec(t, want.price, got.Price)
	}
}

func TestWaiverOptOutStillShapesProgression(t *testing.T) {
	// With savings reporting opted out the waiver disappears from the
	// summary total but the progression still records the price step.
	cat := reportCatalog()
	cat.Products[2].AddOn.ReportSavings = false

	sel := types.NewSelection()
	sel.Products["pods"] = &types.ProductSelection{Enabled: true, Quantity: 2}

	s, err := SummarizeTemporary(cat, sel)
	if err != nil {
		t.Fatalf("SummarizeTemporary: %v", err)
	}

	assertDec(t, "0", s.Total)
	if len(s.Items) != 0 {
		t.Fatalf("expected no reportable items, got %d", len(s.Items))
	}
	if len(s.Progression) != 2 {
		t.Fatalf("expected 2 price points, got %d", len(s.Progression))
	}
	assertDec(t, "0", s.Progression[0].Price)
	assertDec(t, "8", s.Progression[1].Price)
	if s.Progression[1].MonthsElapsed != 6 {
		t.Errorf("expected waiver to lapse at month 6, got %d", s.Progression[1].MonthsElapsed)
	}
}

func TestComboReportedAsTemporaryProjectsTwelveMonths(t *testing.T) {
	cat := reportCatalog()
	cat.ComboDiscount.ReportedAs = types.ClassTemporary

	sel := types.NewSelection()
	sel.Products["disney"] = &types.ProductSelection{Enabled: true}
	sel.Products["sport"] = &types.ProductSelection{Enabled: true}

	s, err := SummarizeTemporary(cat, sel)
	if err != nil {
		t.Fatalf("SummarizeTemporary: %v", err)
	}

	// Each service line carries 10% of 10 with no period bound: projected
	// over twelve months, 1 * 12 per line.
	assertDec(t, "24", s.Total)
	if len(s.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(s.Items))
	}
	// An open-ended amount has no expiry, so the progression stays flat.
	if len(s.Progression) != 1 {
		t.Fatalf("expected flat progression, got %d points", len(s.Progression))
	}
	assertDec(t, "18", s.Progression[0].Price)
}

func TestComboReportedAsPermanentLandsInPermanentSummary(t *testing.T) {
	sel := types.NewSelection()
	sel.Products["disney"] = &types.ProductSelection{Enabled: true}
	sel.Products["sport"] = &types.ProductSelection{Enabled: true}

	perm, err := SummarizePermanent(reportCatalog(), sel)
	if err != nil {
		t.Fatalf("SummarizePermanent: %v", err)
	}
	assertDec(t, "2", perm.MonthlyTotal)
	assertDec(t, "24", perm.AnnualTotal)

	temp, err := SummarizeTemporary(reportCatalog(), sel)
	if err != nil {
		t.Fatalf("SummarizeTemporary: %v", err)
	}
	assertDec(t, "0", temp.Total)
}

func TestSummariesOfEmptySelection(t *testing.T) {
	sel := types.NewSelection()

	perm, err := SummarizePermanent(reportCatalog(), sel)
	if err != nil {
		t.Fatalf("SummarizePermanent: %v", err)
	}
	assertDec(t, "0", perm.MonthlyTotal)
	if len(perm.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(perm.Items))
	}

	temp, err := SummarizeTemporary(reportCatalog(), sel)
	if err != nil {
		t.Fatalf("SummarizeTemporary: %v", err)
	}
	assertDec(t, "0", temp.Total)
	if len(temp.Progression) != 1 {
		t.Fatalf("expected the month-0 point only, got %d", len(temp.Progression))
	}
	assertDec(t, "0", temp.Progression[0].Price)
}
