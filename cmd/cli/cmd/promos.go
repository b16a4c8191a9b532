// Package cmd - promos command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"bundle-cost/core/promo"
)

// promosCmd represents the promos command
var promosCmd = &cobra.Command{
	Use:   "promos",
	Short: "Show promotion summaries for a selection",
	Long: `Derive the promotion detail panels for a selection: the annualized
permanent savings, the projected temporary savings per promotion and the
price evolution over time.`,
	RunE: runPromos,
}

func init() {
	promosCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "catalog document (.json or .hcl)")
	promosCmd.Flags().StringVarP(&selectionPath, "selection", "s", "", "selection scenario (.json or .yaml)")
}

func runPromos(cmd *cobra.Command, args []string) error {
	_, engine, sel, err := computeQuote()
	if err != nil {
		return err
	}

	reporter := promo.NewReporter(engine)
	permanent, err := reporter.SummarizePermanent(sel)
	if err != nil {
		return err
	}
	temporary, err := reporter.SummarizeTemporary(sel)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "PERMANENT PROMOTIONS\t\t")
	for _, item := range permanent.Items {
		fmt.Fprintf(tw, "  %s\t-%s/month\t%s\n", item.Label, item.MonthlyAmount.StringFixed(2), item.PromoLabel)
	}
	fmt.Fprintf(tw, "  Yearly advantage\t%s %s\t\n", permanent.Currency, permanent.AnnualTotal.StringFixed(2))
	fmt.Fprintln(tw, "\t\t")

	fmt.Fprintln(tw, "TEMPORARY PROMOTIONS\t\t")
	for _, item := range temporary.Items {
		if item.PeriodMonths > 0 {
			fmt.Fprintf(tw, "  %s\t-%s x %d months\t%s\n", item.Label, item.MonthlyAmount.StringFixed(2), item.PeriodMonths, item.PromoLabel)
		} else {
			fmt.Fprintf(tw, "  %s\t-%s/month\t%s\n", item.Label, item.MonthlyAmount.StringFixed(2), item.PromoLabel)
		}
	}
	fmt.Fprintf(tw, "  Projected savings\t%s %s\t\n", temporary.Currency, temporary.Total.StringFixed(2))
	fmt.Fprintln(tw, "\t\t")

	fmt.Fprintln(tw, "PRICE EVOLUTION\t\t")
	for _, point := range temporary.Progression {
		fmt.Fprintf(tw, "  from month %d\t%s %s/month\t\n", point.MonthsElapsed, temporary.Currency, point.Price.StringFixed(2))
	}

	return tw.Flush()
}
