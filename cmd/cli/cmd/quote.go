// Package cmd - quote command
package cmd

import (
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"bundle-cost/adapters/catalogfile"
	"bundle-cost/adapters/selectionfile"
	"bundle-cost/core/output"
	"bundle-cost/core/pricing"
	"bundle-cost/core/types"
	"bundle-cost/internal/config"
	"bundle-cost/internal/errors"
	"bundle-cost/internal/logging"
)

var (
	catalogPath   string
	selectionPath string
	outputFormat  string
	showLines     bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Compute the priced total for a selection",
	Long: `Evaluate a selection scenario against a catalog and print the
monthly total, the discount decomposition and the per-item breakdown.

Examples:
  bundle-cost quote --catalog catalog.json --selection selection.yaml
  bundle-cost quote --catalog catalog.hcl --selection selection.json --format json`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "catalog document (.json or .hcl)")
	quoteCmd.Flags().StringVarP(&selectionPath, "selection", "s", "", "selection scenario (.json or .yaml)")
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().BoolVarP(&showLines, "lines", "l", true, "show per-item breakdown")
}

func runQuote(cmd *cobra.Command, args []string) error {
	quote, _, _, err := computeQuote()
	if err != nil {
		return err
	}

	cfg := config.Get()
	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.New(format, showLines && cfg.Output.ShowLines)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, quote)
}

// computeQuote loads the catalog and selection and prices them. Metadata
// is stamped here, after computation, so the engine result itself stays a
// pure function of its inputs.
func computeQuote() (*types.Quote, *pricing.Engine, *types.Selection, error) {
	cfg := config.Get()

	path := catalogPath
	if path == "" {
		path = cfg.Catalog.Path
	}
	cat, err := catalogfile.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	if cfg.Catalog.ValidateOnLoad {
		if err := catalogfile.Validate(cat); err != nil {
			return nil, nil, nil, err
		}
	}
	if cat.Currency == "" {
		cat.Currency = cfg.Catalog.DefaultCurrency
	}

	if selectionPath == "" {
		return nil, nil, nil, errors.Input("a selection scenario is required (--selection)")
	}
	sel, err := selectionfile.Load(selectionPath)
	if err != nil {
		return nil, nil, nil, err
	}

	logging.Debug("pricing selection")
	engine := pricing.NewEngine(cat)
	quote, err := engine.ComputeTotals(sel)
	if err != nil {
		return nil, nil, nil, err
	}

	quote.Metadata = types.QuoteMetadata{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
	}
	return quote, engine, sel, nil
}
