// Package output produces human and machine-readable quote renderings.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"bundle-cost/core/types"
	"bundle-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given quote
	Render(w io.Writer, quote *types.Quote) error
}

// New returns the formatter for a format name
func New(format Format, showLines bool) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &CLIFormatter{ShowLines: showLines}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown output format: %s", format)
	}
}

// CLIFormatter renders a quote as an aligned table
type CLIFormatter struct {
	// ShowLines includes the per-item breakdown
	ShowLines bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the table
func (f *CLIFormatter) Render(w io.Writer, quote *types.Quote) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if f.ShowLines {
		fmt.Fprintln(tw, "LINE\tLIST\tPERMANENT\tTEMPORARY\tFINAL")
		for _, line := range quote.Lines {
			fmt.Fprintf(tw, "%s\t%s\t-%s\t-%s\t%s\n",
				line.Label,
				money(quote.Currency, line.ListPrice),
				line.PermanentDiscount.StringFixed(2),
				line.TemporaryDiscount.StringFixed(2),
				money(quote.Currency, line.FinalPrice))
		}
		fmt.Fprintln(tw, "\t\t\t\t")
	}

	if quote.TotalDiscount().IsPositive() {
		fmt.Fprintf(tw, "Original total\t%s\n", money(quote.Currency, quote.OriginalTotal()))
		fmt.Fprintf(tw, "Your advantage\t%s/month\n", money(quote.Currency, quote.TotalDiscount()))
	}
	fmt.Fprintf(tw, "Monthly total\t%s\n", money(quote.Currency, quote.Total))

	return tw.Flush()
}

// JSONFormatter renders a quote as indented JSON
type JSONFormatter struct{}

// Format returns the format type
func (f *JSONFormatter) Format() Format {
	return FormatJSON
}

// Render writes the JSON document
func (f *JSONFormatter) Render(w io.Writer, quote *types.Quote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(quote)
}

func money(c types.Currency, amount interface{ StringFixed(int32) string }) string {
	symbol := "€"
	switch c {
	case types.CurrencyUSD:
		symbol = "$"
	case types.CurrencyGBP:
		symbol = "£"
	}
	return symbol + " " + amount.StringFixed(2)
}
