// Package cmd - catalog command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bundle-cost/adapters/catalogfile"
)

// catalogCmd groups catalog tooling
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate catalog documents",
}

// catalogValidateCmd validates a catalog document eagerly
var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a catalog document",
	Long: `Load a catalog document and run eager shape validation: required
fields, duplicate ids, discount rules referencing unknown products.

The pricing engine itself validates lazily; this command exists so
catalog authors can catch mistakes before shipping a document.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalogfile.Load(args[0])
		if err != nil {
			return err
		}
		if err := catalogfile.Validate(cat); err != nil {
			return err
		}
		fmt.Printf("catalog OK: %d products\n", len(cat.Products))
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}
