package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// rootOptions holds global flags for all subcommands
type rootOptions struct {
	ProductsPath string
	Format       string // "text" | "json"
}

var validFormats = []string{"text", "json"}

// newRootCommand creates the leveltool root command
func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "leveltool",
		Short: "Authoring checks for shelf level definitions",
		Long:  "Validates and inspects level and product definition files before they ship with the game.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ProductsPath, "products", "assets/products.yaml", "product definition file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(newValidateCommand(opts))
	cmd.AddCommand(newInspectCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range validFormats {
		if f == format {
			return true
		}
	}
	return false
}
