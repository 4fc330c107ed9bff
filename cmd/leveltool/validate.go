package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunargale/shelfsort/content"
)

// validationResult holds the outcome for both output formats
type validationResult struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// newValidateCommand creates the validate command
func newValidateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "validate <level.yaml>",
		Short:         "Validate a level definition against the product set",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(opts, args[0], cmd)
		},
	}
}

func runValidate(opts *rootOptions, path string, cmd *cobra.Command) error {
	products, err := content.LoadProducts(opts.ProductsPath)
	if err != nil {
		return err
	}

	res := validationResult{Valid: true}
	if _, err := content.LoadLevel(path, products); err != nil {
		res = validationResult{Valid: false, Error: err.Error()}
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else if res.Valid {
		fmt.Fprintf(out, "%s: ok\n", path)
	} else {
		fmt.Fprintf(out, "%s: %s\n", path, res.Error)
	}

	if !res.Valid {
		return errors.New("validation failed")
	}
	return nil
}
