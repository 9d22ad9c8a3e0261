package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gallery-app/internal/domain/catalog"

	"github.com/spf13/cobra"
)

type catalogOptions struct {
	query        string
	medium       string
	price        string
	availability string
	featured     bool
}

var catalogOpts catalogOptions

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the painting catalog as JSON",
	Long: `Prints the seeded catalog, narrowed the same way the gallery page does it.

Example:
  gallery catalog --medium acrylique --availability available`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printCatalog(cmd.OutOrStdout(), catalog.NewSeeded(), catalogOpts)
	},
}

func init() {
	f := catalogCmd.Flags()
	f.StringVarP(&catalogOpts.query, "q", "q", "", "search title, description and medium")
	f.StringVar(&catalogOpts.medium, "medium", catalog.All, "medium, or all")
	f.StringVar(&catalogOpts.price, "price", string(catalog.PriceAll), "all | under1000 | 1000to2000 | over2000")
	f.StringVar(&catalogOpts.availability, "availability", string(catalog.AvailabilityAll), "all | available | sold")
	f.BoolVar(&catalogOpts.featured, "featured", false, "only featured paintings")
}

func printCatalog(w io.Writer, cat catalog.Catalog, opts catalogOptions) error {
	crit := catalog.Criteria{
		Query:        opts.query,
		Medium:       opts.medium,
		PriceRange:   catalog.PriceRange(opts.price),
		Availability: catalog.Availability(opts.availability),
	}.Normalize()
	if err := crit.Validate(); err != nil {
		return err
	}

	base := cat.All()
	if opts.featured {
		base = cat.Featured()
	}

	out, err := json.MarshalIndent(catalog.Apply(base, crit), "", "  ")
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
