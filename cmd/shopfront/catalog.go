package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/shopfront/internal/adapter/driving/render"
	"github.com/ericfisherdev/shopfront/internal/application"
	"github.com/ericfisherdev/shopfront/internal/config"
)

const (
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

func newCatalogCmd() *cobra.Command {
	var (
		format string
		query  string
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the product catalog as Markdown or HTML",
		Long: `Print the products shown on the home screen. The output can be
filtered with --query, which matches product names case-insensitively.`,
		Example: `  shopfront catalog
  shopfront catalog --format html --query "product 1"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatMarkdown && format != formatHTML {
				return fmt.Errorf("--format must be %q or %q, got %q", formatMarkdown, formatHTML, format)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger, closeLog, err := newLogger(cfg, os.Stderr)
			if err != nil {
				return err
			}
			defer closeLog()

			source, err := newProductSource(cfg)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			products, err := application.NewCatalogService(source).Search(ctx, query)
			if err != nil {
				return err
			}
			logger.Debug("catalog rendered", "format", format, "query", query, "products", len(products))

			out := render.CatalogMarkdown("Online Store", products)
			if format == formatHTML {
				out = render.CatalogHTML("Online Store", products)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", formatMarkdown, "Output format: markdown or html")
	cmd.Flags().StringVar(&query, "query", "", "Only include products whose name contains this text")

	return cmd
}
