package cmd

import (
	"fmt"

	catalogtoml "github.com/bnema/moodline/internal/adapters/catalog/toml"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the response and resource catalog",
	}

	cmd.AddCommand(newCatalogCheckCmd(app), newCatalogExportCmd(app))

	return cmd
}

func newCatalogCheckCmd(app *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a catalog file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := app.catalog
			source := "built-in"
			if app.cfg.CatalogPath != "" {
				source = app.cfg.CatalogPath
			}
			if path != "" {
				loaded, err := catalogtoml.Load(path)
				if err != nil {
					return err
				}
				catalog = loaded
				source = path
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"catalog %s: ok\nresponse emotions: %d\nresource emotions: %d\ndefault resources: %d\n",
				source,
				len(catalog.Responses.Emotions()),
				len(catalog.Resources.Emotions()),
				len(catalog.Resources.Defaults()),
			)
			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Catalog file to check (default: the active catalog)")

	return cmd
}

func newCatalogExportCmd(app *app) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path != "" {
				if err := catalogtoml.Write(path, app.catalog); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "catalog written to %s\n", path)
				return err
			}

			data, err := catalogtoml.Encode(app.catalog)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Destination file (default: stdout)")

	return cmd
}
