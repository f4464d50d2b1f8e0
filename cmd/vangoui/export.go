package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/catalog"
	"github.com/vango-dev/vangoui/internal/config"
	"github.com/vango-dev/vangoui/internal/publish"
)

func exportCmd(configPath *string) *cobra.Command {
	var (
		output      string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as static HTML",
		Long: `Render every component preview to a static page.

The pages carry no live runtime, so they can be served from any
static host. The output directory defaults to export.output in
vangoui.json.

Examples:
  vangoui export
  vangoui export --out=site`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if output != "" {
				cfg.Export.Output = output
			}
			_, err = runExport(cmd, cfg, concurrency)
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "Output directory (default from vangoui.json)")
	cmd.Flags().IntVarP(&concurrency, "jobs", "j", 4, "Pages rendered in parallel")

	return cmd
}

// runExport writes the catalog to the configured output directory and
// returns that directory.
func runExport(cmd *cobra.Command, cfg *config.Config, concurrency int) (string, error) {
	dir := cfg.OutputPath()
	files, err := publish.Export(cmd.Context(),
		catalog.New(catalog.WithToastOptions(cfg.ToastOptions()...)),
		dir,
		publish.WithConcurrency(concurrency),
		publish.WithLogger(cfg.Logger(os.Stderr)),
	)
	if err != nil {
		return "", err
	}
	success("Exported %d pages to %s", len(files), dir)
	return dir, nil
}
