package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/publish"
)

func publishCmd(configPath *string) *cobra.Command {
	var (
		bucket     string
		prefix     string
		region     string
		endpoint   string
		skipExport bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Export the catalog and upload it to S3",
		Long: `Export the catalog and upload every file to an S3 bucket.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
and AWS_SESSION_TOKEN. Use --endpoint for S3-compatible stores.

Examples:
  vangoui publish --bucket=design-system
  vangoui publish --bucket=assets --prefix=ui/v2 --region=eu-west-1
  vangoui publish --endpoint=http://localhost:9000 --bucket=dev`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if prefix != "" {
				cfg.Publish.Prefix = prefix
			}
			if region != "" {
				cfg.Publish.Region = region
			}

			dir := cfg.OutputPath()
			if !skipExport {
				if dir, err = runExport(cmd, cfg, 4); err != nil {
					return err
				}
			}

			client := publish.NewS3Client(publish.ClientOptions{Region: cfg.Publish.Region, Endpoint: endpoint})
			p := publish.NewPublisher(client, cfg.Publish.Bucket,
				publish.WithPrefix(cfg.Publish.Prefix),
				publish.WithPublishLogger(cfg.Logger(os.Stderr)),
			)
			keys, err := p.Publish(cmd.Context(), dir)
			if err != nil {
				return err
			}
			success("Published %d objects to s3://%s/%s", len(keys), cfg.Publish.Bucket, p.Key(""))
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination bucket (default from vangoui.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from vangoui.json)")
	cmd.Flags().StringVar(&region, "region", "", "Bucket region (default from vangoui.json)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().BoolVar(&skipExport, "skip-export", false, "Upload the existing output directory as is")

	return cmd
}
