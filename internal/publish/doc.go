// Package publish writes the component catalog as static HTML and
// uploads the result to S3-compatible object storage.
//
// Export renders every preview without the live runtime, so the pages
// work from any static host:
//
//	files, err := publish.Export(ctx, catalog.New(), "dist")
//
//	p := publish.NewPublisher(publish.NewS3Client(publish.ClientOptions{Region: "us-east-1"}),
//		"my-bucket", publish.WithPrefix("ui"))
//	keys, err := p.Publish(ctx, "dist")
//
// Failures are reported as E150 (export) and E151 (publish).
package publish
