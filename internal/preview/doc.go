// Package preview serves the component catalog over HTTP.
//
// Each preview is reachable at /c/{name}. The page is rendered on the
// server, then the browser runtime at /_vangoui/client.js opens a live
// session on /_live/{name} and takes over the root element:
//
//	srv := preview.NewServer(preview.Config{
//		Catalog: catalog.New(),
//		Addr:    "localhost:3000",
//		Metrics: middleware.NewMetrics(),
//	})
//	err := srv.Serve(ctx)
//
// Serve returns after ctx is cancelled and every session has ended.
package preview
