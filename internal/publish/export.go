package publish

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/vangoui/internal/catalog"
	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/render"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// IndexFile is the catalog landing page inside an export.
const IndexFile = "index.html"

// PagePath returns the export-relative path of a preview page.
func PagePath(name string) string {
	return filepath.Join("c", name+".html")
}

// ExportOption configures Export.
type ExportOption func(*exportConfig)

type exportConfig struct {
	viewport    dom.Size
	concurrency int
	logger      *slog.Logger
}

func defaultExportConfig() exportConfig {
	return exportConfig{
		viewport:    dom.Size{Width: 1280, Height: 800},
		concurrency: 4,
		logger:      slog.Default(),
	}
}

// WithViewport sets the viewport previews are rendered against.
func WithViewport(size dom.Size) ExportOption {
	return func(c *exportConfig) {
		c.viewport = size
	}
}

// WithConcurrency bounds the number of pages rendered at once.
func WithConcurrency(n int) ExportOption {
	return func(c *exportConfig) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(logger *slog.Logger) ExportOption {
	return func(c *exportConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Export renders every preview as a static page under dir, plus an index
// linking them. Pages carry no runtime script and no hids. It returns the
// written paths relative to dir, sorted.
func Export(ctx context.Context, cat *catalog.Catalog, dir string, opts ...ExportOption) ([]string, error) {
	cfg := defaultExportConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := os.MkdirAll(filepath.Join(dir, "c"), 0o755); err != nil {
		return nil, exportErr(dir, err)
	}

	var (
		mu      sync.Mutex
		written []string
	)
	write := func(rel string, page render.PageData) error {
		var buf bytes.Buffer
		r := render.NewRenderer(render.RendererConfig{OmitHIDs: true})
		if err := r.RenderPage(&buf, page); err != nil {
			return exportErr(rel, err)
		}
		if err := os.WriteFile(filepath.Join(dir, rel), buf.Bytes(), 0o644); err != nil {
			return exportErr(rel, err)
		}
		mu.Lock()
		written = append(written, rel)
		mu.Unlock()
		cfg.logger.Debug("exported page", "path", rel, "bytes", buf.Len())
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.concurrency)

	g.Go(func() error {
		body := cat.Index(func(name string) string { return filepath.ToSlash(PagePath(name)) })
		return write(IndexFile, render.PageData{
			Title:   "vangoui components",
			Body:    body,
			Scripts: []render.ScriptTag{{Src: catalog.TailwindScript}},
		})
	})

	for _, p := range cat.Previews() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return exportErr(p.Name, err)
			}
			root, _ := cat.Static(p.Name, cfg.viewport)
			body := root.Render()
			if d, ok := root.(interface{ Dispose() }); ok {
				d.Dispose()
			}
			page := cat.Page(p, body, "")
			page.Body.Children = append(page.Body.Children, backLink())
			return write(PagePath(p.Name), page)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Strings(written)
	cfg.logger.Info("export complete", "dir", dir, "pages", len(written))
	return written, nil
}

func backLink() *vdom.VNode {
	return vdom.Div(
		vdom.Class("mx-auto max-w-3xl px-8 pb-8"),
		vdom.A(vdom.Href("../"+IndexFile), vdom.Class("text-sm text-muted-foreground hover:underline"), vdom.Text("All components")),
	)
}

func exportErr(path string, err error) error {
	if errors.Code(err) != "" {
		return err
	}
	return errors.New("E150").WithDetailf("%s: %v", path, err).Wrap(err)
}
