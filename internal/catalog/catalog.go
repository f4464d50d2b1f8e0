package catalog

import (
	"encoding/json"
	"sort"

	"github.com/vango-dev/vangoui/pkg/dom"
	"github.com/vango-dev/vangoui/pkg/live"
	"github.com/vango-dev/vangoui/pkg/render"
	"github.com/vango-dev/vangoui/pkg/toast"
	"github.com/vango-dev/vangoui/pkg/vdom"
)

// RootID is the element live sessions render into.
const RootID = "vangoui-root"

// TailwindScript styles preview pages; the components only emit class
// names.
const TailwindScript = "https://cdn.tailwindcss.com"

// ClientPath is where the preview server serves the live runtime.
const ClientPath = "/_vangoui/client.js"

// Env is what a preview needs from the page it is mounted in.
type Env struct {
	// Host mirrors the browser for geometry-aware components.
	Host *dom.Host

	// Toast are the options for toast providers created by the preview.
	Toast []toast.Option

	// Scheduler runs delayed work on the session loop. Static renders
	// leave it nil, which makes delays and exit animations immediate.
	Scheduler toast.Scheduler
}

// Preview is one component's default composition.
type Preview struct {
	Name        string
	Title       string
	Description string

	// Build creates a fresh component tree bound to env.
	Build func(env Env) vdom.Component
}

// Catalog holds the component previews, ordered by name.
type Catalog struct {
	previews  []Preview
	byName    map[string]int
	toastOpts []toast.Option
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithToastOptions sets provider options applied before the
// session-specific ones, typically from vangoui.json.
func WithToastOptions(opts ...toast.Option) Option {
	return func(c *Catalog) {
		c.toastOpts = append(c.toastOpts, opts...)
	}
}

// WithPreviews replaces the built-in previews.
func WithPreviews(previews ...Preview) Option {
	return func(c *Catalog) {
		c.previews = previews
	}
}

// New creates a catalog of the built-in previews.
func New(opts ...Option) *Catalog {
	c := &Catalog{previews: builtin()}
	for _, opt := range opts {
		opt(c)
	}
	sort.Slice(c.previews, func(i, j int) bool { return c.previews[i].Name < c.previews[j].Name })
	c.byName = make(map[string]int, len(c.previews))
	for i, p := range c.previews {
		c.byName[p.Name] = i
	}
	return c
}

// Previews returns all previews in name order.
func (c *Catalog) Previews() []Preview {
	return append([]Preview(nil), c.previews...)
}

// Get returns the preview with the given name.
func (c *Catalog) Get(name string) (Preview, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Preview{}, false
	}
	return c.previews[i], true
}

// Mount resolves a preview for a live session. It satisfies live.Lookup.
func (c *Catalog) Mount(name string) (live.MountFunc, bool) {
	p, ok := c.Get(name)
	if !ok {
		return nil, false
	}
	return func(s *live.Session) vdom.Component {
		env := Env{
			Host:      s.Host(),
			Toast:     append(append([]toast.Option(nil), c.toastOpts...), s.ToastOptions()...),
			Scheduler: s.Scheduler(),
		}
		return &frame{preview: p, body: p.Build(env)}
	}, true
}

// Static builds a preview for a one-shot render with a detached host.
func (c *Catalog) Static(name string, viewport dom.Size) (vdom.Component, bool) {
	p, ok := c.Get(name)
	if !ok {
		return nil, false
	}
	env := Env{
		Host:  dom.NewHost(dom.WithViewport(viewport)),
		Toast: append([]toast.Option(nil), c.toastOpts...),
	}
	return &frame{preview: p, body: p.Build(env)}, true
}

// Page describes the HTML document for a preview. When liveURL is empty
// the page is static: no runtime script is included.
func (c *Catalog) Page(p Preview, body *vdom.VNode, liveURL string) render.PageData {
	page := render.PageData{
		Title:   p.Title + " · vangoui",
		Body:    body,
		RootID:  RootID,
		Scripts: []render.ScriptTag{{Src: TailwindScript}},
	}
	if liveURL != "" {
		page.Scripts = append(page.Scripts,
			render.ScriptTag{Inline: "window.vangoui = {live: " + jsString(liveURL) + "};"},
			render.ScriptTag{Src: ClientPath, Defer: true},
		)
	}
	return page
}

// Index renders the list of previews, linking each through href.
func (c *Catalog) Index(href func(name string) string) *vdom.VNode {
	return vdom.Main(
		vdom.Class("mx-auto max-w-3xl p-8"),
		vdom.H1(vdom.Class("text-2xl font-semibold mb-6"), vdom.Text("vangoui components")),
		vdom.Ul(
			vdom.Class("grid gap-3 sm:grid-cols-2"),
			vdom.Range(c.previews, func(p Preview, _ int) *vdom.VNode {
				return vdom.Li(
					vdom.Key(p.Name),
					vdom.A(
						vdom.Href(href(p.Name)),
						vdom.Class("block rounded-lg border p-4 hover:bg-muted"),
						vdom.Div(vdom.Class("font-medium"), vdom.Text(p.Title)),
						vdom.P(vdom.Class("text-sm text-muted-foreground"), vdom.Text(p.Description)),
					),
				)
			}),
		),
	)
}

// frame is the root of every preview page.
type frame struct {
	preview Preview
	body    vdom.Component
}

func (f *frame) Render() *vdom.VNode {
	return vdom.Div(
		vdom.Class("mx-auto max-w-3xl p-8 space-y-6"),
		vdom.Header(
			vdom.H1(vdom.Class("text-2xl font-semibold"), vdom.Text(f.preview.Title)),
			vdom.P(vdom.Class("text-muted-foreground"), vdom.Text(f.preview.Description)),
		),
		vdom.Section(vdom.Data("preview", f.preview.Name), f.body.Render()),
	)
}

// Dispose releases listeners and timers held by the preview.
func (f *frame) Dispose() {
	if d, ok := f.body.(interface{ Dispose() }); ok {
		d.Dispose()
	}
}

// jsString quotes s for an inline script. json.Marshal escapes '<', so
// the value cannot close the script element.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
