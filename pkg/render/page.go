package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/vangoui/pkg/vdom"
)

// PageData contains all data needed to render a complete HTML page.
type PageData struct {
	// Body is the root VNode for the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// Styles contains inline CSS.
	Styles []string

	// Scripts are emitted at the end of the body in order.
	Scripts []ScriptTag

	// RootID wraps Body in <div id="RootID"> when set. Live sessions
	// replace the contents of this element.
	RootID string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string // src attribute
	Defer  bool   // defer attribute
	Module bool   // type="module"
	Inline string // inline script content
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(lang)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<meta charset=\"utf-8\">\n<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, href := range page.StyleSheets {
		if _, err := fmt.Fprintf(w, "<link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href)); err != nil {
			return err
		}
	}
	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "<style>%s</style>\n", style); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</head>\n<body>\n"); err != nil {
		return err
	}

	if page.RootID != "" {
		if _, err := fmt.Fprintf(w, "<div id=\"%s\">", escapeAttr(page.RootID)); err != nil {
			return err
		}
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	if page.RootID != "" {
		if _, err := io.WriteString(w, "</div>"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	for _, script := range page.Scripts {
		if err := renderScriptTag(w, script); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

func renderScriptTag(w io.Writer, s ScriptTag) error {
	open := "<script"
	if s.Module {
		open += ` type="module"`
	}
	if s.Src != "" {
		open += fmt.Sprintf(` src="%s"`, escapeAttr(s.Src))
	}
	if s.Defer {
		open += " defer"
	}
	_, err := fmt.Fprintf(w, "%s>%s</script>\n", open, s.Inline)
	return err
}
