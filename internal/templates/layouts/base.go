// Package layouts holds the shared page chrome.
package layouts

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/hightidestudios/website/internal/config"
)

// Meta is the per-page head data injected into the base layout.
type Meta struct {
	Title       string
	Description string
}

// Base wraps page content with the site chrome: head, navigation,
// footer, and the HTMX runtime.
func Base(meta Meta, studio config.StudioConfig, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/>`); err != nil {
			return err
		}
		fmt.Fprintf(w, `<title>%s</title>`, html.EscapeString(meta.Title))
		if meta.Description != "" {
			fmt.Fprintf(w, `<meta name="description" content="%s"/>`, html.EscapeString(meta.Description))
		}
		if _, err := io.WriteString(w, `<link rel="stylesheet" href="/static/css/site.css"/><script src="/static/js/htmx.min.js" defer></script></head><body>`); err != nil {
			return err
		}

		if err := nav(studio).Render(ctx, w); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<main id="main">`); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</main>`); err != nil {
			return err
		}

		if err := footer(studio).Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func nav(studio config.StudioConfig) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		fmt.Fprintf(w, `<header class="site-nav"><a class="brand" href="/">%s</a><nav>`, html.EscapeString(studio.BusinessName))
		links := []struct{ href, label string }{
			{"/", "Home"},
			{"/packages", "Packages"},
			{"/book", "Book a Session"},
			{"/contact", "Contact"},
		}
		for _, link := range links {
			fmt.Fprintf(w, `<a href="%s">%s</a>`, link.href, html.EscapeString(link.label))
		}
		_, err := io.WriteString(w, `</nav></header>`)
		return err
	})
}

func footer(studio config.StudioConfig) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<footer class="site-footer">`); err != nil {
			return err
		}
		fmt.Fprintf(w, `<p>%s — %s</p>`, html.EscapeString(studio.BusinessName), html.EscapeString(studio.Address))
		fmt.Fprintf(w, `<p><a href="mailto:%s">%s</a> · <a href="tel:%s">%s</a></p>`,
			html.EscapeString(studio.ContactEmail), html.EscapeString(studio.ContactEmail),
			html.EscapeString(studio.ContactPhone), html.EscapeString(studio.ContactPhone))
		if studio.Instagram != "" || studio.YouTube != "" {
			if _, err := io.WriteString(w, `<p>`); err != nil {
				return err
			}
			if studio.Instagram != "" {
				fmt.Fprintf(w, `<a href="%s" rel="noopener">Instagram</a> `, html.EscapeString(studio.Instagram))
			}
			if studio.YouTube != "" {
				fmt.Fprintf(w, `<a href="%s" rel="noopener">YouTube</a>`, html.EscapeString(studio.YouTube))
			}
			if _, err := io.WriteString(w, `</p>`); err != nil {
				return err
			}
		}
		fmt.Fprintf(w, `<p><a href="/privacy">Privacy</a></p>`)
		_, err := io.WriteString(w, `</footer>`)
		return err
	})
}
