// internal/api/pages/handlers.go
package pages

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/a-h/templ"

	"github.com/hightidestudios/website/internal/catalog"
	"github.com/hightidestudios/website/internal/config"
	pageviews "github.com/hightidestudios/website/internal/templates/components/pages"
	"github.com/hightidestudios/website/internal/templates/layouts"
)

// Handlers serves the static marketing pages.
type Handlers struct {
	catalog *catalog.Catalog
	studio  config.StudioConfig
}

func New(cat *catalog.Catalog, studio config.StudioConfig) *Handlers {
	return &Handlers{catalog: cat, studio: studio}
}

// HandleHome serves "/" and doubles as the 404 handler for unknown
// paths, matching how the root pattern on ServeMux behaves.
func (h *Handlers) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		h.HandleNotFound(w, r)
		return
	}
	h.renderPage(w, r, layouts.Meta{
		Title:       h.studio.BusinessName + " — Podcast & Video Production",
		Description: "Broadcast-ready podcast and video studio in Greystones, Wicklow. Professional packages from €299.",
	}, pageviews.Home(h.studio, h.catalog.All()))
}

func (h *Handlers) HandlePackages(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, layouts.Meta{
		Title:       "Packages | " + h.studio.BusinessName,
		Description: "Podcast production packages with studio time, engineering, and post-production included.",
	}, pageviews.Packages(h.catalog.All()))
}

func (h *Handlers) HandleContact(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, layouts.Meta{
		Title:       "Contact | " + h.studio.BusinessName,
		Description: "Get in touch with " + h.studio.BusinessName + " about sessions and packages.",
	}, pageviews.Contact(h.studio))
}

func (h *Handlers) HandlePrivacy(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, layouts.Meta{
		Title:       "Privacy Policy | " + h.studio.BusinessName,
		Description: "How " + h.studio.BusinessName + " collects, uses, and protects your information.",
	}, pageviews.Privacy(h.studio))
}

func (h *Handlers) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	h.renderPage(w, r, layouts.Meta{
		Title: "Page Not Found | " + h.studio.BusinessName,
	}, pageviews.NotFound())
}

func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, meta layouts.Meta, content templ.Component) {
	if err := layouts.Base(meta, h.studio, content).Render(r.Context(), w); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Failed to render page")
	}
}
