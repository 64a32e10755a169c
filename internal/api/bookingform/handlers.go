// internal/api/bookingform/handlers.go
package bookingform

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"

	"github.com/hightidestudios/website/internal/api/htmx"
	"github.com/hightidestudios/website/internal/booking"
	"github.com/hightidestudios/website/internal/catalog"
	"github.com/hightidestudios/website/internal/config"
	"github.com/hightidestudios/website/internal/db"
	"github.com/hightidestudios/website/internal/observability"
	bookingview "github.com/hightidestudios/website/internal/templates/components/bookingform"
	"github.com/hightidestudios/website/internal/templates/layouts"
)

const sessionCookieName = "booking_session"

// Handlers serves the booking page and its HTMX partial endpoints. One
// instance is shared across requests; all mutable state lives in the
// session store.
type Handlers struct {
	sessions *booking.Store
	catalog  *catalog.Catalog
	relay    booking.Relay
	queries  *db.Queries
	studio   config.StudioConfig
}

func New(sessions *booking.Store, cat *catalog.Catalog, relay booking.Relay, queries *db.Queries, studio config.StudioConfig) *Handlers {
	return &Handlers{
		sessions: sessions,
		catalog:  cat,
		relay:    relay,
		queries:  queries,
		studio:   studio,
	}
}

// GET /book
func (h *Handlers) HandleBookingPage(w http.ResponseWriter, r *http.Request) {
	_, session := h.sessionFor(w, r, r.URL.Query().Get("package"))

	view := bookingview.NewView(session, h.catalog.All(), h.studio)
	content := bookingview.Page(view)
	if session.Status() == booking.StatusConfirmed {
		content = bookingview.Confirmation(view)
	}

	// HTMX navigation swaps the main region; skip the page chrome.
	if htmx.IsRequest(r) {
		render(w, r, content)
		return
	}

	meta := layouts.Meta{
		Title:       "Book a Session | " + h.studio.BusinessName,
		Description: "Select your preferred dates and secure your recording session with a 10% deposit.",
	}
	if err := layouts.Base(meta, h.studio, content).Render(r.Context(), w); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to render booking page")
	}
}

// POST /api/v1/booking/toggle?day=2006-01-02
func (h *Handlers) HandleToggleDate(w http.ResponseWriter, r *http.Request) {
	h.handleDayIntent(w, r, func(day booking.Day) booking.Intent {
		return booking.ToggleDate{Day: day}
	})
}

// POST /api/v1/booking/remove?day=2006-01-02
func (h *Handlers) HandleRemoveDate(w http.ResponseWriter, r *http.Request) {
	h.handleDayIntent(w, r, func(day booking.Day) booking.Intent {
		return booking.RemoveDate{Day: day}
	})
}

// POST /api/v1/booking/month?delta=-1
func (h *Handlers) HandleShiftMonth(w http.ResponseWriter, r *http.Request) {
	delta, err := strconv.Atoi(r.URL.Query().Get("delta"))
	if err != nil {
		http.Error(w, "Invalid month delta", http.StatusBadRequest)
		return
	}

	_, session := h.sessionFor(w, r, "")
	if err := session.Dispatch(booking.ShiftMonth{Delta: delta}); err != nil {
		log.Ctx(r.Context()).Debug().Err(err).Msg("Month shift rejected")
	}
	h.renderCalendar(w, r, session)
}

// POST /api/v1/booking/submit
func (h *Handlers) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	key, session := h.sessionFor(w, r, "")

	intents := []booking.Intent{
		booking.SetField{Field: "name", Value: r.PostFormValue("name")},
		booking.SetField{Field: "email", Value: r.PostFormValue("email")},
		booking.SetField{Field: "phone", Value: r.PostFormValue("phone")},
		booking.SetField{Field: "company", Value: r.PostFormValue("company")},
		booking.SetField{Field: "notes", Value: r.PostFormValue("notes")},
		booking.SetPackage{ID: r.PostFormValue("package")},
		booking.SetAgreement{Agreed: r.PostFormValue("agree_deposit") == "true"},
	}
	for _, intent := range intents {
		if err := session.Dispatch(intent); err != nil {
			h.renderBookingView(w, r, session)
			return
		}
	}

	err := session.Submit(r.Context(), h.relay)
	switch {
	case err == nil:
		observability.BookingSubmissions.WithLabelValues(observability.OutcomeConfirmed).Inc()
		view := bookingview.NewView(session, h.catalog.All(), h.studio)
		h.recordRequest(r, view)
		h.sessions.Drop(key)
		observability.LiveBookingSessions.Set(float64(h.sessions.Len()))
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
		render(w, r, bookingview.Confirmation(view))

	case errors.Is(err, booking.ErrInvalidDraft):
		observability.BookingSubmissions.WithLabelValues(observability.OutcomeInvalid).Inc()
		h.renderBookingView(w, r, session)

	case errors.Is(err, booking.ErrSubmitInFlight), errors.Is(err, booking.ErrAlreadyConfirmed):
		h.renderBookingView(w, r, session)

	default:
		observability.BookingSubmissions.WithLabelValues(observability.OutcomeFailed).Inc()
		logger.Error().Err(err).Msg("Booking submission failed")
		h.renderBookingView(w, r, session)
	}
}

// recordRequest appends a confirmed submission to the audit log. Failure
// here never surfaces to the visitor; the email already went out.
func (h *Handlers) recordRequest(r *http.Request, view bookingview.View) {
	if h.queries == nil {
		return
	}

	pkg, _ := view.SelectedPackage()
	params := db.InsertBookingRequestParams{
		Name:         strings.TrimSpace(view.Draft.Name),
		Email:        strings.TrimSpace(view.Draft.Email),
		Phone:        strings.TrimSpace(view.Draft.Phone),
		Company:      strings.TrimSpace(view.Draft.Company),
		PackageID:    pkg.ID,
		PackageLabel: pkg.Label(),
		Notes:        strings.TrimSpace(view.Draft.Notes),
	}
	if view.Quote != nil {
		params.DepositDisplay = view.Quote.DepositDisplay()
		params.BalanceDisplay = view.Quote.BalanceDisplay()
	}
	keys := make([]string, 0, len(view.Draft.SelectedDates))
	for _, day := range view.Draft.SelectedDates {
		keys = append(keys, day.Key())
	}
	params.PreferredDates = strings.Join(keys, ", ")

	if _, err := h.queries.InsertBookingRequest(r.Context(), params); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to record booking request")
	}
}

func (h *Handlers) handleDayIntent(w http.ResponseWriter, r *http.Request, intent func(booking.Day) booking.Intent) {
	day, err := booking.ParseDay(r.URL.Query().Get("day"))
	if err != nil {
		http.Error(w, "Invalid day", http.StatusBadRequest)
		return
	}

	_, session := h.sessionFor(w, r, "")
	if err := session.Dispatch(intent(day)); err != nil {
		log.Ctx(r.Context()).Debug().Err(err).Str("day", day.Key()).Msg("Date intent rejected")
	}
	h.renderCalendar(w, r, session)
}

// sessionFor resolves the visitor's session from the cookie, creating a
// fresh one when the cookie is missing or the session was pruned.
func (h *Handlers) sessionFor(w http.ResponseWriter, r *http.Request, seedPackage string) (string, *booking.Session) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if session, ok := h.sessions.Get(cookie.Value); ok {
			return cookie.Value, session
		}
	}

	key, session := h.sessions.Create(seedPackage)
	observability.LiveBookingSessions.Set(float64(h.sessions.Len()))
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    key,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return key, session
}

func (h *Handlers) renderCalendar(w http.ResponseWriter, r *http.Request, session *booking.Session) {
	view := bookingview.NewView(session, h.catalog.All(), h.studio)
	render(w, r, bookingview.CalendarCard(view))
}

func (h *Handlers) renderBookingView(w http.ResponseWriter, r *http.Request, session *booking.Session) {
	view := bookingview.NewView(session, h.catalog.All(), h.studio)
	if session.Status() == booking.StatusConfirmed {
		render(w, r, bookingview.Confirmation(view))
		return
	}
	render(w, r, bookingview.Page(view))
}

func render(w http.ResponseWriter, r *http.Request, component templ.Component) {
	if err := component.Render(r.Context(), w); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to render component")
	}
}
