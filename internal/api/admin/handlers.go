// internal/api/admin/handlers.go
package admin

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/hightidestudios/website/internal/availability"
	"github.com/hightidestudios/website/internal/booking"
)

const passphraseHeader = "X-Admin-Passphrase"

// Handlers exposes the blocked-dates management endpoints. Access is
// gated by a bcrypt passphrase hash; with no hash configured the whole
// surface is disabled.
type Handlers struct {
	blocked        *availability.Store
	passphraseHash string
}

func New(blocked *availability.Store, passphraseHash string) *Handlers {
	return &Handlers{blocked: blocked, passphraseHash: passphraseHash}
}

// Enabled reports whether the admin surface should be routed at all.
func (h *Handlers) Enabled() bool {
	return h.passphraseHash != ""
}

// HandleBlockedDates dispatches on method: list, block, or unblock.
func (h *Handlers) HandleBlockedDates(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPut, http.MethodPost:
		h.handleBlock(w, r)
	case http.MethodDelete:
		h.handleUnblock(w, r)
	default:
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

type blockedDateResponse struct {
	Day    string `json:"day"`
	Reason string `json:"reason,omitempty"`
}

func (h *Handlers) handleList(w http.ResponseWriter, r *http.Request) {
	dates, err := h.blocked.List(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to list blocked dates")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	response := make([]blockedDateResponse, 0, len(dates))
	for _, date := range dates {
		response = append(response, blockedDateResponse{Day: date.Day, Reason: date.Reason})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode blocked dates")
	}
}

func (h *Handlers) handleBlock(w http.ResponseWriter, r *http.Request) {
	day, ok := h.dayParam(w, r)
	if !ok {
		return
	}

	if err := h.blocked.Block(r.Context(), day, r.URL.Query().Get("reason")); err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("day", day.Key()).Msg("Failed to block date")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) handleUnblock(w http.ResponseWriter, r *http.Request) {
	day, ok := h.dayParam(w, r)
	if !ok {
		return
	}

	removed, err := h.blocked.Unblock(r.Context(), day)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Str("day", day.Key()).Msg("Failed to unblock date")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if !removed {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) dayParam(w http.ResponseWriter, r *http.Request) (booking.Day, bool) {
	day, err := booking.ParseDay(r.URL.Query().Get("day"))
	if err != nil {
		http.Error(w, "Invalid day", http.StatusBadRequest)
		return booking.Day{}, false
	}
	return day, true
}

func (h *Handlers) authorize(w http.ResponseWriter, r *http.Request) bool {
	if h.passphraseHash == "" {
		http.Error(w, "Not Found", http.StatusNotFound)
		return false
	}

	passphrase := r.Header.Get(passphraseHeader)
	if err := bcrypt.CompareHashAndPassword([]byte(h.passphraseHash), []byte(passphrase)); err != nil {
		log.Ctx(r.Context()).Warn().Str("path", r.URL.Path).Msg("Admin access denied")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}
