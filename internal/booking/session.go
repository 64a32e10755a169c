package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hightidestudios/website/internal/catalog"
)

// Status is the lifecycle of one booking session. Confirmed is terminal;
// a fresh view entry is required to book again.
type Status int

const (
	StatusEditing Status = iota
	StatusSubmitting
	StatusConfirmed
)

func (s Status) String() string {
	switch s {
	case StatusEditing:
		return "editing"
	case StatusSubmitting:
		return "submitting"
	case StatusConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

var (
	// ErrSubmitInFlight rejects a submit while a prior call is pending.
	ErrSubmitInFlight = errors.New("a submission is already in flight")
	// ErrAlreadyConfirmed rejects mutation of a confirmed session.
	ErrAlreadyConfirmed = errors.New("booking already confirmed")
	// ErrInvalidDraft signals field validation failures; the relay was
	// never called.
	ErrInvalidDraft = errors.New("draft failed validation")
)

// Relay is the external transactional-email capability. One user
// submission yields exactly one Send; there is no retry or batching.
type Relay interface {
	Send(ctx context.Context, payload Payload) error
}

// Config carries the session collaborators. Catalog and Blocklist are
// read-only and shared across all sessions without coordination.
type Config struct {
	Catalog      *catalog.Catalog
	Blocked      Blocklist
	BusinessName string
	// FallbackContact is appended to submit failures so a visitor always
	// has a direct channel when the relay is down.
	FallbackContact string
	Clock           Clock
}

// Session owns one visitor's booking draft and drives it through
// Editing -> Submitting -> {Confirmed | Editing with submit error}.
// All methods are safe for concurrent use; the mutex is never held
// across the relay call.
type Session struct {
	cfg   Config
	clock Clock

	mu       sync.Mutex
	state    State
	status   Status
	fieldErr map[string]string

	lastSeen time.Time
}

// NewSession opens a booking session showing the current month. When
// initialPackage names a known package the draft is pre-seeded with it;
// anything else is silently ignored.
func NewSession(cfg Config, initialPackage string) *Session {
	clock := cfg.Clock
	if clock == nil {
		clock = realClock{}
	}

	now := clock.Now()
	s := &Session{
		cfg:   cfg,
		clock: clock,
		state: State{
			ViewYear:  now.Year(),
			ViewMonth: now.Month(),
		},
		lastSeen: now,
	}

	if initialPackage != "" {
		if _, ok := cfg.Catalog.ByID(initialPackage); ok {
			s.state.Draft.PackageID = initialPackage
		}
	}
	return s
}

// Dispatch reduces a user intent into the session state. Mutations are
// rejected once the session is confirmed or while a submit is pending.
func (s *Session) Dispatch(intent Intent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.status {
	case StatusConfirmed:
		return ErrAlreadyConfirmed
	case StatusSubmitting:
		return ErrSubmitInFlight
	}

	s.state.Apply(intent, s.env())
	s.lastSeen = s.clock.Now()
	return nil
}

// Status reports the session lifecycle state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Draft returns a copy of the current draft.
func (s *Session) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	draft := s.state.Draft
	draft.SelectedDates = append([]Day(nil), s.state.Draft.SelectedDates...)
	return draft
}

// Errors returns the field errors from the last submit attempt,
// including the "submit" slot for relay failures.
func (s *Session) Errors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	errs := make(map[string]string, len(s.fieldErr))
	for field, msg := range s.fieldErr {
		errs[field] = msg
	}
	return errs
}

// MonthView computes the calendar read model for the displayed month.
func (s *Session) MonthView() MonthView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return NewMonthView(
		s.state.ViewYear,
		s.state.ViewMonth,
		s.state.Draft.SelectedDates,
		s.cfg.Blocked,
		DayOf(s.clock.Now()),
	)
}

// Quote returns the deposit disclosure for the selected package, or
// ErrNoPackage when nothing is selected yet.
func (s *Session) Quote() (Quote, error) {
	return QuoteForDraft(s.Draft(), s.cfg.Catalog)
}

// SelectedPackage resolves the draft's package selection.
func (s *Session) SelectedPackage() (catalog.Package, bool) {
	return s.cfg.Catalog.ByID(s.Draft().PackageID)
}

// LastSeen reports the most recent interaction, for TTL pruning.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Submit validates the draft and hands it to the relay. It is
// single-flight: while one call is pending every further Submit returns
// ErrSubmitInFlight and the relay is not invoked again. On relay failure
// the session returns to Editing with the failure detail in the "submit"
// error slot and the draft intact for retry.
func (s *Session) Submit(ctx context.Context, relay Relay) error {
	s.mu.Lock()
	switch s.status {
	case StatusSubmitting:
		s.mu.Unlock()
		return ErrSubmitInFlight
	case StatusConfirmed:
		s.mu.Unlock()
		return ErrAlreadyConfirmed
	}

	if errs := Validate(s.state.Draft, s.env().Packages); len(errs) > 0 {
		s.fieldErr = errs
		s.mu.Unlock()
		return ErrInvalidDraft
	}

	pkg, ok := s.cfg.Catalog.ByID(s.state.Draft.PackageID)
	if !ok {
		// Validate guarantees a known package; reaching here is a bug.
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrNoPackage, s.state.Draft.PackageID)
	}

	payload, err := BuildPayload(s.state.Draft, pkg, s.cfg.BusinessName)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.status = StatusSubmitting
	s.fieldErr = nil
	s.lastSeen = s.clock.Now()
	s.mu.Unlock()

	sendErr := relay.Send(ctx, payload)

	s.mu.Lock()
	defer s.mu.Unlock()

	if sendErr != nil {
		log.Error().
			Err(sendErr).
			Str("package", pkg.ID).
			Msg("Booking submission failed")
		s.status = StatusEditing
		s.fieldErr = map[string]string{
			"submit": fmt.Sprintf(
				"Failed to send booking request: %s. Please contact us directly at %s",
				sendErr.Error(), s.cfg.FallbackContact,
			),
		}
		return fmt.Errorf("send booking request: %w", sendErr)
	}

	s.status = StatusConfirmed
	log.Info().
		Str("package", pkg.ID).
		Int("preferred_dates", len(s.state.Draft.SelectedDates)).
		Msg("Booking request submitted")
	return nil
}

type catalogResolver struct{ cat *catalog.Catalog }

func (r catalogResolver) Has(id string) bool {
	_, ok := r.cat.ByID(id)
	return ok
}

func (s *Session) env() Env {
	return Env{
		Blocked:  s.cfg.Blocked,
		Packages: catalogResolver{cat: s.cfg.Catalog},
		Today:    DayOf(s.clock.Now()),
	}
}
