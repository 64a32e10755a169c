// Package availability manages the studio's blocked-dates list. The
// booking core sees it as a read-only blocklist; mutation happens only
// through the admin endpoints.
package availability

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/hightidestudios/website/internal/booking"
	"github.com/hightidestudios/website/internal/db"
)

// Store is a SQLite-backed blocklist with an in-memory read cache so
// calendar rendering never touches the database per cell.
type Store struct {
	queries *db.Queries

	mu      sync.RWMutex
	blocked map[string]struct{}
}

// NewStore loads the blocked set from the database.
func NewStore(ctx context.Context, queries *db.Queries) (*Store, error) {
	s := &Store{queries: queries}
	if err := s.refresh(ctx); err != nil {
		return nil, fmt.Errorf("load blocked dates: %w", err)
	}
	return s, nil
}

// IsBlocked implements booking.Blocklist.
func (s *Store) IsBlocked(day booking.Day) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, blocked := s.blocked[day.Key()]
	return blocked
}

// List returns the blocked days in ascending order.
func (s *Store) List(ctx context.Context) ([]db.BlockedDate, error) {
	return s.queries.ListBlockedDates(ctx)
}

// Block marks a day unavailable.
func (s *Store) Block(ctx context.Context, day booking.Day, reason string) error {
	if err := s.queries.UpsertBlockedDate(ctx, day.Key(), reason); err != nil {
		return fmt.Errorf("block date %s: %w", day.Key(), err)
	}

	s.mu.Lock()
	s.blocked[day.Key()] = struct{}{}
	s.mu.Unlock()
	return nil
}

// Unblock makes a day available again. Reports whether it was blocked.
func (s *Store) Unblock(ctx context.Context, day booking.Day) (bool, error) {
	removed, err := s.queries.DeleteBlockedDate(ctx, day.Key())
	if err != nil {
		return false, fmt.Errorf("unblock date %s: %w", day.Key(), err)
	}

	s.mu.Lock()
	delete(s.blocked, day.Key())
	s.mu.Unlock()
	return removed, nil
}

// PrunePast drops blocked days strictly before today. Past days are
// unselectable anyway; this keeps the table small.
func (s *Store) PrunePast(ctx context.Context, today booking.Day) (int64, error) {
	removed, err := s.queries.DeleteBlockedDatesBefore(ctx, today.Key())
	if err != nil {
		return 0, fmt.Errorf("prune blocked dates: %w", err)
	}
	if removed > 0 {
		if err := s.refresh(ctx); err != nil {
			return removed, err
		}
		log.Info().Int64("removed", removed).Msg("Pruned past blocked dates")
	}
	return removed, nil
}

func (s *Store) refresh(ctx context.Context) error {
	dates, err := s.queries.ListBlockedDates(ctx)
	if err != nil {
		return err
	}

	blocked := make(map[string]struct{}, len(dates))
	for _, date := range dates {
		blocked[date.Day] = struct{}{}
	}

	s.mu.Lock()
	s.blocked = blocked
	s.mu.Unlock()
	return nil
}
