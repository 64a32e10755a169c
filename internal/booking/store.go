package booking

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultSessionTTL is how long an idle draft survives before pruning.
const DefaultSessionTTL = 2 * time.Hour

// Store holds the live booking sessions, keyed by an opaque cookie
// value. Each browser session owns an independent draft; nothing here
// persists across restarts.
type Store struct {
	cfg   Config
	ttl   time.Duration
	clock Clock

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore creates a session store. A non-positive ttl falls back to
// DefaultSessionTTL.
func NewStore(cfg Config, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	clock := cfg.Clock
	if clock == nil {
		clock = realClock{}
	}
	return &Store{
		cfg:      cfg,
		ttl:      ttl,
		clock:    clock,
		sessions: make(map[string]*Session),
	}
}

// Create opens a new session, optionally pre-seeded with a package
// identifier from a shareable link, and returns its key.
func (st *Store) Create(initialPackage string) (string, *Session) {
	key := uuid.NewString()
	session := NewSession(st.cfg, initialPackage)

	st.mu.Lock()
	st.sessions[key] = session
	st.mu.Unlock()

	return key, session
}

// Get returns the session for a key, if it is still alive.
func (st *Store) Get(key string) (*Session, bool) {
	st.mu.RLock()
	session, ok := st.sessions[key]
	st.mu.RUnlock()
	return session, ok
}

// Drop removes a session, e.g. after its confirmation view is rendered.
func (st *Store) Drop(key string) {
	st.mu.Lock()
	delete(st.sessions, key)
	st.mu.Unlock()
}

// Len reports the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Prune drops sessions idle past the TTL and returns how many were
// removed. Confirmed sessions age out the same way; their draft is
// already terminal.
func (st *Store) Prune() int {
	cutoff := st.clock.Now().Add(-st.ttl)

	st.mu.Lock()
	defer st.mu.Unlock()

	pruned := 0
	for key, session := range st.sessions {
		if session.LastSeen().Before(cutoff) {
			delete(st.sessions, key)
			pruned++
		}
	}
	if pruned > 0 {
		log.Debug().Int("pruned", pruned).Int("remaining", len(st.sessions)).Msg("Pruned idle booking sessions")
	}
	return pruned
}
