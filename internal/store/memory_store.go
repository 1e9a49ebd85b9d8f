package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/draft"
)

// ErrSessionNotFound is returned for an unknown draft ID.
var ErrSessionNotFound = errors.New("draft session not found")

// MemoryStore keeps normalized pools and draft sessions in memory. Sessions
// are handed out as copies; all mutation goes through UpdateSession.
type MemoryStore struct {
	mu       sync.RWMutex
	pools    map[string][]players.Player
	sessions map[string]*draft.Session
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		pools:    make(map[string][]players.Player),
		sessions: make(map[string]*draft.Session),
	}
}

// Pool returns a copy of the cached pool for selector.
func (s *MemoryStore) Pool(selector string) ([]players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.pools[selector]
	if !ok {
		return nil, false
	}
	out := make([]players.Player, len(list))
	copy(out, list)
	return out, true
}

// SetPool replaces the cached pool for selector.
func (s *MemoryStore) SetPool(selector string, list []players.Player) {
	cp := make([]players.Player, len(list))
	copy(cp, list)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pools[selector] = cp
}

// PutSession stores a copy of session, replacing any with the same ID.
func (s *MemoryStore) PutSession(session *draft.Session) {
	cp := session.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[cp.ID] = cp
}

// Session retrieves a copy of a session by ID.
func (s *MemoryStore) Session(id string) (*draft.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	return session.Clone(), true
}

// UpdateSession applies fn to a working copy of the session under the write
// lock. The copy replaces the stored session only when fn succeeds, so a
// failed update leaves no partial changes behind. The updated copy is returned.
func (s *MemoryStore) UpdateSession(id string, fn func(*draft.Session) error) (*draft.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	working := current.Clone()
	if err := fn(working); err != nil {
		return current.Clone(), err
	}
	s.sessions[id] = working
	return working.Clone(), nil
}

// DeleteSession drops a session. Unknown IDs are ignored.
func (s *MemoryStore) DeleteSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// ExpiredSessions lists, in ID order, completed sessions that finished before
// completedBefore and unfinished sessions created before createdBefore. A zero
// cutoff disables that half of the check.
func (s *MemoryStore) ExpiredSessions(completedBefore, createdBefore time.Time) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for id, session := range s.sessions {
		switch {
		case session.Complete && session.CompletedAt != nil:
			if !completedBefore.IsZero() && session.CompletedAt.Before(completedBefore) {
				ids = append(ids, id)
			}
		case !createdBefore.IsZero() && session.CreatedAt.Before(createdBefore):
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// SessionCount reports how many sessions are held.
func (s *MemoryStore) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
