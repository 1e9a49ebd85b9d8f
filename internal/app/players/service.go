package players

import (
	"log/slog"
	"sync"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/logging"
	"github.com/preston-bernstein/nba-draft-service/internal/pool"
)

// Store defines the contract for caching normalized pools.
type Store interface {
	Pool(selector string) ([]players.Player, bool)
	SetPool(selector string, list []players.Player)
}

// Service serves normalized player pools, normalizing each pool once.
type Service struct {
	store      Store
	source     pool.Source
	normalizer *pool.Normalizer
	logger     *slog.Logger

	mu sync.Mutex
}

// NewService constructs a Service over the raw source collections.
func NewService(store Store, source pool.Source, normalizer *pool.Normalizer, logger *slog.Logger) *Service {
	return &Service{store: store, source: source, normalizer: normalizer, logger: logger}
}

// Pool returns the normalized pool for selector, best players first, and the
// selector that was actually used. Unknown selectors resolve to all-time.
func (s *Service) Pool(selector string) ([]players.Player, pool.Selector) {
	sel, known := pool.ParseSelector(selector)
	if list, ok := s.store.Pool(string(sel)); ok {
		if !known {
			logging.Warn(s.logger, "unknown player pool, falling back to all-time", logging.FieldPool, selector)
		}
		return list, sel
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if list, ok := s.store.Pool(string(sel)); ok {
		return list, sel
	}
	list, resolved := s.normalizer.Pool(s.source, selector)
	s.store.SetPool(string(resolved), list)
	return list, resolved
}

// PlayerByID returns a single player from the selected pool.
func (s *Service) PlayerByID(selector, id string) (players.Player, bool) {
	list, _ := s.Pool(selector)
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return players.Player{}, false
}

// Warm normalizes every known pool up front.
func (s *Service) Warm() {
	for _, sel := range []pool.Selector{pool.SelectorCurrent, pool.SelectorAllTime, pool.SelectorCombined} {
		list, _ := s.Pool(string(sel))
		logging.Info(s.logger, "player pool ready", logging.FieldPool, string(sel), logging.FieldCount, len(list))
	}
}
