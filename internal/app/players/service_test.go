package players

import (
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/metrics"
	"github.com/preston-bernstein/nba-draft-service/internal/pool"
	"github.com/preston-bernstein/nba-draft-service/internal/testutil"
)

type stubPoolStore struct {
	pools map[string][]players.Player
	sets  int
}

func (s *stubPoolStore) Pool(selector string) ([]players.Player, bool) {
	list, ok := s.pools[selector]
	return list, ok
}

func (s *stubPoolStore) SetPool(selector string, list []players.Player) {
	if s.pools == nil {
		s.pools = map[string][]players.Player{}
	}
	s.pools[selector] = list
	s.sets++
}

func rawPlayer(id, name, rating string) pool.RawPlayer {
	return pool.RawPlayer{ID: id, Name: name, Height: `6'8"`, PrimaryPosition: "SF", OverallAttribute: pool.RawRating(rating)}
}

func testSource() pool.Source {
	return pool.Source{
		Current: []pool.RawPlayer{rawPlayer("c1", "Current One", "80"), rawPlayer("c2", "Current Two", "90")},
		AllTime: []pool.RawPlayer{rawPlayer("a1", "Legend", "99"), {ID: "bad"}},
	}
}

func TestPoolNormalizesOnceAndCaches(t *testing.T) {
	store := &stubPoolStore{}
	recorder := metrics.NewRecorder()
	svc := NewService(store, testSource(), pool.NewNormalizer(nil, recorder), nil)

	list, sel := svc.Pool("current")
	if sel != pool.SelectorCurrent {
		t.Fatalf("expected current selector, got %s", sel)
	}
	if len(list) != 2 || list[0].ID != "c2" {
		t.Fatalf("expected pool sorted best first, got %+v", list)
	}

	svc.Pool("current")
	if store.sets != 1 {
		t.Fatalf("expected a single normalization, got %d", store.sets)
	}
	if got := recorder.Pool("current").Loads; got != 1 {
		t.Fatalf("expected 1 recorded pool load, got %d", got)
	}
}

func TestPoolUnknownSelectorFallsBackToAllTime(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	svc := NewService(&stubPoolStore{}, testSource(), pool.NewNormalizer(logger, nil), logger)

	list, sel := svc.Pool("legends")
	if sel != pool.SelectorAllTime {
		t.Fatalf("expected all-time fallback, got %s", sel)
	}
	if len(list) != 1 || list[0].ID != "a1" {
		t.Fatalf("expected all-time pool without the invalid record, got %+v", list)
	}
	if !containsAll(buf.String(), "unknown player pool", "legends") {
		t.Fatalf("expected fallback warning, got %q", buf.String())
	}

	buf.Reset()
	svc.Pool("legends")
	if !containsAll(buf.String(), "unknown player pool") {
		t.Fatalf("expected fallback warning on cached path, got %q", buf.String())
	}
}

func TestPlayerByID(t *testing.T) {
	svc := NewService(&stubPoolStore{}, testSource(), pool.NewNormalizer(nil, nil), nil)

	p, ok := svc.PlayerByID("combined", "a1")
	if !ok || p.Name != "Legend" {
		t.Fatalf("expected to find a1 in combined pool, got %+v (ok=%v)", p, ok)
	}
	if _, ok := svc.PlayerByID("current", "a1"); ok {
		t.Fatalf("expected a1 to be absent from the current pool")
	}
}

func TestWarmLoadsEveryPool(t *testing.T) {
	store := &stubPoolStore{}
	svc := NewService(store, testSource(), pool.NewNormalizer(nil, nil), nil)
	svc.Warm()

	for _, sel := range []string{"current", "allTime", "combined"} {
		if _, ok := store.pools[sel]; !ok {
			t.Fatalf("expected %s pool to be cached", sel)
		}
	}
	if len(store.pools["combined"]) != 3 {
		t.Fatalf("expected combined pool of 3, got %d", len(store.pools["combined"]))
	}
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
