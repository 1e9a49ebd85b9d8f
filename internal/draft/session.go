// Package draft runs a multi-team player draft: team setup, pick order,
// user and automatic picks, and final standings.
package draft

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-draft-service/internal/needs"
)

const (
	DefaultRounds       = 5
	DefaultAITeamCount  = 5
	DefaultUserTeamName = "Your Team"
)

var (
	ErrInvalidOptions    = errors.New("invalid draft options")
	ErrDraftComplete     = errors.New("draft is complete")
	ErrNotYourTurn       = errors.New("team is not on the clock")
	ErrPlayerUnavailable = errors.New("player is not available")
	ErrTeamNotFound      = errors.New("team not found")
)

// Options configures a new draft. Zero values take the package defaults.
type Options struct {
	Pool         []players.Player
	PoolName     string
	Rounds       int
	AITeamCount  int
	UserTeamName string
	Order        Order

	// Seed drives AI team naming. Zero picks a random seed, which is recorded
	// on the session so the draft can be replayed.
	Seed uint64
}

func (o Options) withDefaults() Options {
	if o.Rounds == 0 {
		o.Rounds = DefaultRounds
	}
	if o.AITeamCount == 0 {
		o.AITeamCount = DefaultAITeamCount
	}
	if o.UserTeamName == "" {
		o.UserTeamName = DefaultUserTeamName
	}
	if o.Order == "" {
		o.Order = OrderLinear
	}
	if o.Seed == 0 {
		o.Seed = rand.Uint64()
	}
	return o
}

func (o Options) validate() error {
	if o.Rounds < 1 {
		return fmt.Errorf("%w: rounds must be at least 1, got %d", ErrInvalidOptions, o.Rounds)
	}
	if o.AITeamCount < 1 {
		return fmt.Errorf("%w: need at least one AI team, got %d", ErrInvalidOptions, o.AITeamCount)
	}
	if _, err := ParseOrder(string(o.Order)); err != nil {
		return err
	}
	// Bound each factor by the pool before multiplying so the product cannot
	// overflow.
	if o.AITeamCount >= len(o.Pool) || o.Rounds > len(o.Pool) {
		return fmt.Errorf("%w: pool has %d players, too few for %d rounds of %d teams",
			ErrInvalidOptions, len(o.Pool), o.Rounds, o.AITeamCount+1)
	}
	if need := o.Rounds * (o.AITeamCount + 1); len(o.Pool) < need {
		return fmt.Errorf("%w: pool has %d players, draft needs %d", ErrInvalidOptions, len(o.Pool), need)
	}
	return nil
}

// Pick records one selection.
type Pick struct {
	Number     int    `json:"number"`
	Round      int    `json:"round"`
	TeamID     string `json:"teamId"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Auto       bool   `json:"auto"`
}

// Session is one draft in progress. It is not safe for concurrent use;
// callers serialize access (see store.MemoryStore.UpdateSession).
type Session struct {
	ID          string           `json:"id"`
	Pool        string           `json:"pool"`
	Rounds      int              `json:"rounds"`
	Order       Order            `json:"order"`
	Seed        uint64           `json:"seed"`
	Teams       []*teams.Team    `json:"teams"`
	Available   []players.Player `json:"available"`
	Picks       []Pick           `json:"picks"`
	Complete    bool             `json:"complete"`
	CreatedAt   time.Time        `json:"createdAt"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
}

// NewSession sets up the teams and the available pool. The user team drafts
// first; AI teams follow with distinct franchise names.
func NewSession(opts Options) (*Session, error) {
	opts = opts.withDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	names := teams.RandomNames(rng, opts.AITeamCount, opts.UserTeamName)

	roster := make([]*teams.Team, 0, opts.AITeamCount+1)
	roster = append(roster, teams.New(teamID(1), opts.UserTeamName, 1, true, opts.Rounds))
	for i, name := range names {
		roster = append(roster, teams.New(teamID(i+2), name, i+2, false, opts.Rounds))
	}

	available := make([]players.Player, len(opts.Pool))
	copy(available, opts.Pool)

	return &Session{
		ID:        uuid.NewString(),
		Pool:      opts.PoolName,
		Rounds:    opts.Rounds,
		Order:     opts.Order,
		Seed:      opts.Seed,
		Teams:     roster,
		Available: available,
		Picks:     make([]Pick, 0, opts.Rounds*len(roster)),
		CreatedAt: time.Now().UTC(),
	}, nil
}

func teamID(order int) string {
	return fmt.Sprintf("team-%d", order)
}

// TotalPicks is the number of picks in a full draft.
func (s *Session) TotalPicks() int {
	return s.Rounds * len(s.Teams)
}

// Round is the 1-based round of the next pick, or the last round once complete.
func (s *Session) Round() int {
	if s.Complete {
		return s.Rounds
	}
	round, _ := s.Order.slot(len(s.Picks), len(s.Teams))
	return round + 1
}

// OnTheClock returns the team due to pick, or nil when the draft is complete.
func (s *Session) OnTheClock() *teams.Team {
	if s.Complete || len(s.Picks) >= s.TotalPicks() {
		return nil
	}
	_, slot := s.Order.slot(len(s.Picks), len(s.Teams))
	return s.Teams[slot]
}

// Team looks a team up by ID.
func (s *Session) Team(id string) (*teams.Team, bool) {
	for _, t := range s.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// UserTeam returns the user's team.
func (s *Session) UserTeam() *teams.Team {
	for _, t := range s.Teams {
		if t.IsUser {
			return t
		}
	}
	return nil
}

// Pick drafts playerID for teamID, which must be on the clock.
func (s *Session) Pick(teamID, playerID string) (Pick, error) {
	team := s.OnTheClock()
	if team == nil {
		return Pick{}, ErrDraftComplete
	}
	if team.ID != teamID {
		return Pick{}, fmt.Errorf("%w: %s picks now", ErrNotYourTurn, team.Name)
	}
	idx := s.indexOf(playerID)
	if idx < 0 {
		return Pick{}, fmt.Errorf("%w: %s", ErrPlayerUnavailable, playerID)
	}
	return s.take(team, idx, false)
}

// AutoPick lets strategy choose for the team on the clock, based on that
// team's current positional needs.
func (s *Session) AutoPick(strategy Strategy) (Pick, error) {
	team := s.OnTheClock()
	if team == nil {
		return Pick{}, ErrDraftComplete
	}
	if strategy == nil {
		strategy = NeedsStrategy{}
	}

	priorities, err := needs.RankPositionPriorities(needs.ComputeTeamNeeds(team.Roster, s.Rounds))
	if err != nil {
		return Pick{}, err
	}
	choice, err := strategy.Choose(priorities, s.Available)
	if err != nil {
		return Pick{}, err
	}
	idx := s.indexOf(choice.ID)
	if idx < 0 {
		return Pick{}, fmt.Errorf("%w: strategy chose %s", ErrPlayerUnavailable, choice.ID)
	}
	return s.take(team, idx, true)
}

// AdvanceToUser auto-picks for AI teams until the user is on the clock or
// the draft completes.
func (s *Session) AdvanceToUser(strategy Strategy) ([]Pick, error) {
	var made []Pick
	for {
		team := s.OnTheClock()
		if team == nil || team.IsUser {
			return made, nil
		}
		p, err := s.AutoPick(strategy)
		if err != nil {
			return made, err
		}
		made = append(made, p)
	}
}

func (s *Session) indexOf(playerID string) int {
	for i, p := range s.Available {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

func (s *Session) take(team *teams.Team, idx int, auto bool) (Pick, error) {
	player := s.Available[idx]
	if err := team.Add(player); err != nil {
		return Pick{}, err
	}
	s.Available = append(s.Available[:idx], s.Available[idx+1:]...)

	round, _ := s.Order.slot(len(s.Picks), len(s.Teams))
	pick := Pick{
		Number:     len(s.Picks) + 1,
		Round:      round + 1,
		TeamID:     team.ID,
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Auto:       auto,
	}
	s.Picks = append(s.Picks, pick)

	if len(s.Picks) == s.TotalPicks() {
		s.finish()
	}
	return pick, nil
}

func (s *Session) finish() {
	for _, t := range s.Teams {
		t.Freeze()
	}
	now := time.Now().UTC()
	s.Complete = true
	s.CompletedAt = &now
}

// Clone returns a deep copy that shares no mutable state with s.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Teams = make([]*teams.Team, len(s.Teams))
	for i, t := range s.Teams {
		cp := *t
		cp.Roster = t.RosterSnapshot()
		out.Teams[i] = &cp
	}
	out.Available = append([]players.Player(nil), s.Available...)
	out.Picks = append([]Pick(nil), s.Picks...)
	if s.CompletedAt != nil {
		at := *s.CompletedAt
		out.CompletedAt = &at
	}
	return &out
}
