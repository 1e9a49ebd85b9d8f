package drafts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/draft"
	"github.com/preston-bernstein/nba-draft-service/internal/evaluation"
	"github.com/preston-bernstein/nba-draft-service/internal/logging"
	"github.com/preston-bernstein/nba-draft-service/internal/metrics"
	"github.com/preston-bernstein/nba-draft-service/internal/needs"
	"github.com/preston-bernstein/nba-draft-service/internal/pool"
	"github.com/preston-bernstein/nba-draft-service/internal/snapshots"
	"github.com/preston-bernstein/nba-draft-service/internal/store"
)

// ErrNotFound is returned for drafts that are neither in memory nor persisted.
var ErrNotFound = store.ErrSessionNotFound

// SessionStore holds live draft sessions.
type SessionStore interface {
	PutSession(*draft.Session)
	Session(id string) (*draft.Session, bool)
	UpdateSession(id string, fn func(*draft.Session) error) (*draft.Session, error)
}

// PoolProvider resolves a selector to a normalized pool.
type PoolProvider interface {
	Pool(selector string) ([]players.Player, pool.Selector)
}

// SnapshotWriter persists the results of completed drafts.
type SnapshotWriter interface {
	WriteDraftResults(draft.Results) error
}

// SnapshotStore loads persisted draft results.
type SnapshotStore interface {
	LoadDraftResults(draftID string) (draft.Results, error)
	ListDrafts() ([]snapshots.ManifestEntry, error)
}

// Defaults fill in anything a create request leaves out.
type Defaults struct {
	Pool     string
	Rounds   int
	AITeams  int
	UserTeam string
	Order    draft.Order
}

// CreateRequest describes a new draft.
type CreateRequest struct {
	Pool     string `json:"pool"`
	Rounds   int    `json:"rounds"`
	AITeams  int    `json:"aiTeams"`
	UserTeam string `json:"userTeam"`
	Order    string `json:"order"`
	Seed     uint64 `json:"seed"`
}

// Service coordinates draft sessions: creation, user and AI picks, and
// results. Completed drafts are persisted when a snapshot writer is set.
type Service struct {
	sessions  SessionStore
	pools     PoolProvider
	evaluator *evaluation.Evaluator
	strategy  draft.Strategy
	defaults  Defaults
	writer    SnapshotWriter
	snapshots SnapshotStore
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

// Option customizes a Service.
type Option func(*Service)

// WithSnapshots enables persisting and reloading completed drafts.
func WithSnapshots(writer SnapshotWriter, loader SnapshotStore) Option {
	return func(s *Service) {
		s.writer = writer
		s.snapshots = loader
	}
}

// WithStrategy overrides the AI pick strategy.
func WithStrategy(strategy draft.Strategy) Option {
	return func(s *Service) {
		if strategy != nil {
			s.strategy = strategy
		}
	}
}

// WithObservability attaches a logger and metrics recorder.
func WithObservability(logger *slog.Logger, recorder *metrics.Recorder) Option {
	return func(s *Service) {
		s.logger = logger
		s.metrics = recorder
	}
}

// NewService constructs a draft Service.
func NewService(sessions SessionStore, pools PoolProvider, evaluator *evaluation.Evaluator, defaults Defaults, opts ...Option) *Service {
	s := &Service{
		sessions:  sessions,
		pools:     pools,
		evaluator: evaluator,
		strategy:  draft.NeedsStrategy{},
		defaults:  defaults,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.evaluator == nil {
		s.evaluator = evaluation.NewEvaluator(s.logger, s.metrics)
	}
	return s
}

// Create starts a draft and runs AI picks until the user is on the clock.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*draft.Session, error) {
	req = s.applyDefaults(req)
	order, err := draft.ParseOrder(req.Order)
	if err != nil {
		return nil, err
	}
	list, sel := s.pools.Pool(req.Pool)

	session, err := draft.NewSession(draft.Options{
		Pool:         list,
		PoolName:     string(sel),
		Rounds:       req.Rounds,
		AITeamCount:  req.AITeams,
		UserTeamName: req.UserTeam,
		Order:        order,
		Seed:         req.Seed,
	})
	if err != nil {
		return nil, err
	}
	made, err := session.AdvanceToUser(s.strategy)
	if err != nil {
		return nil, err
	}
	s.recordPicks(session.ID, made)
	s.sessions.PutSession(session)

	logging.Info(logging.FromContext(ctx, s.logger), "draft created",
		logging.FieldDraftID, session.ID,
		logging.FieldPool, session.Pool,
		"rounds", session.Rounds,
		"teams", len(session.Teams),
		"order", string(session.Order),
	)
	return session, nil
}

// Get returns a copy of a live session.
func (s *Service) Get(id string) (*draft.Session, error) {
	session, ok := s.sessions.Session(id)
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// Pick drafts playerID for the user, then lets the AI teams pick until the
// user is back on the clock. It returns the session and every pick made.
func (s *Service) Pick(ctx context.Context, id, playerID string) (*draft.Session, []draft.Pick, error) {
	var made []draft.Pick
	session, err := s.sessions.UpdateSession(id, func(sess *draft.Session) error {
		user := sess.UserTeam()
		if user == nil {
			return fmt.Errorf("%w: draft has no user team", draft.ErrTeamNotFound)
		}
		p, err := sess.Pick(user.ID, playerID)
		if err != nil {
			return err
		}
		made = append(made, p)
		ai, err := sess.AdvanceToUser(s.strategy)
		made = append(made, ai...)
		return err
	})
	if err != nil {
		return session, nil, err
	}
	s.afterPicks(ctx, session, made)
	return session, made, nil
}

// Auto makes the current pick automatically, whoever is on the clock, then
// advances to the user's next turn.
func (s *Service) Auto(ctx context.Context, id string) (*draft.Session, []draft.Pick, error) {
	var made []draft.Pick
	session, err := s.sessions.UpdateSession(id, func(sess *draft.Session) error {
		p, err := sess.AutoPick(s.strategy)
		if err != nil {
			return err
		}
		made = append(made, p)
		ai, err := sess.AdvanceToUser(s.strategy)
		made = append(made, ai...)
		return err
	})
	if err != nil {
		return session, nil, err
	}
	s.afterPicks(ctx, session, made)
	return session, made, nil
}

// Results returns the standings of a draft. Drafts no longer held in memory
// are served from their persisted snapshot.
func (s *Service) Results(ctx context.Context, id string) (draft.Results, error) {
	if session, ok := s.sessions.Session(id); ok {
		return session.Standings(ctx, s.evaluator)
	}
	if s.snapshots == nil {
		return draft.Results{}, ErrNotFound
	}
	res, err := s.snapshots.LoadDraftResults(id)
	if errors.Is(err, os.ErrNotExist) || errors.Is(err, snapshots.ErrInvalidDraftID) {
		return draft.Results{}, ErrNotFound
	}
	if err != nil {
		return draft.Results{}, err
	}
	return res, nil
}

// History lists persisted drafts, newest first.
func (s *Service) History() ([]snapshots.ManifestEntry, error) {
	if s.snapshots == nil {
		return []snapshots.ManifestEntry{}, nil
	}
	return s.snapshots.ListDrafts()
}

// Needs reports a team's needs and priorities. An empty teamID means the
// user's team.
func (s *Service) Needs(id, teamID string) (needs.Report, error) {
	session, ok := s.sessions.Session(id)
	if !ok {
		return needs.Report{}, ErrNotFound
	}
	team := session.UserTeam()
	if teamID != "" {
		t, ok := session.Team(teamID)
		if !ok {
			return needs.Report{}, fmt.Errorf("%w: %s", draft.ErrTeamNotFound, teamID)
		}
		team = t
	}
	return needs.Analyze(team.Roster, session.Rounds)
}

func (s *Service) applyDefaults(req CreateRequest) CreateRequest {
	if req.Pool == "" {
		req.Pool = s.defaults.Pool
	}
	if req.Rounds == 0 {
		req.Rounds = s.defaults.Rounds
	}
	if req.AITeams == 0 {
		req.AITeams = s.defaults.AITeams
	}
	if req.UserTeam == "" {
		req.UserTeam = s.defaults.UserTeam
	}
	if req.Order == "" {
		req.Order = string(s.defaults.Order)
	}
	return req
}

func (s *Service) afterPicks(ctx context.Context, session *draft.Session, made []draft.Pick) {
	if session == nil {
		return
	}
	s.recordPicks(session.ID, made)
	if !session.Complete {
		return
	}
	s.metrics.RecordDraftCompleted()

	logger := logging.FromContext(ctx, s.logger)
	res, err := session.Standings(ctx, s.evaluator)
	if err != nil {
		logging.Error(logger, "draft standings failed", err, logging.FieldDraftID, session.ID)
		return
	}
	logging.Info(logger, "draft complete",
		logging.FieldDraftID, session.ID,
		logging.FieldTeam, res.User.TeamName,
		logging.FieldScore, res.User.Evaluation.Score,
	)
	if s.writer == nil {
		return
	}
	if err := s.writer.WriteDraftResults(res); err != nil {
		logging.Error(logger, "draft snapshot write failed", err, logging.FieldDraftID, session.ID)
	}
}

func (s *Service) recordPicks(draftID string, made []draft.Pick) {
	for _, p := range made {
		logging.Debug(s.logger, "pick made",
			append(logging.DraftAttrs(draftID, p.Round, p.TeamID), logging.FieldPlayer, p.PlayerName, "auto", p.Auto)...)
		if p.Auto {
			s.metrics.RecordPick(metrics.PickAuto)
			continue
		}
		s.metrics.RecordPick(metrics.PickUser)
	}
}
