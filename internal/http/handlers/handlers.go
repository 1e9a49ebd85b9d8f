package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	appdrafts "github.com/preston-bernstein/nba-draft-service/internal/app/drafts"
	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/draft"
	"github.com/preston-bernstein/nba-draft-service/internal/evaluation"
	"github.com/preston-bernstein/nba-draft-service/internal/needs"
	"github.com/preston-bernstein/nba-draft-service/internal/pool"
	"github.com/preston-bernstein/nba-draft-service/internal/snapshots"
	"github.com/preston-bernstein/nba-draft-service/internal/sweeper"
)

// PlayerService serves normalized player pools.
type PlayerService interface {
	Pool(selector string) ([]players.Player, pool.Selector)
	PlayerByID(selector, id string) (players.Player, bool)
}

// DraftService runs draft sessions.
type DraftService interface {
	Create(ctx context.Context, req appdrafts.CreateRequest) (*draft.Session, error)
	Get(id string) (*draft.Session, error)
	Pick(ctx context.Context, id, playerID string) (*draft.Session, []draft.Pick, error)
	Auto(ctx context.Context, id string) (*draft.Session, []draft.Pick, error)
	Results(ctx context.Context, id string) (draft.Results, error)
	Needs(id, teamID string) (needs.Report, error)
	History() ([]snapshots.ManifestEntry, error)
}

// Deps are the collaborators a Handler serves from.
type Deps struct {
	Players     PlayerService
	Drafts      DraftService
	Evaluator   *evaluation.Evaluator
	DefaultPool string
	Logger      *slog.Logger

	// Status reports background health for /ready. Nil means always ready.
	Status func() sweeper.Status
}

// Handler wires HTTP routes to the player, draft and evaluation services.
type Handler struct {
	players     PlayerService
	drafts      DraftService
	evaluator   *evaluation.Evaluator
	defaultPool string
	logger      *slog.Logger
	statusFn    func() sweeper.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(deps Deps) *Handler {
	evaluator := deps.Evaluator
	if evaluator == nil {
		evaluator = evaluation.NewEvaluator(deps.Logger, nil)
	}
	return &Handler{
		players:     deps.Players,
		drafts:      deps.Drafts,
		evaluator:   evaluator,
		defaultPool: deps.DefaultPool,
		logger:      deps.Logger,
		statusFn:    deps.Status,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// NotFound answers unmatched routes with a JSON 404.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

func (h *Handler) poolParam(r *http.Request) string {
	if sel := strings.TrimSpace(r.URL.Query().Get("pool")); sel != "" {
		return sel
	}
	return h.defaultPool
}
