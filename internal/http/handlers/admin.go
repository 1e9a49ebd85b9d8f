package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-draft-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-draft-service/internal/logging"
	"github.com/preston-bernstein/nba-draft-service/internal/sweeper"
)

// Sweeper runs an on-demand cleanup pass.
type Sweeper interface {
	SweepOnce(ctx context.Context) (sweeper.Result, error)
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	sweeper Sweeper
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(s Sweeper, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		sweeper: s,
		token:   token,
		logger:  logger,
	}
}

// Sweep evicts expired sessions and prunes old snapshots immediately.
// Guarded by ADMIN_TOKEN; returns 401 if missing or invalid.
func (h *AdminHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.sweeper == nil {
		writeError(w, r, http.StatusServiceUnavailable, "sweeper not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	res, err := h.sweeper.SweepOnce(r.Context())
	if err != nil {
		logging.Warn(logger, "admin sweep failed", slog.Any("err", err))
		writeError(w, r, http.StatusInternalServerError, "sweep failed", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"evicted": res.Evicted,
		"pruned":  res.Pruned,
		"status":  "ok",
	}, logger)
	logging.Info(logger, "admin sweep finished",
		slog.Int("evicted", res.Evicted),
		slog.Int("pruned", res.Pruned),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	return requestutil.TokenMatches(r, h.token)
}
