package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/logging"
)

// PlayerView is a player together with its per-group composite ratings.
type PlayerView struct {
	players.Player
	Composites players.Composites `json:"composites"`
}

// PoolResponse is the payload of GET /players.
type PoolResponse struct {
	Pool    string       `json:"pool"`
	Count   int          `json:"count"`
	Players []PlayerView `json:"players"`
}

func newPlayerView(p players.Player) PlayerView {
	return PlayerView{Player: p, Composites: p.Composites()}
}

// Players lists the normalized pool named by ?pool=, best first. ?limit=N
// truncates the list.
func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, r, http.StatusBadRequest, "invalid limit", h.logger)
			return
		}
		limit = n
	}

	list, sel := h.players.Pool(h.poolParam(r))
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	views := make([]PlayerView, 0, len(list))
	for _, p := range list {
		views = append(views, newPlayerView(p))
	}

	logging.Info(loggerFromContext(r, h.logger), "served player pool",
		logging.FieldPool, string(sel),
		logging.FieldCount, len(views),
	)
	writeJSON(w, http.StatusOK, PoolResponse{Pool: string(sel), Count: len(views), Players: views}, h.logger)
}

// PlayerByID returns one player from the pool named by ?pool=.
func (h *Handler) PlayerByID(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id := r.PathValue("id")
	if strings.TrimSpace(id) == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	p, ok := h.players.PlayerByID(h.poolParam(r), id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "player not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, newPlayerView(p), h.logger)
}
