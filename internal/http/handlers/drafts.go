package handlers

import (
	"net/http"
	"strings"

	appdrafts "github.com/preston-bernstein/nba-draft-service/internal/app/drafts"
	"github.com/preston-bernstein/nba-draft-service/internal/draft"
	"github.com/preston-bernstein/nba-draft-service/internal/logging"
)

// DraftView is a session plus the derived state a client needs to render it.
type DraftView struct {
	*draft.Session
	CurrentRound int          `json:"currentRound"`
	OnTheClock   string       `json:"onTheClock,omitempty"`
	UserTeamID   string       `json:"userTeamId"`
	LastPicks    []draft.Pick `json:"lastPicks,omitempty"`
}

// PickRequest is the body of POST /drafts/{id}/picks.
type PickRequest struct {
	PlayerID string `json:"playerId"`
}

func newDraftView(s *draft.Session, made []draft.Pick) DraftView {
	view := DraftView{Session: s, CurrentRound: s.Round(), LastPicks: made}
	if team := s.OnTheClock(); team != nil {
		view.OnTheClock = team.ID
	}
	if user := s.UserTeam(); user != nil {
		view.UserTeamID = user.ID
	}
	return view
}

// Drafts serves GET /drafts (persisted history) and POST /drafts (create).
func (h *Handler) Drafts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListDrafts(w, r)
	case http.MethodPost:
		h.CreateDraft(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// CreateDraft starts a session and runs AI picks up to the user's first turn.
func (h *Handler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	var req appdrafts.CreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	session, err := h.drafts.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, newDraftView(session, session.Picks), h.logger)
}

// ListDrafts returns the persisted draft history, newest first.
func (h *Handler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	entries, err := h.drafts.History()
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": len(entries), "drafts": entries}, h.logger)
}

// GetDraft returns a live session.
func (h *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	session, err := h.drafts.Get(id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, newDraftView(session, nil), h.logger)
}

// Pick drafts a player for the user and advances the AI teams.
func (h *Handler) Pick(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	var req PickRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if strings.TrimSpace(req.PlayerID) == "" {
		writeError(w, r, http.StatusBadRequest, "playerId is required", h.logger)
		return
	}
	session, made, err := h.drafts.Pick(r.Context(), id, req.PlayerID)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "user pick",
		logging.FieldDraftID, id,
		logging.FieldPlayer, req.PlayerID,
		logging.FieldCount, len(made),
	)
	writeJSON(w, http.StatusOK, newDraftView(session, made), h.logger)
}

// Auto makes the current pick automatically and advances the AI teams.
func (h *Handler) Auto(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	session, made, err := h.drafts.Auto(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, newDraftView(session, made), h.logger)
}

// DraftNeeds reports the needs and priorities of ?team= (default: the user).
func (h *Handler) DraftNeeds(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	report, err := h.drafts.Needs(id, strings.TrimSpace(r.URL.Query().Get("team")))
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, report, h.logger)
}

// DraftResults returns the evaluated standings of every team.
func (h *Handler) DraftResults(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}
	res, err := h.drafts.Results(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, res, h.logger)
}

func (h *Handler) draftID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, http.StatusBadRequest, "invalid draft id", h.logger)
		return "", false
	}
	return id, true
}
