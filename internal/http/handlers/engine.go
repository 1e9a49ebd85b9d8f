package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/evaluation"
	"github.com/preston-bernstein/nba-draft-service/internal/logging"
	"github.com/preston-bernstein/nba-draft-service/internal/needs"
)

// EvaluateRequest is the body of POST /evaluate.
type EvaluateRequest struct {
	Roster []players.Player `json:"roster"`
}

// NeedsRequest is the body of POST /needs.
type NeedsRequest struct {
	Roster      []players.Player `json:"roster"`
	TotalRounds int              `json:"totalRounds"`
}

// FeedbackResponse is the payload of GET /feedback.
type FeedbackResponse struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Evaluate grades an arbitrary roster.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	var req EvaluateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	res := h.evaluator.Evaluate(req.Roster)
	logging.Info(loggerFromContext(r, h.logger), "roster evaluated",
		logging.FieldCount, len(req.Roster),
		logging.FieldScore, res.Score,
	)
	writeJSON(w, http.StatusOK, res, h.logger)
}

// Needs computes positional needs and priorities for an arbitrary roster.
func (h *Handler) Needs(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	var req NeedsRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	report, err := needs.Analyze(req.Roster, req.TotalRounds)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, report, h.logger)
}

// Feedback maps ?score= to its feedback message.
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	score, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("score")))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid score", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, FeedbackResponse{Score: score, Feedback: evaluation.FeedbackForScore(score)}, h.logger)
}
