// Package assistant exposes the evaluation and needs engine as MCP tools so
// agent clients can grade rosters and plan picks.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/evaluation"
	"github.com/preston-bernstein/nba-draft-service/internal/logging"
	"github.com/preston-bernstein/nba-draft-service/internal/needs"
	"github.com/preston-bernstein/nba-draft-service/internal/pool"
)

const (
	serverName       = "nba-draft-assistant"
	defaultListLimit = 25
	maxListLimit     = 500
)

// PlayerSource serves normalized player pools.
type PlayerSource interface {
	Pool(selector string) ([]players.Player, pool.Selector)
}

// ToolInfo names a registered tool.
type ToolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EvaluateRosterArgs is the input of evaluate_roster.
type EvaluateRosterArgs struct {
	Roster []players.Player `json:"roster" jsonschema:"Players on the roster"`
}

// TeamNeedsArgs is the input of team_needs.
type TeamNeedsArgs struct {
	Roster      []players.Player `json:"roster" jsonschema:"Players drafted so far"`
	TotalRounds int              `json:"total_rounds" jsonschema:"Rounds in the draft (must be at least 1)"`
}

// PositionPrioritiesArgs is the input of position_priorities.
type PositionPrioritiesArgs struct {
	Needs needs.PositionNeeds `json:"needs" jsonschema:"Per-position needs as returned by team_needs"`
}

// FeedbackArgs is the input of feedback_for_score.
type FeedbackArgs struct {
	Score int `json:"score" jsonschema:"Final roster score 0-100"`
}

// ListPlayersArgs is the input of list_players.
type ListPlayersArgs struct {
	Pool     string           `json:"pool,omitempty" jsonschema:"current, allTime or combined (default: the service's draft pool, allTime unless configured)"`
	Position players.Position `json:"position,omitempty" jsonschema:"Only players at this primary or secondary position"`
	Limit    int              `json:"limit,omitempty" jsonschema:"Maximum players returned (default 25, capped at 500)"`
}

// Server is an MCP server with the draft tools registered.
type Server struct {
	server    *mcp.Server
	evaluator *evaluation.Evaluator
	players   PlayerSource
	pool      string
	logger    *slog.Logger
	tools     []ToolInfo
}

// Option customizes a Server.
type Option func(*Server)

// WithPlayers registers list_players over src.
func WithPlayers(src PlayerSource) Option {
	return func(s *Server) {
		s.players = src
	}
}

// WithDefaultPool sets the pool list_players reads when the caller names
// none. An empty selector keeps the all-time pool.
func WithDefaultPool(selector string) Option {
	return func(s *Server) {
		if selector != "" {
			s.pool = selector
		}
	}
}

// New builds the MCP server. A nil evaluator uses a default one.
func New(evaluator *evaluation.Evaluator, logger *slog.Logger, version string, opts ...Option) *Server {
	if evaluator == nil {
		evaluator = evaluation.NewEvaluator(logger, nil)
	}
	s := &Server{
		server:    mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil),
		evaluator: evaluator,
		pool:      string(pool.SelectorAllTime),
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	addTool(s, &mcp.Tool{
		Name:        "evaluate_roster",
		Description: "Score a roster across ten weighted categories and return the score, sub-scores and feedback",
	}, s.evaluateRoster)
	addTool(s, &mcp.Tool{
		Name:        "team_needs",
		Description: "Positional coverage of a roster against the per-position target, with ranked priorities",
	}, s.teamNeeds)
	addTool(s, &mcp.Tool{
		Name:        "position_priorities",
		Description: "Rank positions by unmet need, highest first",
	}, s.positionPriorities)
	addTool(s, &mcp.Tool{
		Name:        "feedback_for_score",
		Description: "Qualitative feedback message for a final roster score",
	}, s.feedbackForScore)
	if s.players != nil {
		addTool(s, &mcp.Tool{
			Name:        "list_players",
			Description: "Best available players from a pool, optionally filtered by position",
		}, s.listPlayers)
	}
	return s
}

// Handler serves the MCP streamable HTTP transport.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

// Tools lists the registered tools in registration order.
func (s *Server) Tools() []ToolInfo {
	out := make([]ToolInfo, len(s.tools))
	copy(out, s.tools)
	return out
}

func addTool[T any](s *Server, tool *mcp.Tool, handler func(context.Context, *mcp.CallToolRequest, T) (*mcp.CallToolResult, any, error)) {
	s.tools = append(s.tools, ToolInfo{Name: tool.Name, Description: tool.Description})
	mcp.AddTool(s.server, tool, handler)
}

func (s *Server) evaluateRoster(ctx context.Context, _ *mcp.CallToolRequest, args EvaluateRosterArgs) (*mcp.CallToolResult, any, error) {
	res := s.evaluator.Evaluate(args.Roster)
	logging.Info(logging.FromContext(ctx, s.logger), "mcp roster evaluated",
		logging.FieldCount, len(args.Roster),
		logging.FieldScore, res.Score,
	)
	return toolJSON(res)
}

func (s *Server) teamNeeds(_ context.Context, _ *mcp.CallToolRequest, args TeamNeedsArgs) (*mcp.CallToolResult, any, error) {
	report, err := needs.Analyze(args.Roster, args.TotalRounds)
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSON(report)
}

func (s *Server) positionPriorities(_ context.Context, _ *mcp.CallToolRequest, args PositionPrioritiesArgs) (*mcp.CallToolResult, any, error) {
	if len(args.Needs) == 0 {
		return toolError(errors.New("needs is required")), nil, nil
	}
	list, err := needs.RankPositionPriorities(args.Needs)
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSON(list)
}

func (s *Server) feedbackForScore(_ context.Context, _ *mcp.CallToolRequest, args FeedbackArgs) (*mcp.CallToolResult, any, error) {
	return toolJSON(map[string]any{
		"score":    args.Score,
		"feedback": evaluation.FeedbackForScore(args.Score),
	})
}

func (s *Server) listPlayers(_ context.Context, _ *mcp.CallToolRequest, args ListPlayersArgs) (*mcp.CallToolResult, any, error) {
	if args.Position != "" && !args.Position.Valid() {
		return toolError(fmt.Errorf("unknown position %q", args.Position)), nil, nil
	}
	selector := args.Pool
	if selector == "" {
		selector = s.pool
	}
	limit := args.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	list, sel := s.players.Pool(selector)
	limit = min(limit, maxListLimit, len(list))
	out := make([]players.Player, 0, limit)
	for _, p := range list {
		if len(out) == limit {
			break
		}
		if args.Position == "" || p.PlaysPosition(args.Position) {
			out = append(out, p)
		}
	}
	return toolJSON(map[string]any{"pool": string(sel), "count": len(out), "players": out})
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
