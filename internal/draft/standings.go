package draft

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/evaluation"
)

// TeamResult is one team's graded roster.
type TeamResult struct {
	TeamID     string            `json:"teamId"`
	TeamName   string            `json:"teamName"`
	DraftOrder int               `json:"draftOrder"`
	IsUser     bool              `json:"isUser"`
	Roster     []players.Player  `json:"roster"`
	Evaluation evaluation.Result `json:"evaluation"`
}

// Results are the standings of a draft: the user's team and the AI teams
// ranked by score, best first.
type Results struct {
	DraftID     string       `json:"draftId"`
	Pool        string       `json:"pool"`
	Rounds      int          `json:"rounds"`
	Complete    bool         `json:"complete"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
	User        TeamResult   `json:"user"`
	AI          []TeamResult `json:"ai"`
}

// Standings evaluates every team concurrently. It may be called mid-draft.
func (s *Session) Standings(ctx context.Context, ev *evaluation.Evaluator) (Results, error) {
	if ev == nil {
		ev = evaluation.NewEvaluator(nil, nil)
	}

	out := make([]TeamResult, len(s.Teams))
	for i, t := range s.Teams {
		out[i] = TeamResult{
			TeamID:     t.ID,
			TeamName:   t.Name,
			DraftOrder: t.DraftOrder,
			IsUser:     t.IsUser,
			Roster:     t.RosterSnapshot(),
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := range out {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i].Evaluation = ev.Evaluate(out[i].Roster)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Results{}, err
	}

	res := Results{
		DraftID:  s.ID,
		Pool:     s.Pool,
		Rounds:   s.Rounds,
		Complete: s.Complete,
		AI:       make([]TeamResult, 0, len(out)),
	}
	if s.CompletedAt != nil {
		at := *s.CompletedAt
		res.CompletedAt = &at
	}
	for _, r := range out {
		if r.IsUser {
			res.User = r
			continue
		}
		res.AI = append(res.AI, r)
	}
	sort.SliceStable(res.AI, func(i, j int) bool {
		return res.AI[i].Evaluation.Score > res.AI[j].Evaluation.Score
	})
	return res, nil
}
