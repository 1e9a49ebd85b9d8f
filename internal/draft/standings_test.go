package draft

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-draft-service/internal/evaluation"
)

func TestStandingsRanksAITeams(t *testing.T) {
	s := newTestSession(t, Options{Rounds: 5, AITeamCount: 4})
	for !s.Complete {
		_, err := s.AutoPick(NeedsStrategy{})
		require.NoError(t, err)
	}

	res, err := s.Standings(context.Background(), evaluation.NewEvaluator(nil, nil))
	require.NoError(t, err)

	assert.Equal(t, s.ID, res.DraftID)
	assert.True(t, res.Complete)
	assert.NotNil(t, res.CompletedAt)
	assert.True(t, res.User.IsUser)
	assert.Len(t, res.User.Roster, 5)
	assert.Equal(t, evaluation.EvaluateRoster(s.UserTeam().Roster), res.User.Evaluation)

	require.Len(t, res.AI, 4)
	for i := 1; i < len(res.AI); i++ {
		assert.GreaterOrEqual(t, res.AI[i-1].Evaluation.Score, res.AI[i].Evaluation.Score)
	}
}

func TestStandingsMidDraft(t *testing.T) {
	s := newTestSession(t, Options{Rounds: 2, AITeamCount: 2})

	res, err := s.Standings(context.Background(), nil)
	require.NoError(t, err)
	assert.False(t, res.Complete)
	assert.Equal(t, 0, res.User.Evaluation.Score)
}

func TestStandingsHonorsCancellation(t *testing.T) {
	s := newTestSession(t, Options{Rounds: 2, AITeamCount: 2})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Standings(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
