// Package evaluation grades a finished roster across ten weighted categories
// and maps the final score onto a feedback message.
package evaluation

import (
	"log/slog"
	"math"
	"time"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/logging"
	"github.com/preston-bernstein/nba-draft-service/internal/metrics"
)

// Result is the outcome of evaluating one roster.
type Result struct {
	Score     int                  `json:"score"`
	SubScores map[Category]float64 `json:"subScores"`
	Feedback  string               `json:"feedback"`
}

type calculator func([]players.Player) float64

// Evaluator scores rosters. The zero value is usable.
type Evaluator struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewEvaluator builds an Evaluator. Both arguments may be nil.
func NewEvaluator(logger *slog.Logger, recorder *metrics.Recorder) *Evaluator {
	return &Evaluator{logger: logger, metrics: recorder, now: time.Now}
}

var defaultEvaluator = &Evaluator{}

// EvaluateRoster scores roster without logging or metrics.
func EvaluateRoster(roster []players.Player) Result {
	return defaultEvaluator.Evaluate(roster)
}

// Evaluate scores roster. An empty roster scores 0 with no sub-scores.
func (e *Evaluator) Evaluate(roster []players.Player) Result {
	start := e.clock()

	if len(roster) == 0 {
		res := Result{Score: 0, SubScores: map[Category]float64{}, Feedback: FeedbackForScore(0)}
		e.metrics.RecordEvaluation(res.Score, 0, e.clock().Sub(start))
		return res
	}

	calculators := map[Category]calculator{
		PositionBalance: positionBalance,
		FloorStretch:    floorStretch,
		Rebounding:      rebounding,
		Defense:         defense,
		Playmaking:      playmaking,
		FreeThrows:      freeThrows,
		Hustle:          hustle,
		ShotIQ:          shotIQ,
		Badges:          badges,
		HeightBalance:   e.heightBalance,
	}

	sub := make(map[Category]float64, len(weights))
	total := 0.0
	for _, w := range weights {
		score := calculators[w.Category](roster)
		sub[w.Category] = score
		total += score * float64(w.Weight) / 100
	}

	final := int(clamp(math.Round(total), 0, 100))
	res := Result{Score: final, SubScores: sub, Feedback: FeedbackForScore(final)}

	e.metrics.RecordEvaluation(final, len(roster), e.clock().Sub(start))
	if e.logger != nil {
		e.logger.Debug("roster evaluated",
			logging.FieldScore, final,
			logging.FieldCount, len(roster),
		)
	}
	return res
}

func (e *Evaluator) heightBalance(roster []players.Player) float64 {
	return HeightScore(avg(roster, func(p players.Player) float64 {
		return float64(e.heightInches(p))
	}))
}

// heightInches prefers the height resolved at normalization. Hand-built
// rosters may only carry the display string.
func (e *Evaluator) heightInches(p players.Player) int {
	if p.HeightInches > 0 {
		return p.HeightInches
	}
	inches, err := players.ParseHeightOrDefault(p.Height)
	if err != nil {
		logging.Warn(e.logger, "height parse failed, using default",
			logging.FieldPlayer, p.Name,
			"height", p.Height,
			"default_inches", players.DefaultHeightInches,
		)
		e.metrics.RecordHeightFallback()
	}
	return inches
}

func (e *Evaluator) clock() time.Time {
	if e == nil || e.now == nil {
		return time.Now()
	}
	return e.now()
}
