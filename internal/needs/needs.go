// Package needs derives per-position drafting needs and priorities from a
// roster in progress.
package needs

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
)

// ErrInvalidArgument is returned when needs carry a non-positive target.
var ErrInvalidArgument = errors.New("invalid argument")

const (
	primaryWeight   = 1.0
	secondaryWeight = 0.5
	// Each position targets 20% of the draft rounds.
	targetShare = 0.2
)

// Need is the fractional count of a position on a roster and its target.
type Need struct {
	Current float64 `json:"current"`
	Target  int     `json:"target"`
}

// PositionNeeds maps each tracked position to its need.
type PositionNeeds map[players.Position]Need

// Priority is a position's relative shortfall.
type Priority struct {
	Position players.Position `json:"position"`
	Priority float64          `json:"priority"`
}

// PriorityList is ordered most-needed first.
type PriorityList []Priority

// Target returns the per-position target for a draft of totalRounds.
func Target(totalRounds int) int {
	return int(math.Ceil(float64(totalRounds) * targetShare))
}

// ComputeTeamNeeds counts each tracked position on roster, with primary
// positions worth 1 and secondary positions worth 0.5, against a uniform target.
func ComputeTeamNeeds(roster []players.Player, totalRounds int) PositionNeeds {
	counts := make(map[players.Position]float64, len(players.Positions))
	for _, p := range roster {
		if p.PrimaryPosition.Valid() {
			counts[p.PrimaryPosition] += primaryWeight
		}
		if p.HasSecondary() && p.SecondaryPosition.Valid() {
			counts[p.SecondaryPosition] += secondaryWeight
		}
	}

	target := Target(totalRounds)
	out := make(PositionNeeds, len(players.Positions))
	for _, pos := range players.Positions {
		out[pos] = Need{Current: counts[pos], Target: target}
	}
	return out
}

// RankPositionPriorities orders positions by (target-current)/target,
// descending. Ties keep canonical position order.
func RankPositionPriorities(needs PositionNeeds) (PriorityList, error) {
	out := make(PriorityList, 0, len(needs))
	for _, pos := range orderedPositions(needs) {
		need := needs[pos]
		if need.Target <= 0 {
			return nil, fmt.Errorf("%w: target for %s is %d", ErrInvalidArgument, pos, need.Target)
		}
		target := float64(need.Target)
		out = append(out, Priority{Position: pos, Priority: (target - need.Current) / target})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out, nil
}

// orderedPositions yields the canonical positions first, then any others
// sorted by name so map iteration never affects the result.
func orderedPositions(needs PositionNeeds) []players.Position {
	out := make([]players.Position, 0, len(needs))
	for _, pos := range players.Positions {
		if _, ok := needs[pos]; ok {
			out = append(out, pos)
		}
	}
	var extra []players.Position
	for pos := range needs {
		if !pos.Valid() {
			extra = append(extra, pos)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(out, extra...)
}

// Top returns the highest priority entry with a positive shortfall.
func (l PriorityList) Top() (Priority, bool) {
	if len(l) == 0 || l[0].Priority <= 0 {
		return Priority{}, false
	}
	return l[0], true
}

// Report bundles a roster's needs with their ranked priorities.
type Report struct {
	Needs      PositionNeeds `json:"needs"`
	Priorities PriorityList  `json:"priorities"`
}

// Analyze computes needs for roster and ranks them.
func Analyze(roster []players.Player, totalRounds int) (Report, error) {
	n := ComputeTeamNeeds(roster, totalRounds)
	pl, err := RankPositionPriorities(n)
	if err != nil {
		return Report{}, err
	}
	return Report{Needs: n, Priorities: pl}, nil
}
