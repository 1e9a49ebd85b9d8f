package draft

import (
	"errors"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/needs"
)

// ErrNoPlayers is returned by a strategy given an empty pool.
var ErrNoPlayers = errors.New("no players available")

// Strategy picks a player for a team given its ranked positional needs.
type Strategy interface {
	Choose(priorities needs.PriorityList, available []players.Player) (players.Player, error)
}

// NeedsStrategy fills the most urgent open position with the best player
// who plays it, preferring primary-position matches over secondary ones.
// With every position filled it takes the best player left.
type NeedsStrategy struct{}

func (NeedsStrategy) Choose(priorities needs.PriorityList, available []players.Player) (players.Player, error) {
	if len(available) == 0 {
		return players.Player{}, ErrNoPlayers
	}
	for _, pr := range priorities {
		if pr.Priority <= 0 {
			break
		}
		if p, ok := best(available, func(p players.Player) bool { return p.PrimaryPosition == pr.Position }); ok {
			return p, nil
		}
		if p, ok := best(available, func(p players.Player) bool { return p.SecondaryPosition == pr.Position }); ok {
			return p, nil
		}
	}
	p, _ := best(available, func(players.Player) bool { return true })
	return p, nil
}

// BestAvailableStrategy ignores needs and takes the top-rated player.
type BestAvailableStrategy struct{}

func (BestAvailableStrategy) Choose(_ needs.PriorityList, available []players.Player) (players.Player, error) {
	p, ok := best(available, func(players.Player) bool { return true })
	if !ok {
		return players.Player{}, ErrNoPlayers
	}
	return p, nil
}

// best returns the highest-rated player matching keep. The earliest wins a tie.
func best(available []players.Player, keep func(players.Player) bool) (players.Player, bool) {
	found := -1
	for i, p := range available {
		if !keep(p) {
			continue
		}
		if found < 0 || p.OverallRating > available[found].OverallRating {
			found = i
		}
	}
	if found < 0 {
		return players.Player{}, false
	}
	return available[found], true
}
