package teams

import (
	"errors"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
)

// ErrTeamFrozen is returned when adding to a roster after the draft completed.
var ErrTeamFrozen = errors.New("team roster is frozen")

// Team is a drafting team. The roster is kept in draft order.
type Team struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	DraftOrder int              `json:"draftOrder"`
	IsUser     bool             `json:"isUser"`
	Roster     []players.Player `json:"roster"`
	Frozen     bool             `json:"frozen"`
}

// New builds an empty team with capacity for one player per round.
func New(id, name string, draftOrder int, isUser bool, rounds int) *Team {
	if rounds < 0 {
		rounds = 0
	}
	return &Team{
		ID:         id,
		Name:       name,
		DraftOrder: draftOrder,
		IsUser:     isUser,
		Roster:     make([]players.Player, 0, rounds),
	}
}

// Add appends a drafted player to the roster.
func (t *Team) Add(p players.Player) error {
	if t.Frozen {
		return ErrTeamFrozen
	}
	t.Roster = append(t.Roster, p)
	return nil
}

// Freeze marks the roster immutable.
func (t *Team) Freeze() {
	t.Frozen = true
}

// RosterSnapshot returns a copy of the roster safe to hand to other goroutines.
func (t *Team) RosterSnapshot() []players.Player {
	out := make([]players.Player, len(t.Roster))
	copy(out, t.Roster)
	return out
}

// Franchise describes an NBA franchise whose name a drafting team can take.
type Franchise struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
}
