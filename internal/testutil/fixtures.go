package testutil

import (
	"fmt"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
)

// SamplePlayer returns a canonical player whose every attribute equals rating.
func SamplePlayer(id string, primary players.Position, rating int) players.Player {
	return players.Player{
		ID:              id,
		Name:            "Player " + id,
		Height:          `6'6"`,
		HeightInches:    78,
		PrimaryPosition: primary,
		OverallRating:   rating,
		InsideScoring: players.InsideScoring{
			CloseShot: rating, Layup: rating, StandingDunk: rating, DrivingDunk: rating,
			PostControl: rating, PostHook: rating, PostFade: rating,
		},
		Shooting:    players.Shooting{MidRange: rating, ThreePoint: rating, FreeThrow: rating, ShotIQ: rating},
		Playmaking:  players.Playmaking{PassAccuracy: rating, BallHandle: rating, SpeedWithBall: rating, PassIQ: rating, PassVision: rating},
		Defense:     players.Defense{Interior: rating, Perimeter: rating, Steal: rating, Block: rating, DefensiveRebound: rating, OffensiveRebound: rating},
		Athleticism: players.Athleticism{Speed: rating, Agility: rating, Strength: rating, Vertical: rating, Stamina: rating, Hustle: rating},
		Intangibles: players.Intangibles{OffensiveConsistency: rating, DefensiveConsistency: rating, HelpDefenseIQ: rating, Durability: rating},
		Badges:      players.Badges{Gold: 2, Silver: 3, Bronze: 5, Total: 10},
	}
}

// SamplePool returns n players with IDs p-1..p-n, cycling through the five
// positions, sorted best first.
func SamplePool(n int) []players.Player {
	out := make([]players.Player, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, SamplePlayer(fmt.Sprintf("p-%d", i+1), players.Positions[i%len(players.Positions)], 99-i))
	}
	return out
}
