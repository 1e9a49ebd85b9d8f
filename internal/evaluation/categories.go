package evaluation

import (
	"math"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
)

// Category names one of the ten evaluation categories.
type Category string

const (
	PositionBalance Category = "positionBalance"
	FloorStretch    Category = "floorStretch"
	Rebounding      Category = "rebounding"
	Defense         Category = "defense"
	Playmaking      Category = "playmaking"
	FreeThrows      Category = "freeThrows"
	Hustle          Category = "hustle"
	ShotIQ          Category = "shotIQ"
	Badges          Category = "badges"
	HeightBalance   Category = "heightBalance"
)

// Weight pairs a category with its share of the final score.
type Weight struct {
	Category Category `json:"category"`
	Weight   int      `json:"weight"`
}

// weights sum to 100.
var weights = []Weight{
	{PositionBalance, 15},
	{FloorStretch, 12},
	{Rebounding, 10},
	{Defense, 15},
	{Playmaking, 10},
	{FreeThrows, 8},
	{Hustle, 8},
	{ShotIQ, 8},
	{Badges, 7},
	{HeightBalance, 7},
}

// Weights returns a copy of the fixed weight table in evaluation order.
func Weights() []Weight {
	out := make([]Weight, len(weights))
	copy(out, weights)
	return out
}

const (
	playmakerThreshold = 85.0
	playmakerShare     = 0.3
	weakFreeThrow      = 75
	badgeTarget        = 20.0

	minHeight      = 72.0 // 6'0"
	idealMinHeight = 78.0 // 6'6"
	idealMaxHeight = 81.0 // 6'9"
	maxHeight      = 84.0 // 7'0"
)

func avg(roster []players.Player, f func(players.Player) float64) float64 {
	sum := 0.0
	for _, p := range roster {
		sum += f(p)
	}
	return sum / float64(len(roster))
}

func positionBalance(roster []players.Player) float64 {
	covered := make(map[players.Position]struct{}, len(players.Positions))
	for _, p := range roster {
		if p.PrimaryPosition.Valid() {
			covered[p.PrimaryPosition] = struct{}{}
		}
		if p.SecondaryPosition.Valid() {
			covered[p.SecondaryPosition] = struct{}{}
		}
	}
	return float64(len(covered)) / float64(len(players.Positions)) * 100
}

func floorStretch(roster []players.Player) float64 {
	three := avg(roster, func(p players.Player) float64 { return float64(p.Shooting.ThreePoint) })
	mid := avg(roster, func(p players.Player) float64 { return float64(p.Shooting.MidRange) })
	inside := avg(roster, func(p players.Player) float64 {
		in := p.InsideScoring
		return float64(in.Layup+in.StandingDunk+in.DrivingDunk) / 3
	})
	return 100 - (math.Abs(three-mid)+math.Abs(mid-inside))/2
}

func rebounding(roster []players.Player) float64 {
	off := avg(roster, func(p players.Player) float64 { return float64(p.Defense.OffensiveRebound) })
	def := avg(roster, func(p players.Player) float64 { return float64(p.Defense.DefensiveRebound) })
	return off*0.4 + def*0.6
}

func defense(roster []players.Player) float64 {
	interior := avg(roster, func(p players.Player) float64 { return float64(p.Defense.Interior) })
	perimeter := avg(roster, func(p players.Player) float64 { return float64(p.Defense.Perimeter) })
	help := avg(roster, func(p players.Player) float64 { return float64(p.Intangibles.HelpDefenseIQ) })
	return interior*0.35 + perimeter*0.35 + help*0.3
}

func playmaking(roster []players.Player) float64 {
	playmakers := 0
	for _, p := range roster {
		pm := p.Playmaking
		if float64(pm.PassAccuracy+pm.PassIQ+pm.PassVision)/3 >= playmakerThreshold {
			playmakers++
		}
	}
	return math.Min(100, float64(playmakers)/(float64(len(roster))*playmakerShare)*100)
}

func freeThrows(roster []players.Player) float64 {
	weak := 0
	for _, p := range roster {
		if p.Shooting.FreeThrow < weakFreeThrow {
			weak++
		}
	}
	return 100 - float64(weak)/float64(len(roster))*100
}

func hustle(roster []players.Player) float64 {
	return avg(roster, func(p players.Player) float64 { return float64(p.Athleticism.Hustle) })
}

func shotIQ(roster []players.Player) float64 {
	return avg(roster, func(p players.Player) float64 { return float64(p.Shooting.ShotIQ) })
}

func badges(roster []players.Player) float64 {
	total := avg(roster, func(p players.Player) float64 { return float64(p.Badges.Total) })
	return math.Min(100, total/badgeTarget*100)
}

// HeightScore grades an average height in inches: 100 inside 6'6"-6'9",
// linear ramps on either side, 0 below 6'0" or from 7'0" up.
func HeightScore(avgInches float64) float64 {
	var score float64
	switch {
	case avgInches < minHeight:
		score = 0
	case avgInches >= idealMinHeight && avgInches <= idealMaxHeight:
		score = 100
	case avgInches < idealMinHeight:
		score = (avgInches - minHeight) / (idealMinHeight - minHeight) * 100
	default:
		score = math.Max(0, 100-(avgInches-idealMaxHeight)/(maxHeight-idealMaxHeight)*100)
	}
	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
