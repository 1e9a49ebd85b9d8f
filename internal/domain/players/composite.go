package players

import "math"

// CompositeRating returns the rounded unweighted mean of ratings, or 0 when empty.
func CompositeRating(ratings ...int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return int(math.Round(float64(sum) / float64(len(ratings))))
}

// Composites summarizes each attribute group as a single composite rating.
type Composites struct {
	InsideScoring int `json:"insideScoring"`
	Shooting      int `json:"shooting"`
	Playmaking    int `json:"playmaking"`
	Defense       int `json:"defense"`
	Athleticism   int `json:"athleticism"`
	Intangibles   int `json:"intangibles"`
}

// Composites computes the per-group composite ratings for the player.
func (p Player) Composites() Composites {
	in, sh, pm, d, a, it := p.InsideScoring, p.Shooting, p.Playmaking, p.Defense, p.Athleticism, p.Intangibles
	return Composites{
		InsideScoring: CompositeRating(in.CloseShot, in.Layup, in.StandingDunk, in.DrivingDunk, in.PostControl, in.PostHook, in.PostFade),
		Shooting:      CompositeRating(sh.MidRange, sh.ThreePoint, sh.FreeThrow, sh.ShotIQ),
		Playmaking:    CompositeRating(pm.PassAccuracy, pm.BallHandle, pm.SpeedWithBall, pm.PassIQ, pm.PassVision),
		Defense:       CompositeRating(d.Interior, d.Perimeter, d.Steal, d.Block, d.DefensiveRebound, d.OffensiveRebound),
		Athleticism:   CompositeRating(a.Speed, a.Agility, a.Strength, a.Vertical, a.Stamina, a.Hustle),
		Intangibles:   CompositeRating(it.OffensiveConsistency, it.DefensiveConsistency, it.HelpDefenseIQ, it.Durability),
	}
}
