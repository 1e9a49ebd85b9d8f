package pool

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/preston-bernstein/nba-draft-service/internal/domain/players"
	"github.com/preston-bernstein/nba-draft-service/internal/logging"
	"github.com/preston-bernstein/nba-draft-service/internal/metrics"
)

var (
	ErrMissingName   = errors.New("missing name")
	ErrMissingRating = errors.New("missing overall rating")
	ErrInvalidRating = errors.New("overall rating is not a number")
)

// Normalize converts one raw record into the canonical player. Records without
// a name or a numeric overall rating are rejected. An unparsable height falls
// back to players.DefaultHeightInches.
func Normalize(raw RawPlayer) (players.Player, error) {
	if strings.TrimSpace(raw.Name) == "" {
		return players.Player{}, ErrMissingName
	}
	if !raw.OverallAttribute.Present() {
		return players.Player{}, ErrMissingRating
	}
	rating, ok := players.LeadingInt(string(raw.OverallAttribute))
	if !ok {
		return players.Player{}, fmt.Errorf("%w: %q", ErrInvalidRating, string(raw.OverallAttribute))
	}

	heightInches, _ := players.ParseHeightOrDefault(raw.Height)

	return players.Player{
		ID:                raw.ID,
		Name:              raw.Name,
		Team:              raw.Team,
		Height:            raw.Height,
		HeightInches:      heightInches,
		PrimaryPosition:   players.Position(raw.PrimaryPosition),
		SecondaryPosition: players.Position(raw.SecondaryPosition),
		Image:             raw.ProfilePicture,
		OverallRating:     rating,
		InsideScoring: players.InsideScoring{
			CloseShot:    raw.CloseShot,
			Layup:        raw.Layup,
			StandingDunk: raw.StandingDunk,
			DrivingDunk:  raw.DrivingDunk,
			PostControl:  raw.PostControl,
			PostHook:     raw.PostHook,
			PostFade:     raw.PostFade,
		},
		Shooting: players.Shooting{
			MidRange:   raw.MidRangeShot,
			ThreePoint: raw.ThreePointShot,
			FreeThrow:  raw.FreeThrow,
			ShotIQ:     raw.ShotIQ,
		},
		Playmaking: players.Playmaking{
			PassAccuracy:  raw.PassAccuracy,
			BallHandle:    raw.BallHandle,
			SpeedWithBall: raw.SpeedWithBall,
			PassIQ:        raw.PassIQ,
			PassVision:    raw.PassVision,
		},
		Defense: players.Defense{
			Interior:         raw.InteriorDefense,
			Perimeter:        raw.PerimeterDefense,
			Steal:            raw.Steal,
			Block:            raw.Block,
			DefensiveRebound: raw.DefensiveRebound,
			OffensiveRebound: raw.OffensiveRebound,
		},
		Athleticism: players.Athleticism{
			Speed:    raw.Speed,
			Agility:  raw.Agility,
			Strength: raw.Strength,
			Vertical: raw.Vertical,
			Stamina:  raw.Stamina,
			Hustle:   raw.Hustle,
		},
		Intangibles: players.Intangibles{
			OffensiveConsistency: raw.OffensiveConsistency,
			DefensiveConsistency: raw.DefensiveConsistency,
			HelpDefenseIQ:        raw.HelpDefenseIQ,
			Durability:           raw.OverallDurability,
		},
		Badges: players.Badges{
			Legendary:      raw.LegendaryBadgeCount,
			Purple:         raw.PurpleBadgeCount,
			Gold:           raw.GoldBadgeCount,
			Silver:         raw.SilverBadgeCount,
			Bronze:         raw.BronzeBadgeCount,
			OutsideScoring: raw.OutsideScoringBadgeCount,
			InsideScoring:  raw.InsideScoringBadgeCount,
			GeneralOffense: raw.GeneralOffenseBadgeCount,
			Playmaking:     raw.PlaymakingBadgeCount,
			Defensive:      raw.DefensiveBadgeCount,
			Rebounding:     raw.ReboundingBadgeCount,
			AllAround:      raw.AllAroundBadgeCount,
			Total:          raw.BadgeCount,
		},
	}, nil
}

// Result is the outcome of normalizing a collection of raw records.
type Result struct {
	Players []players.Player
	Dropped int
}

// Normalizer normalizes raw collections, logging and counting dropped records
// and height fallbacks.
type Normalizer struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewNormalizer builds a Normalizer. Both arguments may be nil.
func NewNormalizer(logger *slog.Logger, recorder *metrics.Recorder) *Normalizer {
	return &Normalizer{logger: logger, metrics: recorder}
}

// Normalize converts records into a pool sorted best-first by overall rating.
// Ties keep their input order.
func (n *Normalizer) Normalize(records []RawPlayer) Result {
	out := make([]players.Player, 0, len(records))
	dropped := 0
	for i, raw := range records {
		p, err := Normalize(raw)
		if err != nil {
			dropped++
			if n != nil {
				logging.Debug(n.logger, "dropping player record", "index", i, "id", raw.ID, "error", err)
			}
			continue
		}
		if _, err := players.ParseHeight(raw.Height); err != nil && n != nil {
			logging.Warn(n.logger, "height parse failed, using default",
				logging.FieldPlayer, raw.Name,
				"height", raw.Height,
				"default_inches", players.DefaultHeightInches,
			)
			n.metrics.RecordHeightFallback()
		}
		out = append(out, p)
	}

	SortByRating(out)
	return Result{Players: out, Dropped: dropped}
}

// Pool selects the records for selector from src and normalizes them.
func (n *Normalizer) Pool(src Source, selector string) ([]players.Player, Selector) {
	sel, known := ParseSelector(selector)
	if !known && n != nil {
		logging.Warn(n.logger, "unknown player pool, falling back to all-time",
			logging.FieldPool, selector,
		)
	}
	res := n.Normalize(src.Select(sel))
	if n != nil {
		if res.Dropped > 0 {
			logging.Info(n.logger, "dropped invalid player records",
				logging.FieldPool, string(sel),
				logging.FieldDropped, res.Dropped,
			)
		}
		n.metrics.RecordPoolLoad(string(sel), len(res.Players), res.Dropped)
	}
	return res.Players, sel
}

// NormalizePlayerPool is the library entry point: select the pool named by
// selector from src and return it normalized, best players first.
func NormalizePlayerPool(src Source, selector string, logger *slog.Logger) []players.Player {
	out, _ := NewNormalizer(logger, nil).Pool(src, selector)
	return out
}

// SortByRating orders players by descending overall rating, stable on ties.
func SortByRating(list []players.Player) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].OverallRating > list[j].OverallRating
	})
}
