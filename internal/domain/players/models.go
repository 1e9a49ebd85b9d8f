package players

// Position is one of the five basketball positions tracked by the draft.
type Position string

const (
	PointGuard    Position = "PG"
	ShootingGuard Position = "SG"
	SmallForward  Position = "SF"
	PowerForward  Position = "PF"
	Center        Position = "C"
)

// Positions lists the tracked positions in canonical order.
var Positions = []Position{PointGuard, ShootingGuard, SmallForward, PowerForward, Center}

// Valid reports whether p is one of the five tracked positions.
func (p Position) Valid() bool {
	switch p {
	case PointGuard, ShootingGuard, SmallForward, PowerForward, Center:
		return true
	}
	return false
}

// Player represents the normalized player shape. Values are built once when a
// pool loads and are never mutated afterwards.
type Player struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Team              string        `json:"team,omitempty"`
	Height            string        `json:"height"`
	HeightInches      int           `json:"heightInches"`
	PrimaryPosition   Position      `json:"primaryPosition"`
	SecondaryPosition Position      `json:"secondaryPosition,omitempty"`
	Image             string        `json:"image,omitempty"`
	OverallRating     int           `json:"overallRating"`
	InsideScoring     InsideScoring `json:"insideScoring"`
	Shooting          Shooting      `json:"shooting"`
	Playmaking        Playmaking    `json:"playmaking"`
	Defense           Defense       `json:"defense"`
	Athleticism       Athleticism   `json:"athleticism"`
	Intangibles       Intangibles   `json:"intangibles"`
	Badges            Badges        `json:"badges"`
}

// HasSecondary reports whether a secondary position is present.
func (p Player) HasSecondary() bool {
	return p.SecondaryPosition != ""
}

// PlaysPosition reports whether pos is the player's primary or secondary position.
func (p Player) PlaysPosition(pos Position) bool {
	return p.PrimaryPosition == pos || p.SecondaryPosition == pos
}

type InsideScoring struct {
	CloseShot    int `json:"closeShot"`
	Layup        int `json:"layup"`
	StandingDunk int `json:"standingDunk"`
	DrivingDunk  int `json:"drivingDunk"`
	PostControl  int `json:"postControl"`
	PostHook     int `json:"postHook"`
	PostFade     int `json:"postFade"`
}

type Shooting struct {
	MidRange   int `json:"midRange"`
	ThreePoint int `json:"threePoint"`
	FreeThrow  int `json:"freeThrow"`
	ShotIQ     int `json:"shotIQ"`
}

type Playmaking struct {
	PassAccuracy  int `json:"passAccuracy"`
	BallHandle    int `json:"ballHandle"`
	SpeedWithBall int `json:"speedWithBall"`
	PassIQ        int `json:"passIQ"`
	PassVision    int `json:"passVision"`
}

type Defense struct {
	Interior         int `json:"interior"`
	Perimeter        int `json:"perimeter"`
	Steal            int `json:"steal"`
	Block            int `json:"block"`
	DefensiveRebound int `json:"defensiveRebound"`
	OffensiveRebound int `json:"offensiveRebound"`
}

type Athleticism struct {
	Speed    int `json:"speed"`
	Agility  int `json:"agility"`
	Strength int `json:"strength"`
	Vertical int `json:"vertical"`
	Stamina  int `json:"stamina"`
	Hustle   int `json:"hustle"`
}

type Intangibles struct {
	OffensiveConsistency int `json:"offensiveConsistency"`
	DefensiveConsistency int `json:"defensiveConsistency"`
	HelpDefenseIQ        int `json:"helpDefenseIQ"`
	Durability           int `json:"durability"`
}

// Badges holds badge counts by tier and by category. Missing counts are zero.
type Badges struct {
	Legendary      int `json:"legendary"`
	Purple         int `json:"purple"`
	Gold           int `json:"gold"`
	Silver         int `json:"silver"`
	Bronze         int `json:"bronze"`
	OutsideScoring int `json:"outsideScoring"`
	InsideScoring  int `json:"insideScoring"`
	GeneralOffense int `json:"generalOffense"`
	Playmaking     int `json:"playmaking"`
	Defensive      int `json:"defensive"`
	Rebounding     int `json:"rebounding"`
	AllAround      int `json:"allAround"`
	Total          int `json:"total"`
}
