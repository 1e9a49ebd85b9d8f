package pool

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// RawPlayer is a player record as it appears in the source datasets.
type RawPlayer struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Team              string    `json:"team"`
	Height            string    `json:"height"`
	PrimaryPosition   string    `json:"primaryPosition"`
	SecondaryPosition string    `json:"secondaryPosition"`
	ProfilePicture    string    `json:"profilePicture"`
	OverallAttribute  RawRating `json:"overallAttribute"`

	CloseShot    int `json:"closeShot"`
	Layup        int `json:"layup"`
	StandingDunk int `json:"standingDunk"`
	DrivingDunk  int `json:"drivingDunk"`
	PostControl  int `json:"postControl"`
	PostHook     int `json:"postHook"`
	PostFade     int `json:"postFade"`

	MidRangeShot   int `json:"midRangeShot"`
	ThreePointShot int `json:"threePointShot"`
	FreeThrow      int `json:"freeThrow"`
	ShotIQ         int `json:"shotIQ"`

	PassAccuracy  int `json:"passAccuracy"`
	BallHandle    int `json:"ballHandle"`
	SpeedWithBall int `json:"speedWithBall"`
	PassIQ        int `json:"passIQ"`
	PassVision    int `json:"passVision"`

	InteriorDefense  int `json:"interiorDefense"`
	PerimeterDefense int `json:"perimeterDefense"`
	Steal            int `json:"steal"`
	Block            int `json:"block"`
	DefensiveRebound int `json:"defensiveRebound"`
	OffensiveRebound int `json:"offensiveRebound"`

	Speed    int `json:"speed"`
	Agility  int `json:"agility"`
	Strength int `json:"strength"`
	Vertical int `json:"vertical"`
	Stamina  int `json:"stamina"`
	Hustle   int `json:"hustle"`

	OffensiveConsistency int `json:"offensiveConsistency"`
	DefensiveConsistency int `json:"defensiveConsistency"`
	HelpDefenseIQ        int `json:"helpDefenseIQ"`
	OverallDurability    int `json:"overallDurability"`

	LegendaryBadgeCount      int `json:"legendaryBadgeCount"`
	PurpleBadgeCount         int `json:"purpleBadgeCount"`
	GoldBadgeCount           int `json:"goldBadgeCount"`
	SilverBadgeCount         int `json:"silverBadgeCount"`
	BronzeBadgeCount         int `json:"bronzeBadgeCount"`
	OutsideScoringBadgeCount int `json:"outsideScoringBadgeCount"`
	InsideScoringBadgeCount  int `json:"insideScoringBadgeCount"`
	GeneralOffenseBadgeCount int `json:"generalOffenseBadgeCount"`
	PlaymakingBadgeCount     int `json:"playmakingBadgeCount"`
	DefensiveBadgeCount      int `json:"defensiveBadgeCount"`
	ReboundingBadgeCount     int `json:"reboundingBadgeCount"`
	AllAroundBadgeCount      int `json:"allAroundBadgeCount"`
	BadgeCount               int `json:"badgeCount"`
}

// UnmarshalJSON decodes a record, accepting an id given as a JSON string or
// number.
func (p *RawPlayer) UnmarshalJSON(data []byte) error {
	type plain RawPlayer
	aux := struct {
		*plain
		ID json.RawMessage `json:"id"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	id, err := decodeID(aux.ID)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}

func decodeID(data json.RawMessage) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		return s, err
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", fmt.Errorf("id must be a string or number: %w", err)
	}
	return n.String(), nil
}

// RawRating holds the overall-rating attribute, which the datasets store as
// either a JSON string or a JSON number. Numbers are kept in integer form
// (1e2 becomes "100", 87.9 becomes "87").
type RawRating string

// Present reports whether the attribute was supplied at all.
func (r RawRating) Present() bool {
	return r != ""
}

func (r *RawRating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RawRating(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = RawRating(integerForm(n))
	return nil
}

// integerForm truncates n toward zero. Values outside the int64 range keep
// their literal text.
func integerForm(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return n.String()
	}
	return strconv.FormatInt(int64(math.Trunc(f)), 10)
}

func (r RawRating) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(r))), nil
}
