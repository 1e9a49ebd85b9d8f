package pool

import "strconv"

type archetype int

const (
	guard archetype = iota
	wing
	big
)

type fixtureRow struct {
	id        string
	name      string
	team      string
	height    string
	primary   string
	secondary string
	overall   int
	kind      archetype
	badges    int
}

var currentRows = []fixtureRow{
	{"cur-1", "Nikola Jokic", "Denver Nuggets", `6'11"`, "C", "", 98, big, 28},
	{"cur-2", "Shai Gilgeous-Alexander", "Oklahoma City Thunder", `6'6"`, "PG", "SG", 97, guard, 24},
	{"cur-3", "Giannis Antetokounmpo", "Milwaukee Bucks", `6'11"`, "PF", "C", 97, big, 25},
	{"cur-4", "Luka Doncic", "Dallas Mavericks", `6'7"`, "PG", "SF", 96, guard, 27},
	{"cur-5", "Jayson Tatum", "Boston Celtics", `6'8"`, "SF", "PF", 95, wing, 22},
	{"cur-6", "Anthony Edwards", "Minnesota Timberwolves", `6'4"`, "SG", "SF", 94, wing, 20},
	{"cur-7", "Stephen Curry", "Golden State Warriors", `6'2"`, "PG", "", 94, guard, 26},
	{"cur-8", "Victor Wembanyama", "San Antonio Spurs", `7'3"`, "C", "PF", 93, big, 18},
	{"cur-9", "LeBron James", "Los Angeles Lakers", `6'9"`, "SF", "PF", 93, wing, 27},
	{"cur-10", "Kevin Durant", "Phoenix Suns", `6'11"`, "PF", "SF", 93, wing, 23},
	{"cur-11", "Anthony Davis", "Los Angeles Lakers", `6'10"`, "PF", "C", 92, big, 19},
	{"cur-12", "Jalen Brunson", "New York Knicks", `6'2"`, "PG", "", 91, guard, 17},
	{"cur-13", "Donovan Mitchell", "Cleveland Cavaliers", `6'3"`, "SG", "PG", 90, guard, 18},
	{"cur-14", "Devin Booker", "Phoenix Suns", `6'5"`, "SG", "PG", 90, guard, 19},
	{"cur-15", "Jaylen Brown", "Boston Celtics", `6'6"`, "SG", "SF", 89, wing, 15},
	{"cur-16", "Kawhi Leonard", "Los Angeles Clippers", `6'7"`, "SF", "", 89, wing, 17},
	{"cur-17", "Tyrese Haliburton", "Indiana Pacers", `6'5"`, "PG", "", 88, guard, 16},
	{"cur-18", "Domantas Sabonis", "Sacramento Kings", `6'10"`, "C", "PF", 88, big, 14},
	{"cur-19", "Bam Adebayo", "Miami Heat", `6'9"`, "C", "PF", 87, big, 12},
	{"cur-20", "Jimmy Butler", "Miami Heat", `6'7"`, "SF", "PF", 87, wing, 14},
	{"cur-21", "Paolo Banchero", "Orlando Magic", `6'10"`, "PF", "", 87, wing, 12},
	{"cur-22", "Trae Young", "Atlanta Hawks", `6'1"`, "PG", "", 87, guard, 15},
	{"cur-23", "De'Aaron Fox", "Sacramento Kings", `6'3"`, "PG", "SG", 86, guard, 13},
	{"cur-24", "Jaren Jackson Jr.", "Memphis Grizzlies", `6'10"`, "PF", "C", 86, big, 11},
	{"cur-25", "Zion Williamson", "New Orleans Pelicans", `6'6"`, "PF", "", 86, big, 10},
	{"cur-26", "Evan Mobley", "Cleveland Cavaliers", `7'0"`, "PF", "C", 86, big, 10},
	{"cur-27", "Karl-Anthony Towns", "New York Knicks", `7'0"`, "C", "PF", 86, big, 13},
	{"cur-28", "Rudy Gobert", "Minnesota Timberwolves", `7'1"`, "C", "", 84, big, 9},
	{"cur-29", "Mikal Bridges", "New York Knicks", `6'6"`, "SF", "SG", 84, wing, 9},
	{"cur-30", "Derrick White", "Boston Celtics", `6'4"`, "SG", "PG", 84, guard, 10},
	{"cur-31", "Jalen Williams", "Oklahoma City Thunder", `6'5"`, "SF", "SG", 84, wing, 9},
	{"cur-32", "Chet Holmgren", "Oklahoma City Thunder", `7'1"`, "C", "PF", 84, big, 8},
	{"cur-33", "Franz Wagner", "Orlando Magic", `6'10"`, "SF", "PF", 84, wing, 8},
	{"cur-34", "Jrue Holiday", "Boston Celtics", `6'4"`, "PG", "SG", 83, guard, 10},
	{"cur-35", "OG Anunoby", "New York Knicks", `6'7"`, "SF", "PF", 82, wing, 7},
	{"cur-36", "Alperen Sengun", "Houston Rockets", `6'11"`, "C", "", 85, big, 11},
}

var allTimeRows = []fixtureRow{
	{"at-1", "Michael Jordan", "Chicago Bulls", `6'6"`, "SG", "SF", 99, wing, 32},
	{"at-2", "Kareem Abdul-Jabbar", "Los Angeles Lakers", `7'2"`, "C", "", 98, big, 28},
	{"at-3", "Magic Johnson", "Los Angeles Lakers", `6'9"`, "PG", "SF", 98, guard, 29},
	{"at-4", "Larry Bird", "Boston Celtics", `6'9"`, "SF", "PF", 97, wing, 28},
	{"at-5", "Shaquille O'Neal", "Los Angeles Lakers", `7'1"`, "C", "", 97, big, 22},
	{"at-6", "Kobe Bryant", "Los Angeles Lakers", `6'6"`, "SG", "SF", 97, wing, 30},
	{"at-7", "Tim Duncan", "San Antonio Spurs", `6'11"`, "PF", "C", 96, big, 22},
	{"at-8", "Hakeem Olajuwon", "Houston Rockets", `7'0"`, "C", "", 96, big, 24},
	{"at-9", "Bill Russell", "Boston Celtics", `6'10"`, "C", "", 95, big, 20},
	{"at-10", "Wilt Chamberlain", "Philadelphia 76ers", `7'1"`, "C", "", 96, big, 21},
	{"at-11", "Dirk Nowitzki", "Dallas Mavericks", `7'0"`, "PF", "C", 94, big, 21},
	{"at-12", "Kevin Garnett", "Boston Celtics", `6'11"`, "PF", "C", 94, big, 20},
	{"at-13", "Oscar Robertson", "Milwaukee Bucks", `6'5"`, "PG", "SG", 94, guard, 23},
	{"at-14", "Jerry West", "Los Angeles Lakers", `6'3"`, "SG", "PG", 93, guard, 22},
	{"at-15", "Allen Iverson", "Philadelphia 76ers", `6'0"`, "SG", "PG", 92, guard, 21},
	{"at-16", "Scottie Pippen", "Chicago Bulls", `6'8"`, "SF", "PF", 92, wing, 18},
	{"at-17", "Dwyane Wade", "Miami Heat", `6'4"`, "SG", "PG", 93, guard, 21},
	{"at-18", "John Stockton", "Utah Jazz", `6'1"`, "PG", "", 91, guard, 19},
	{"at-19", "Karl Malone", "Utah Jazz", `6'9"`, "PF", "", 93, big, 18},
	{"at-20", "Steve Nash", "Phoenix Suns", `6'3"`, "PG", "", 91, guard, 20},
	{"at-21", "Charles Barkley", "Phoenix Suns", `6'6"`, "PF", "", 93, big, 19},
	{"at-22", "Dennis Rodman", "Chicago Bulls", `6'7"`, "PF", "SF", 87, big, 12},
	{"at-23", "Ray Allen", "Boston Celtics", `6'5"`, "SG", "", 90, wing, 17},
	{"at-24", "Isiah Thomas", "Detroit Pistons", `6'1"`, "PG", "", 92, guard, 19},
	{"at-25", "Paul Pierce", "Boston Celtics", `6'7"`, "SF", "SG", 90, wing, 17},
	{"at-26", "Chris Paul", "Los Angeles Clippers", `6'0"`, "PG", "", 92, guard, 20},
	{"at-27", "David Robinson", "San Antonio Spurs", `7'1"`, "C", "", 93, big, 18},
	{"at-28", "Patrick Ewing", "New York Knicks", `7'0"`, "C", "", 91, big, 16},
	{"at-29", "Julius Erving", "Philadelphia 76ers", `6'7"`, "SF", "", 93, wing, 20},
	{"at-30", "Elgin Baylor", "Los Angeles Lakers", `6'5"`, "SF", "", 91, wing, 17},
}

// FixtureCurrent returns a deterministic current-era collection.
func FixtureCurrent() []RawPlayer {
	return buildFixture(currentRows)
}

// FixtureAllTime returns a deterministic all-time collection.
func FixtureAllTime() []RawPlayer {
	return buildFixture(allTimeRows)
}

func buildFixture(rows []fixtureRow) []RawPlayer {
	out := make([]RawPlayer, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.record())
	}
	return out
}

// record derives a full attribute sheet from the overall rating and archetype.
func (r fixtureRow) record() RawPlayer {
	o := r.overall
	var inside, outside, passing, interior, perimeter, rebound int
	switch r.kind {
	case guard:
		inside, outside, passing, interior, perimeter, rebound = -12, 2, 0, -30, -4, -35
	case wing:
		inside, outside, passing, interior, perimeter, rebound = -4, -2, -10, -15, 0, -20
	default:
		inside, outside, passing, interior, perimeter, rebound = 2, -20, -18, 0, -22, 0
	}

	return RawPlayer{
		ID:                r.id,
		Name:              r.name,
		Team:              r.team,
		Height:            r.height,
		PrimaryPosition:   r.primary,
		SecondaryPosition: r.secondary,
		OverallAttribute:  RawRating(strconv.Itoa(o)),

		CloseShot:    attr(o, inside+2),
		Layup:        attr(o, inside+4),
		StandingDunk: attr(o, inside-4),
		DrivingDunk:  attr(o, inside),
		PostControl:  attr(o, inside-6),
		PostHook:     attr(o, inside-10),
		PostFade:     attr(o, inside-8),

		MidRangeShot:   attr(o, outside),
		ThreePointShot: attr(o, outside-3),
		FreeThrow:      attr(o, outside+1),
		ShotIQ:         attr(o, -2),

		PassAccuracy:  attr(o, passing),
		BallHandle:    attr(o, passing+1),
		SpeedWithBall: attr(o, passing-3),
		PassIQ:        attr(o, passing-1),
		PassVision:    attr(o, passing-2),

		InteriorDefense:  attr(o, interior),
		PerimeterDefense: attr(o, perimeter),
		Steal:            attr(o, perimeter-6),
		Block:            attr(o, interior-5),
		DefensiveRebound: attr(o, rebound),
		OffensiveRebound: attr(o, rebound-6),

		Speed:    attr(o, -perimeter/2-6),
		Agility:  attr(o, -perimeter/2-5),
		Strength: attr(o, -interior/2-10),
		Vertical: attr(o, -8),
		Stamina:  attr(o, -3),
		Hustle:   attr(o, -4),

		OffensiveConsistency: attr(o, -1),
		DefensiveConsistency: attr(o, -6),
		HelpDefenseIQ:        attr(o, interior/2-4),
		OverallDurability:    attr(o, -10),

		GoldBadgeCount:   r.badges / 3,
		SilverBadgeCount: r.badges / 3,
		BronzeBadgeCount: r.badges - 2*(r.badges/3),
		BadgeCount:       r.badges,
	}
}

func attr(overall, delta int) int {
	v := overall + delta
	if v < 25 {
		return 25
	}
	if v > 99 {
		return 99
	}
	return v
}
