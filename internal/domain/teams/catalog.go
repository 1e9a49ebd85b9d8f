package teams

import (
	"math/rand/v2"
	"strconv"
)

// Catalog lists the NBA franchises available as team names.
var Catalog = []Franchise{
	{Name: "Atlanta Hawks", Abbreviation: "ATL", City: "Atlanta", Conference: "East", Division: "Southeast"},
	{Name: "Boston Celtics", Abbreviation: "BOS", City: "Boston", Conference: "East", Division: "Atlantic"},
	{Name: "Brooklyn Nets", Abbreviation: "BKN", City: "Brooklyn", Conference: "East", Division: "Atlantic"},
	{Name: "Charlotte Hornets", Abbreviation: "CHA", City: "Charlotte", Conference: "East", Division: "Southeast"},
	{Name: "Chicago Bulls", Abbreviation: "CHI", City: "Chicago", Conference: "East", Division: "Central"},
	{Name: "Cleveland Cavaliers", Abbreviation: "CLE", City: "Cleveland", Conference: "East", Division: "Central"},
	{Name: "Dallas Mavericks", Abbreviation: "DAL", City: "Dallas", Conference: "West", Division: "Southwest"},
	{Name: "Denver Nuggets", Abbreviation: "DEN", City: "Denver", Conference: "West", Division: "Northwest"},
	{Name: "Detroit Pistons", Abbreviation: "DET", City: "Detroit", Conference: "East", Division: "Central"},
	{Name: "Golden State Warriors", Abbreviation: "GSW", City: "San Francisco", Conference: "West", Division: "Pacific"},
	{Name: "Houston Rockets", Abbreviation: "HOU", City: "Houston", Conference: "West", Division: "Southwest"},
	{Name: "Indiana Pacers", Abbreviation: "IND", City: "Indianapolis", Conference: "East", Division: "Central"},
	{Name: "Los Angeles Clippers", Abbreviation: "LAC", City: "Los Angeles", Conference: "West", Division: "Pacific"},
	{Name: "Los Angeles Lakers", Abbreviation: "LAL", City: "Los Angeles", Conference: "West", Division: "Pacific"},
	{Name: "Memphis Grizzlies", Abbreviation: "MEM", City: "Memphis", Conference: "West", Division: "Southwest"},
	{Name: "Miami Heat", Abbreviation: "MIA", City: "Miami", Conference: "East", Division: "Southeast"},
	{Name: "Milwaukee Bucks", Abbreviation: "MIL", City: "Milwaukee", Conference: "East", Division: "Central"},
	{Name: "Minnesota Timberwolves", Abbreviation: "MIN", City: "Minneapolis", Conference: "West", Division: "Northwest"},
	{Name: "New Orleans Pelicans", Abbreviation: "NOP", City: "New Orleans", Conference: "West", Division: "Southwest"},
	{Name: "New York Knicks", Abbreviation: "NYK", City: "New York", Conference: "East", Division: "Atlantic"},
	{Name: "Oklahoma City Thunder", Abbreviation: "OKC", City: "Oklahoma City", Conference: "West", Division: "Northwest"},
	{Name: "Orlando Magic", Abbreviation: "ORL", City: "Orlando", Conference: "East", Division: "Southeast"},
	{Name: "Philadelphia 76ers", Abbreviation: "PHI", City: "Philadelphia", Conference: "East", Division: "Atlantic"},
	{Name: "Phoenix Suns", Abbreviation: "PHX", City: "Phoenix", Conference: "West", Division: "Pacific"},
	{Name: "Portland Trail Blazers", Abbreviation: "POR", City: "Portland", Conference: "West", Division: "Northwest"},
	{Name: "Sacramento Kings", Abbreviation: "SAC", City: "Sacramento", Conference: "West", Division: "Pacific"},
	{Name: "San Antonio Spurs", Abbreviation: "SAS", City: "San Antonio", Conference: "West", Division: "Southwest"},
	{Name: "Toronto Raptors", Abbreviation: "TOR", City: "Toronto", Conference: "East", Division: "Atlantic"},
	{Name: "Utah Jazz", Abbreviation: "UTA", City: "Salt Lake City", Conference: "West", Division: "Northwest"},
	{Name: "Washington Wizards", Abbreviation: "WAS", City: "Washington", Conference: "East", Division: "Southeast"},
}

// RandomNames picks count distinct franchise names, skipping exclude. When the
// catalog runs out, generic names fill the remainder.
func RandomNames(rng *rand.Rand, count int, exclude string) []string {
	available := make([]string, 0, len(Catalog))
	for _, f := range Catalog {
		if f.Name != exclude {
			available = append(available, f.Name)
		}
	}
	rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if i < len(available) {
			names = append(names, available[i])
			continue
		}
		names = append(names, genericName(i+1))
	}
	return names
}

func genericName(n int) string {
	return "Team " + strconv.Itoa(n)
}
