package aggregate

import "encoding/json"

// OtherConstructor collects wins of constructors missing from the index
const OtherConstructor = "Other"

type Decade struct {
	Name  string
	Start int
	End   int
}

// Decades are the fixed buckets of the dominance view
var Decades = []Decade{
	{"1950s", 1950, 1959},
	{"1960s", 1960, 1969},
	{"1970s", 1970, 1979},
	{"1980s", 1980, 1989},
	{"1990s", 1990, 1999},
	{"2000s", 2000, 2009},
	{"2010s", 2010, 2019},
	{"2020s", 2020, 2024},
}

// DecadeWins maps constructor names to race wins within a decade.
// Constructors without wins in the decade are absent, consumers treat
// missing keys as zero.
type DecadeWins struct {
	Decade string
	Wins   map[string]int
}

// MarshalJSON renders {"decade":"1950s","Ferrari":3,...}
func (d DecadeWins) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(d.Wins)+1)
	for k, v := range d.Wins {
		m[k] = v
	}
	m["decade"] = d.Decade
	return json.Marshal(m)
}

// ConstructorDominance counts race wins per constructor and decade
func (e *Engine) ConstructorDominance() []DecadeWins {
	ret := make([]DecadeWins, len(Decades))
	for i := range Decades {
		ret[i] = DecadeWins{Decade: Decades[i].Name, Wins: map[string]int{}}
	}
	for i := range e.s.Results {
		r := &e.s.Results[i]
		if !r.IsWin() {
			continue
		}
		race, ok := e.idx.Race(r.RaceID)
		if !ok {
			continue
		}
		bucket := decadeOf(race.Year)
		if bucket < 0 {
			continue
		}
		name := OtherConstructor
		if c, ok := e.idx.Constructor(r.ConstructorID); ok {
			name = c.Name
		}
		ret[bucket].Wins[name]++
	}
	return ret
}

func decadeOf(year int) int {
	for i := range Decades {
		if year >= Decades[i].Start && year <= Decades[i].End {
			return i
		}
	}
	return -1
}
