package aggregate

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1stats-go/pkg/model"
)

// SeasonSummary holds the quick stats of a season
type SeasonSummary struct {
	Year    int `json:"year"`
	Races   int `json:"races"`
	Drivers int `json:"drivers"`
}

// SeasonsAvailable returns the distinct years of all races, newest first
func (e *Engine) SeasonsAvailable() []int {
	years := lo.Uniq(lo.Map(e.s.Races, func(r model.Race, _ int) int { return r.Year }))
	slices.Sort(years)
	slices.Reverse(years)
	return years
}

// RacesForSeason returns the races of year ordered by round.
// This is the canonical race sequence of a season.
func (e *Engine) RacesForSeason(year int) ([]model.Race, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	return e.racesForSeason(year), nil
}

func (e *Engine) racesForSeason(year int) []model.Race {
	ret := lo.Filter(e.s.Races, func(r model.Race, _ int) bool { return r.Year == year })
	slices.SortStableFunc(ret, func(a, b model.Race) int { return cmp.Compare(a.Round, b.Round) })
	return ret
}

func (e *Engine) lastRaceOfSeason(year int) (model.Race, bool) {
	races := e.racesForSeason(year)
	if len(races) == 0 {
		return model.Race{}, false
	}
	return races[len(races)-1], true
}

func raceIDSet(races []model.Race) map[int]struct{} {
	ret := make(map[int]struct{}, len(races))
	for i := range races {
		ret[races[i].ID] = struct{}{}
	}
	return ret
}

// ResultsForRace returns the results of a race ordered by classification
func (e *Engine) ResultsForRace(raceID int) []model.Result {
	ret := lo.Filter(e.s.Results, func(r model.Result, _ int) bool { return r.RaceID == raceID })
	slices.SortStableFunc(ret, func(a, b model.Result) int {
		return cmp.Compare(a.PositionOrder, b.PositionOrder)
	})
	return ret
}

// SeasonSummary counts the races of a season and the drivers with at least
// one result in it.
func (e *Engine) SeasonSummary(year int) (SeasonSummary, error) {
	if err := validateYear(year); err != nil {
		return SeasonSummary{}, err
	}
	races := e.racesForSeason(year)
	ids := raceIDSet(races)
	drivers := map[int]struct{}{}
	for i := range e.s.Results {
		if _, ok := ids[e.s.Results[i].RaceID]; ok {
			drivers[e.s.Results[i].DriverID] = struct{}{}
		}
	}
	return SeasonSummary{Year: year, Races: len(races), Drivers: len(drivers)}, nil
}
