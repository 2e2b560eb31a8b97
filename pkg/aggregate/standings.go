package aggregate

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/mpapenbr/f1stats-go/pkg/model"
)

const progressionTopN = 10

type DriverStandingRow struct {
	model.DriverStanding
	DriverName  string `json:"driverName"`
	Nationality string `json:"nationality"`
}

type ConstructorStandingRow struct {
	model.ConstructorStanding
	ConstructorName string `json:"constructorName"`
}

type ProgressionPoint struct {
	Round    int     `json:"round"`
	RaceName string  `json:"raceName"`
	Points   float64 `json:"points"`
}

// ProgressionSeries holds the points of one entity after every race of a season
type ProgressionSeries struct {
	ID     int                `json:"id"`
	Name   string             `json:"name"`
	Color  string             `json:"color"`
	Points []ProgressionPoint `json:"points"`
}

func (p *ProgressionSeries) final() float64 {
	if len(p.Points) == 0 {
		return 0
	}
	return p.Points[len(p.Points)-1].Points
}

// DriverStandings returns the standings attached to the last race of the
// season ordered by position.
func (e *Engine) DriverStandings(year int) ([]DriverStandingRow, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	return e.driverStandings(year), nil
}

func (e *Engine) driverStandings(year int) []DriverStandingRow {
	last, ok := e.lastRaceOfSeason(year)
	if !ok {
		return []DriverStandingRow{}
	}
	ret := []DriverStandingRow{}
	for i := range e.s.DriverStandings {
		s := &e.s.DriverStandings[i]
		if s.RaceID != last.ID {
			continue
		}
		ret = append(ret, DriverStandingRow{
			DriverStanding: *s,
			DriverName:     e.idx.DriverName(s.DriverID),
			Nationality:    e.idx.DriverNationality(s.DriverID),
		})
	}
	slices.SortStableFunc(ret, func(a, b DriverStandingRow) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return ret
}

// ConstructorStandings is the constructor counterpart of DriverStandings
func (e *Engine) ConstructorStandings(year int) ([]ConstructorStandingRow, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	last, ok := e.lastRaceOfSeason(year)
	if !ok {
		return []ConstructorStandingRow{}, nil
	}
	ret := []ConstructorStandingRow{}
	for i := range e.s.ConstructorStandings {
		s := &e.s.ConstructorStandings[i]
		if s.RaceID != last.ID {
			continue
		}
		ret = append(ret, ConstructorStandingRow{
			ConstructorStanding: *s,
			ConstructorName:     e.idx.ConstructorName(s.ConstructorID),
		})
	}
	slices.SortStableFunc(ret, func(a, b ConstructorStandingRow) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return ret, nil
}

// ChampionshipProgression uses FillZero for rounds without a standings row
func (e *Engine) ChampionshipProgression(year int, kind EntityKind) ([]ProgressionSeries, error) {
	return e.ChampionshipProgressionWithPolicy(year, kind, FillZero)
}

// ChampionshipProgressionWithPolicy builds the points series of every entity
// with a standings row in the season. Only entities with positive points after
// the final round are kept, ordered by those points (ties keep discovery order)
// and limited to the top 10.
//
//nolint:whitespace,funlen // readability
func (e *Engine) ChampionshipProgressionWithPolicy(
	year int, kind EntityKind, policy FillPolicy,
) ([]ProgressionSeries, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	if err := kind.validate(); err != nil {
		return nil, err
	}
	if err := policy.validate(); err != nil {
		return nil, err
	}
	races := e.racesForSeason(year)
	if len(races) == 0 {
		return []ProgressionSeries{}, nil
	}
	inSeason := raceIDSet(races)

	type key struct{ race, entity int }
	pointsByKey := map[key]float64{}
	entities := []int{}
	seen := map[int]struct{}{}
	collect := func(raceID, entityID int, points float64) {
		if _, ok := inSeason[raceID]; !ok {
			return
		}
		if _, ok := seen[entityID]; !ok {
			seen[entityID] = struct{}{}
			entities = append(entities, entityID)
		}
		// first row wins on duplicates
		k := key{raceID, entityID}
		if _, ok := pointsByKey[k]; !ok {
			pointsByKey[k] = points
		}
	}
	if kind == KindDriver {
		for i := range e.s.DriverStandings {
			s := &e.s.DriverStandings[i]
			collect(s.RaceID, s.DriverID, s.Points)
		}
	} else {
		for i := range e.s.ConstructorStandings {
			s := &e.s.ConstructorStandings[i]
			collect(s.RaceID, s.ConstructorID, s.Points)
		}
	}

	series := make([]ProgressionSeries, 0, len(entities))
	for _, id := range entities {
		points := make([]ProgressionPoint, len(races))
		carry := 0.0
		for i := range races {
			p, ok := pointsByKey[key{races[i].ID, id}]
			if !ok && policy == FillForward {
				p = carry
			}
			carry = p
			points[i] = ProgressionPoint{Round: races[i].Round, RaceName: races[i].Name, Points: p}
		}
		series = append(series, ProgressionSeries{
			ID:     id,
			Name:   e.entityName(kind, id),
			Color:  EntityColor(id),
			Points: points,
		})
	}

	series = lo.Filter(series, func(s ProgressionSeries, _ int) bool { return s.final() > 0 })
	slices.SortStableFunc(series, func(a, b ProgressionSeries) int {
		return cmp.Compare(b.final(), a.final())
	})
	if len(series) > progressionTopN {
		series = series[:progressionTopN]
	}
	return series, nil
}

func (e *Engine) entityName(kind EntityKind, id int) string {
	if kind == KindDriver {
		return e.idx.DriverName(id)
	}
	return e.idx.ConstructorName(id)
}
