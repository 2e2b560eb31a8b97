package aggregate

import (
	"cmp"
	"slices"

	"github.com/aarondl/opt/null"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/mpapenbr/f1stats-go/pkg/model"
)

const matrixTopDrivers = 20

type MatrixDriver struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Points float64 `json:"points"`
}

type MatrixCell struct {
	DriverID int           `json:"driverId"`
	Round    int           `json:"round"`
	Position null.Val[int] `json:"position"`
	Points   float64       `json:"points"`
}

// ResultsMatrix is the heatmap of a season: rounds on one axis, the drivers
// with most points on the other.
type ResultsMatrix struct {
	Races   []model.Race   `json:"races"`
	Drivers []MatrixDriver `json:"drivers"`
	Cells   []MatrixCell   `json:"cells"`
}

// ResultsMatrix collects all results of a season. Drivers are ranked by the
// sum of their result points (ties keep first appearance) and limited to 20.
func (e *Engine) ResultsMatrix(year int) (ResultsMatrix, error) {
	if err := validateYear(year); err != nil {
		return ResultsMatrix{}, err
	}
	races := e.racesForSeason(year)
	ret := ResultsMatrix{Races: races, Drivers: []MatrixDriver{}, Cells: []MatrixCell{}}
	if len(races) == 0 {
		return ret, nil
	}
	roundOf := lo.SliceToMap(races, func(r model.Race) (int, int) { return r.ID, r.Round })

	pos := map[int]int{}
	sums := []decimal.Decimal{}
	for i := range e.s.Results {
		r := &e.s.Results[i]
		round, ok := roundOf[r.RaceID]
		if !ok {
			continue
		}
		ret.Cells = append(ret.Cells, MatrixCell{
			DriverID: r.DriverID,
			Round:    round,
			Position: r.Position,
			Points:   r.Points,
		})
		at, ok := pos[r.DriverID]
		if !ok {
			at = len(ret.Drivers)
			pos[r.DriverID] = at
			ret.Drivers = append(ret.Drivers, MatrixDriver{ID: r.DriverID, Name: e.idx.DriverName(r.DriverID)})
			sums = append(sums, decimal.Zero)
		}
		sums[at] = sums[at].Add(decimal.NewFromFloat(r.Points))
	}
	for i := range ret.Drivers {
		ret.Drivers[i].Points = sums[i].InexactFloat64()
	}
	slices.SortStableFunc(ret.Drivers, func(a, b MatrixDriver) int { return cmp.Compare(b.Points, a.Points) })
	ret.Drivers = truncate(ret.Drivers, matrixTopDrivers)
	return ret, nil
}

// SeasonPitStops returns every pit stop recorded for the races of a season
func (e *Engine) SeasonPitStops(year int) ([]model.PitStop, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	inSeason := raceIDSet(e.racesForSeason(year))
	return lo.Filter(e.s.PitStops, func(p model.PitStop, _ int) bool {
		_, ok := inSeason[p.RaceID]
		return ok
	}), nil
}

// DisplayablePitStops keeps the stops within the display band
func DisplayablePitStops(stops []model.PitStop) []model.PitStop {
	return lo.Filter(stops, func(p model.PitStop, _ int) bool { return p.InDisplayBand() })
}
