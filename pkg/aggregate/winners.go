package aggregate

import (
	"github.com/aarondl/opt/null"

	"github.com/mpapenbr/f1stats-go/pkg/index"
)

type RaceWinner struct {
	RaceID          int           `json:"raceId"`
	RaceName        string        `json:"race"`
	Round           int           `json:"round"`
	CircuitName     string        `json:"circuit"`
	DriverID        null.Val[int] `json:"driverId"`
	DriverName      string        `json:"driver"`
	ConstructorName string        `json:"constructor"`
}

// RaceWinners returns one row per race of the season in round order. Races
// without a winning result are reported with Unknown names.
// Should the data contain more than one winner for a race, the first wins.
func (e *Engine) RaceWinners(year int) ([]RaceWinner, error) {
	if err := validateYear(year); err != nil {
		return nil, err
	}
	races := e.racesForSeason(year)
	inSeason := raceIDSet(races)
	winners := map[int]int{} // raceID -> index into results
	for i := range e.s.Results {
		r := &e.s.Results[i]
		if _, ok := inSeason[r.RaceID]; !ok || !r.IsWin() {
			continue
		}
		if _, ok := winners[r.RaceID]; !ok {
			winners[r.RaceID] = i
		}
	}

	ret := make([]RaceWinner, 0, len(races))
	for i := range races {
		row := RaceWinner{
			RaceID:          races[i].ID,
			RaceName:        races[i].Name,
			Round:           races[i].Round,
			CircuitName:     e.idx.CircuitName(races[i].CircuitID),
			DriverName:      index.Unknown,
			ConstructorName: index.Unknown,
		}
		if at, ok := winners[races[i].ID]; ok {
			w := &e.s.Results[at]
			row.DriverID = null.From(w.DriverID)
			row.DriverName = e.idx.DriverName(w.DriverID)
			row.ConstructorName = e.idx.ConstructorName(w.ConstructorID)
		}
		ret = append(ret, row)
	}
	return ret, nil
}
