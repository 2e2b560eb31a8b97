package model

import "github.com/aarondl/opt/null"

// Result is the classification of one driver in one race.
// Position is null when the driver was not classified (DNF, DSQ, ...).
// PositionOrder is dense and covers non-finishers too, it is the sort key.
type Result struct {
	ID            int           `json:"resultId"`
	RaceID        int           `json:"raceId"`
	DriverID      int           `json:"driverId"`
	ConstructorID int           `json:"constructorId"`
	Grid          int           `json:"grid"`
	Position      null.Val[int] `json:"position"`
	PositionOrder int           `json:"positionOrder"`
	Points        float64       `json:"points"`
	Laps          int           `json:"laps"`
	StatusID      int           `json:"statusId"`
}

// IsWin reports position == 1, the only definition of a race win
func (r *Result) IsWin() bool {
	return r.Position.GetOr(0) == 1
}

func (r *Result) IsPodium() bool {
	p, ok := r.Position.Get()
	return ok && p >= 1 && p <= 3
}

func (r *Result) IsPole() bool {
	return r.Grid == 1
}

func (r *Result) IsClassified() bool {
	return r.Position.IsValue()
}

type Qualifying struct {
	ID            int `json:"qualifyId"`
	RaceID        int `json:"raceId"`
	DriverID      int `json:"driverId"`
	ConstructorID int `json:"constructorId"`
	Number        int `json:"number"`
	Position      int `json:"position"`
}
