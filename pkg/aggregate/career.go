package aggregate

import (
	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"
)

// CareerStats summarizes the complete result history of a driver.
// AvgFinish is null if the driver has no classified finish.
type CareerStats struct {
	DriverID      int               `json:"driverId"`
	Name          string            `json:"name"`
	Nationality   string            `json:"nationality"`
	Races         int               `json:"races"`
	Wins          int               `json:"wins"`
	Podiums       int               `json:"podiums"`
	Poles         int               `json:"poles"`
	Points        float64           `json:"points"`
	AvgFinish     null.Val[float64] `json:"avgFinish"`
	Championships []int             `json:"championships"`
}

type DriverComparison struct {
	Left  CareerStats `json:"left"`
	Right CareerStats `json:"right"`
}

// DriverCareerStats never fails, an unknown driver yields empty statistics
func (e *Engine) DriverCareerStats(driverID int) CareerStats {
	ret := CareerStats{
		DriverID:      driverID,
		Name:          e.idx.DriverName(driverID),
		Nationality:   e.idx.DriverNationality(driverID),
		Championships: e.driverChampionships(driverID),
	}
	points := decimal.Zero
	positions := decimal.Zero
	classified := 0
	for i := range e.s.Results {
		r := &e.s.Results[i]
		if r.DriverID != driverID {
			continue
		}
		ret.Races++
		points = points.Add(decimal.NewFromFloat(r.Points))
		if r.IsWin() {
			ret.Wins++
		}
		if r.IsPodium() {
			ret.Podiums++
		}
		if r.IsPole() {
			ret.Poles++
		}
		if r.IsClassified() {
			positions = positions.Add(decimal.NewFromInt(int64(r.Position.GetOrZero())))
			classified++
		}
	}
	ret.Points = points.InexactFloat64()
	if classified > 0 {
		avg := positions.Div(decimal.NewFromInt(int64(classified))).Round(1)
		ret.AvgFinish = null.From(avg.InexactFloat64())
	}
	return ret
}

// CompareDrivers returns the career cards of two drivers side by side
func (e *Engine) CompareDrivers(left, right int) DriverComparison {
	return DriverComparison{
		Left:  e.DriverCareerStats(left),
		Right: e.DriverCareerStats(right),
	}
}

// driverChampionships returns the seasons (newest first) in which the driver
// held position 1 in the final standings.
func (e *Engine) driverChampionships(driverID int) []int {
	ret := []int{}
	for _, year := range e.SeasonsAvailable() {
		standings := e.driverStandings(year)
		if len(standings) > 0 && standings[0].Position == 1 && standings[0].DriverID == driverID {
			ret = append(ret, year)
		}
	}
	return ret
}
