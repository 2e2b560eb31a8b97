package store

import "github.com/mpapenbr/f1stats-go/pkg/model"

// Store owns all table rows of a loaded dataset.
// It is never mutated once the load phase has finished.
type Store struct {
	Races                []model.Race
	Drivers              []model.Driver
	Constructors         []model.Constructor
	Circuits             []model.Circuit
	Status               []model.Status
	Seasons              []model.Season
	Qualifying           []model.Qualifying
	PitStops             []model.PitStop
	LapTimes             []model.LapTime
	DriverStandings      []model.DriverStanding
	ConstructorStandings []model.ConstructorStanding
	Results              []model.Result
}

// Count returns the number of rows held for t
//
//nolint:cyclop // plain dispatch
func (s *Store) Count(t Table) int {
	switch t {
	case TableRaces:
		return len(s.Races)
	case TableDrivers:
		return len(s.Drivers)
	case TableConstructors:
		return len(s.Constructors)
	case TableCircuits:
		return len(s.Circuits)
	case TableStatus:
		return len(s.Status)
	case TableSeasons:
		return len(s.Seasons)
	case TableQualifying:
		return len(s.Qualifying)
	case TablePitStops:
		return len(s.PitStops)
	case TableLapTimes:
		return len(s.LapTimes)
	case TableDriverStandings:
		return len(s.DriverStandings)
	case TableConstructorStandings:
		return len(s.ConstructorStandings)
	case TableResults:
		return len(s.Results)
	}
	return 0
}
