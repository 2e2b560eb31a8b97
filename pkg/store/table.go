package store

import (
	"errors"
	"fmt"
)

// Table names one of the tabular sources of the dataset
type Table string

const (
	TableRaces                Table = "races"
	TableDrivers              Table = "drivers"
	TableConstructors         Table = "constructors"
	TableCircuits             Table = "circuits"
	TableStatus               Table = "status"
	TableSeasons              Table = "seasons"
	TableQualifying           Table = "qualifying"
	TablePitStops             Table = "pitStops"
	TableLapTimes             Table = "lapTimes"
	TableDriverStandings      Table = "driverStandings"
	TableConstructorStandings Table = "constructorStandings"
	TableResults              Table = "results"
)

var ErrUnknownTable = errors.New("unknown table")

type tableDef struct {
	file    string
	columns []string
}

//nolint:lll // readability
var catalog = map[Table]tableDef{
	TableRaces:                {"races.csv", []string{"raceId", "year", "round", "circuitId", "name", "date"}},
	TableDrivers:              {"drivers.csv", []string{"driverId", "forename", "surname", "nationality"}},
	TableConstructors:         {"constructors.csv", []string{"constructorId", "name"}},
	TableCircuits:             {"circuits.csv", []string{"circuitId", "name", "location", "country", "lat", "lng"}},
	TableStatus:               {"status.csv", []string{"statusId", "status"}},
	TableSeasons:              {"seasons.csv", []string{"year", "url"}},
	TableQualifying:           {"qualifying.csv", []string{"qualifyId", "raceId", "driverId", "constructorId", "number", "position"}},
	TablePitStops:             {"pit_stops.csv", []string{"raceId", "driverId", "stop", "lap", "milliseconds"}},
	TableLapTimes:             {"lap_times.csv", []string{"raceId", "driverId", "lap", "position", "milliseconds"}},
	TableDriverStandings:      {"driver_standings.csv", []string{"driverStandingsId", "raceId", "driverId", "points", "position", "wins"}},
	TableConstructorStandings: {"constructor_standings.csv", []string{"constructorStandingsId", "raceId", "constructorId", "points", "position", "wins"}},
	TableResults:              {"results.csv", []string{"resultId", "raceId", "driverId", "constructorId", "grid", "position", "positionOrder", "points", "laps", "statusId"}},
}

// AllTables returns every known table in load order.
// Independent tables come first, results last since it references all others.
func AllTables() []Table {
	return []Table{
		TableRaces,
		TableDrivers,
		TableConstructors,
		TableCircuits,
		TableStatus,
		TableSeasons,
		TableQualifying,
		TablePitStops,
		TableLapTimes,
		TableDriverStandings,
		TableConstructorStandings,
		TableResults,
	}
}

// DefaultTables is the set loaded by the dashboard. Lap times are large and
// not needed by any query, seasons are derived from races.
func DefaultTables() []Table {
	return []Table{
		TableRaces,
		TableDrivers,
		TableConstructors,
		TableCircuits,
		TableStatus,
		TableQualifying,
		TablePitStops,
		TableDriverStandings,
		TableConstructorStandings,
		TableResults,
	}
}

func ParseTable(name string) (Table, error) {
	if _, ok := catalog[Table(name)]; ok {
		return Table(name), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownTable, name)
}

func (t Table) FileName() string {
	return catalog[t].file
}

func (t Table) Columns() []string {
	return catalog[t].columns
}

func (t Table) String() string {
	return string(t)
}
