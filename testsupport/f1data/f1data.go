// Package f1data provides a small but complete dataset for tests.
//
// Seasons 2016 (two races, Rosberg champion) and 2023 (three races stored out
// of round order, Verstappen champion). The circuit Zandvoort hosts no race.
package f1data

import (
	"github.com/aarondl/opt/null"

	"github.com/mpapenbr/f1stats-go/pkg/dataset"
	"github.com/mpapenbr/f1stats-go/pkg/model"
	"github.com/mpapenbr/f1stats-go/pkg/store"
)

const (
	Hamilton   = 1
	Verstappen = 2
	Leclerc    = 3
	Rosberg    = 4

	Mercedes = 1
	RedBull  = 2
	Ferrari  = 3

	Silverstone = 1
	Monza       = 2
	Spa         = 3
	Zandvoort   = 4
)

func SampleDataset() *dataset.Dataset {
	return dataset.New(SampleStore())
}

//nolint:funlen // test data
func SampleStore() *store.Store {
	return &store.Store{
		Races: []model.Race{
			{ID: 10, Year: 2016, Round: 1, CircuitID: Silverstone, Name: "British Grand Prix"},
			{ID: 11, Year: 2016, Round: 2, CircuitID: Monza, Name: "Italian Grand Prix"},
			{ID: 21, Year: 2023, Round: 2, CircuitID: Monza, Name: "Italian Grand Prix"},
			{ID: 20, Year: 2023, Round: 1, CircuitID: Silverstone, Name: "British Grand Prix"},
			{ID: 22, Year: 2023, Round: 3, CircuitID: Spa, Name: "Belgian Grand Prix"},
		},
		Drivers: []model.Driver{
			driver(Hamilton, "Lewis", "Hamilton", "British"),
			driver(Verstappen, "Max", "Verstappen", "Dutch"),
			driver(Leclerc, "Charles", "Leclerc", "Monegasque"),
			driver(Rosberg, "Nico", "Rosberg", "German"),
		},
		Constructors: []model.Constructor{
			{ID: Mercedes, Name: "Mercedes"},
			{ID: RedBull, Name: "Red Bull"},
			{ID: Ferrari, Name: "Ferrari"},
		},
		Circuits: []model.Circuit{
			{ID: Silverstone, Name: "Silverstone Circuit", Location: "Silverstone", Country: "UK", Lat: 52.0786, Lng: -1.01694},
			{ID: Monza, Name: "Autodromo Nazionale di Monza", Location: "Monza", Country: "Italy", Lat: 45.6156, Lng: 9.28111},
			{ID: Spa, Name: "Circuit de Spa-Francorchamps", Location: "Spa", Country: "Belgium", Lat: 50.4372, Lng: 5.97139},
			{ID: Zandvoort, Name: "Circuit Park Zandvoort", Location: "Zandvoort", Country: "Netherlands", Lat: 52.3888, Lng: 4.54092},
		},
		Status: []model.Status{{ID: 1, Status: "Finished"}, {ID: 5, Status: "Engine"}},
		Results: []model.Result{
			result(1, 10, Hamilton, Mercedes, 1, pos(1), 1, 25),
			result(2, 10, Rosberg, Mercedes, 2, pos(2), 2, 18),
			result(3, 10, Leclerc, Ferrari, 3, dnf(), 3, 0),
			result(4, 11, Rosberg, Mercedes, 2, pos(1), 1, 25),
			result(5, 11, Leclerc, Ferrari, 3, pos(2), 2, 18),
			result(6, 11, Hamilton, Mercedes, 1, pos(3), 3, 15),
			result(7, 20, Verstappen, RedBull, 1, pos(1), 1, 25),
			result(8, 20, Hamilton, Mercedes, 3, pos(2), 2, 18),
			result(9, 20, Leclerc, Ferrari, 2, pos(3), 3, 15),
			result(10, 21, Verstappen, RedBull, 1, pos(1), 1, 25),
			result(11, 21, Leclerc, Ferrari, 2, pos(2), 2, 18),
			result(12, 21, Hamilton, Mercedes, 3, dnf(), 3, 0),
			result(13, 22, Hamilton, Mercedes, 2, pos(1), 1, 25),
			result(14, 22, Verstappen, RedBull, 1, pos(2), 2, 18),
			result(15, 22, Leclerc, Ferrari, 4, pos(3), 3, 15),
		},
		DriverStandings: []model.DriverStanding{
			{ID: 1, RaceID: 10, DriverID: Hamilton, Points: 25, Position: 1, Wins: 1},
			{ID: 2, RaceID: 10, DriverID: Rosberg, Points: 18, Position: 2},
			{ID: 3, RaceID: 10, DriverID: Leclerc, Points: 0, Position: 3},
			{ID: 4, RaceID: 11, DriverID: Hamilton, Points: 40, Position: 2, Wins: 1},
			{ID: 5, RaceID: 11, DriverID: Rosberg, Points: 43, Position: 1, Wins: 1},
			{ID: 6, RaceID: 11, DriverID: Leclerc, Points: 18, Position: 3},
			{ID: 7, RaceID: 20, DriverID: Verstappen, Points: 25, Position: 1, Wins: 1},
			{ID: 8, RaceID: 20, DriverID: Hamilton, Points: 18, Position: 2},
			{ID: 9, RaceID: 20, DriverID: Leclerc, Points: 15, Position: 3},
			{ID: 10, RaceID: 20, DriverID: Rosberg, Points: 1, Position: 4},
			// Hamilton has no row after round 2
			{ID: 11, RaceID: 21, DriverID: Verstappen, Points: 50, Position: 1, Wins: 2},
			{ID: 12, RaceID: 21, DriverID: Leclerc, Points: 33, Position: 2},
			{ID: 13, RaceID: 22, DriverID: Verstappen, Points: 68, Position: 1, Wins: 2},
			{ID: 14, RaceID: 22, DriverID: Leclerc, Points: 48, Position: 2},
			{ID: 15, RaceID: 22, DriverID: Hamilton, Points: 43, Position: 3, Wins: 1},
			{ID: 16, RaceID: 22, DriverID: Rosberg, Points: 0, Position: 4},
		},
		ConstructorStandings: []model.ConstructorStanding{
			{ID: 1, RaceID: 10, ConstructorID: Mercedes, Points: 43, Position: 1, Wins: 1},
			{ID: 2, RaceID: 10, ConstructorID: Ferrari, Points: 0, Position: 2},
			{ID: 3, RaceID: 11, ConstructorID: Mercedes, Points: 83, Position: 1, Wins: 2},
			{ID: 4, RaceID: 11, ConstructorID: Ferrari, Points: 18, Position: 2},
			{ID: 5, RaceID: 20, ConstructorID: RedBull, Points: 25, Position: 1, Wins: 1},
			{ID: 6, RaceID: 20, ConstructorID: Mercedes, Points: 18, Position: 2},
			{ID: 7, RaceID: 20, ConstructorID: Ferrari, Points: 15, Position: 3},
			{ID: 8, RaceID: 21, ConstructorID: RedBull, Points: 50, Position: 1, Wins: 2},
			{ID: 9, RaceID: 21, ConstructorID: Ferrari, Points: 33, Position: 2},
			{ID: 10, RaceID: 21, ConstructorID: Mercedes, Points: 18, Position: 3},
			{ID: 11, RaceID: 22, ConstructorID: RedBull, Points: 68, Position: 1, Wins: 2},
			{ID: 12, RaceID: 22, ConstructorID: Ferrari, Points: 48, Position: 2},
			{ID: 13, RaceID: 22, ConstructorID: Mercedes, Points: 43, Position: 3, Wins: 1},
		},
		Qualifying: []model.Qualifying{
			{ID: 1, RaceID: 20, DriverID: Verstappen, ConstructorID: RedBull, Number: 1, Position: 1},
			{ID: 2, RaceID: 20, DriverID: Leclerc, ConstructorID: Ferrari, Number: 16, Position: 2},
		},
		PitStops: []model.PitStop{
			{RaceID: 10, DriverID: Hamilton, Stop: 1, Lap: 15, Milliseconds: 25000},
			{RaceID: 20, DriverID: Hamilton, Stop: 1, Lap: 20, Milliseconds: 22500},
			{RaceID: 20, DriverID: Verstappen, Stop: 1, Lap: 18, Milliseconds: 45000},
			{RaceID: 21, DriverID: Leclerc, Stop: 1, Lap: 0, Milliseconds: 23000},
			{RaceID: 21, DriverID: Verstappen, Stop: 1, Lap: 30, Milliseconds: 17000},
		},
	}
}

func driver(id int, forename, surname, nationality string) model.Driver {
	return model.Driver{
		ID:          id,
		Forename:    forename,
		Surname:     surname,
		FullName:    model.ComposeFullName(forename, surname),
		Nationality: nationality,
	}
}

//nolint:whitespace // readability
func result(
	id, raceID, driverID, constructorID, grid int,
	position null.Val[int], positionOrder int, points float64,
) model.Result {
	return model.Result{
		ID:            id,
		RaceID:        raceID,
		DriverID:      driverID,
		ConstructorID: constructorID,
		Grid:          grid,
		Position:      position,
		PositionOrder: positionOrder,
		Points:        points,
		Laps:          52,
		StatusID:      1,
	}
}

func pos(p int) null.Val[int] { return null.From(p) }
func dnf() null.Val[int]      { return null.Val[int]{} }
