package store

import (
	"math"
	"strconv"
	"strings"

	"github.com/aarondl/opt/null"

	"github.com/mpapenbr/f1stats-go/pkg/model"
)

// NullMarker is used by the source files for missing values
const NullMarker = `\N`

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == NullMarker {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// toInt coerces a numeric field, non numeric placeholders become 0
func toInt(s string) int {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return v
	}
	if f, ok := parseFloat(s); ok {
		return int(f)
	}
	return 0
}

func toFloat(s string) float64 {
	v, _ := parseFloat(s)
	return v
}

// toNullInt maps the null marker and any other non numeric placeholder to null.
// It never yields 0 for a missing value.
func toNullInt(s string) null.Val[int] {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return null.From(v)
	}
	if f, ok := parseFloat(s); ok && f == math.Trunc(f) {
		return null.From(int(f))
	}
	return null.Val[int]{}
}

func normalizeRaces(recs []RawRecord) []model.Race {
	ret := make([]model.Race, len(recs))
	for i, r := range recs {
		ret[i] = model.Race{
			ID:        toInt(r.Get("raceId")),
			Year:      toInt(r.Get("year")),
			Round:     toInt(r.Get("round")),
			CircuitID: toInt(r.Get("circuitId")),
			Name:      r.Get("name"),
			Date:      r.Get("date"),
		}
	}
	return ret
}

func normalizeDrivers(recs []RawRecord) []model.Driver {
	ret := make([]model.Driver, len(recs))
	for i, r := range recs {
		ret[i] = model.Driver{
			ID:          toInt(r.Get("driverId")),
			Forename:    r.Get("forename"),
			Surname:     r.Get("surname"),
			FullName:    model.ComposeFullName(r.Get("forename"), r.Get("surname")),
			Nationality: r.Get("nationality"),
		}
	}
	return ret
}

func normalizeConstructors(recs []RawRecord) []model.Constructor {
	ret := make([]model.Constructor, len(recs))
	for i, r := range recs {
		ret[i] = model.Constructor{
			ID:   toInt(r.Get("constructorId")),
			Name: r.Get("name"),
		}
	}
	return ret
}

func normalizeCircuits(recs []RawRecord) []model.Circuit {
	ret := make([]model.Circuit, len(recs))
	for i, r := range recs {
		ret[i] = model.Circuit{
			ID:       toInt(r.Get("circuitId")),
			Name:     r.Get("name"),
			Location: r.Get("location"),
			Country:  r.Get("country"),
			Lat:      toFloat(r.Get("lat")),
			Lng:      toFloat(r.Get("lng")),
		}
	}
	return ret
}

func normalizeStatus(recs []RawRecord) []model.Status {
	ret := make([]model.Status, len(recs))
	for i, r := range recs {
		ret[i] = model.Status{ID: toInt(r.Get("statusId")), Status: r.Get("status")}
	}
	return ret
}

func normalizeSeasons(recs []RawRecord) []model.Season {
	ret := make([]model.Season, len(recs))
	for i, r := range recs {
		ret[i] = model.Season{Year: toInt(r.Get("year")), URL: r.Get("url")}
	}
	return ret
}

func normalizeQualifying(recs []RawRecord) []model.Qualifying {
	ret := make([]model.Qualifying, len(recs))
	for i, r := range recs {
		ret[i] = model.Qualifying{
			ID:            toInt(r.Get("qualifyId")),
			RaceID:        toInt(r.Get("raceId")),
			DriverID:      toInt(r.Get("driverId")),
			ConstructorID: toInt(r.Get("constructorId")),
			Number:        toInt(r.Get("number")),
			Position:      toInt(r.Get("position")),
		}
	}
	return ret
}

func normalizePitStops(recs []RawRecord) []model.PitStop {
	ret := make([]model.PitStop, len(recs))
	for i, r := range recs {
		ret[i] = model.PitStop{
			RaceID:       toInt(r.Get("raceId")),
			DriverID:     toInt(r.Get("driverId")),
			Stop:         toInt(r.Get("stop")),
			Lap:          toInt(r.Get("lap")),
			Milliseconds: toInt(r.Get("milliseconds")),
		}
	}
	return ret
}

func normalizeLapTimes(recs []RawRecord) []model.LapTime {
	ret := make([]model.LapTime, len(recs))
	for i, r := range recs {
		ret[i] = model.LapTime{
			RaceID:       toInt(r.Get("raceId")),
			DriverID:     toInt(r.Get("driverId")),
			Lap:          toInt(r.Get("lap")),
			Position:     toInt(r.Get("position")),
			Milliseconds: toInt(r.Get("milliseconds")),
		}
	}
	return ret
}

func normalizeDriverStandings(recs []RawRecord) []model.DriverStanding {
	ret := make([]model.DriverStanding, len(recs))
	for i, r := range recs {
		ret[i] = model.DriverStanding{
			ID:       toInt(r.Get("driverStandingsId")),
			RaceID:   toInt(r.Get("raceId")),
			DriverID: toInt(r.Get("driverId")),
			Points:   toFloat(r.Get("points")),
			Position: toInt(r.Get("position")),
			Wins:     toInt(r.Get("wins")),
		}
	}
	return ret
}

func normalizeConstructorStandings(recs []RawRecord) []model.ConstructorStanding {
	ret := make([]model.ConstructorStanding, len(recs))
	for i, r := range recs {
		ret[i] = model.ConstructorStanding{
			ID:            toInt(r.Get("constructorStandingsId")),
			RaceID:        toInt(r.Get("raceId")),
			ConstructorID: toInt(r.Get("constructorId")),
			Points:        toFloat(r.Get("points")),
			Position:      toInt(r.Get("position")),
			Wins:          toInt(r.Get("wins")),
		}
	}
	return ret
}

func normalizeResults(recs []RawRecord) []model.Result {
	ret := make([]model.Result, len(recs))
	for i, r := range recs {
		ret[i] = model.Result{
			ID:            toInt(r.Get("resultId")),
			RaceID:        toInt(r.Get("raceId")),
			DriverID:      toInt(r.Get("driverId")),
			ConstructorID: toInt(r.Get("constructorId")),
			Grid:          toInt(r.Get("grid")),
			Position:      toNullInt(r.Get("position")),
			PositionOrder: toInt(r.Get("positionOrder")),
			Points:        toFloat(r.Get("points")),
			Laps:          toInt(r.Get("laps")),
			StatusID:      toInt(r.Get("statusId")),
		}
	}
	return ret
}

// Normalize converts raw tables into a typed store. Tables missing from raw
// stay empty.
func Normalize(raw map[Table][]RawRecord) *Store {
	return &Store{
		Races:                normalizeRaces(raw[TableRaces]),
		Drivers:              normalizeDrivers(raw[TableDrivers]),
		Constructors:         normalizeConstructors(raw[TableConstructors]),
		Circuits:             normalizeCircuits(raw[TableCircuits]),
		Status:               normalizeStatus(raw[TableStatus]),
		Seasons:              normalizeSeasons(raw[TableSeasons]),
		Qualifying:           normalizeQualifying(raw[TableQualifying]),
		PitStops:             normalizePitStops(raw[TablePitStops]),
		LapTimes:             normalizeLapTimes(raw[TableLapTimes]),
		DriverStandings:      normalizeDriverStandings(raw[TableDriverStandings]),
		ConstructorStandings: normalizeConstructorStandings(raw[TableConstructorStandings]),
		Results:              normalizeResults(raw[TableResults]),
	}
}
