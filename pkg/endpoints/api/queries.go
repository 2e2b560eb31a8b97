package api

import (
	"net/http"

	"github.com/mpapenbr/f1stats-go/pkg/aggregate"
)

func seasons(e *aggregate.Engine, _ *http.Request) (any, error) {
	return e.SeasonsAvailable(), nil
}

func races(e *aggregate.Engine, r *http.Request) (any, error) {
	year, err := pathInt(r, "year")
	if err != nil {
		return nil, err
	}
	return e.RacesForSeason(year)
}

func summary(e *aggregate.Engine, r *http.Request) (any, error) {
	year, err := pathInt(r, "year")
	if err != nil {
		return nil, err
	}
	return e.SeasonSummary(year)
}

func standings(e *aggregate.Engine, r *http.Request) (any, error) {
	year, err := pathInt(r, "year")
	if err != nil {
		return nil, err
	}
	kind, err := aggregate.ParseEntityKind(queryString(r, "kind", string(aggregate.KindDriver)))
	if err != nil {
		return nil, err
	}
	if kind == aggregate.KindConstructor {
		return e.ConstructorStandings(year)
	}
	return e.DriverStandings(year)
}

func progression(e *aggregate.Engine, r *http.Request) (any, error) {
	year, err := pathInt(r, "year")
	if err != nil {
		return nil, err
	}
	kind, err := aggregate.ParseEntityKind(queryString(r, "kind", string(aggregate.KindDriver)))
	if err != nil {
		return nil, err
	}
	policy, err := aggregate.ParseFillPolicy(r.URL.Query().Get("fill"))
	if err != nil {
		return nil, err
	}
	return e.ChampionshipProgressionWithPolicy(year, kind, policy)
}

func winners(e *aggregate.Engine, r *http.Request) (any, error) {
	year, err := pathInt(r, "year")
	if err != nil {
		return nil, err
	}
	return e.RaceWinners(year)
}

func matrix(e *aggregate.Engine, r *http.Request) (any, error) {
	year, err := pathInt(r, "year")
	if err != nil {
		return nil, err
	}
	return e.ResultsMatrix(year)
}

func pitStops(e *aggregate.Engine, r *http.Request) (any, error) {
	year, err := pathInt(r, "year")
	if err != nil {
		return nil, err
	}
	stops, err := e.SeasonPitStops(year)
	if err != nil || r.URL.Query().Get("all") == "true" {
		return stops, err
	}
	return aggregate.DisplayablePitStops(stops), nil
}

func results(e *aggregate.Engine, r *http.Request) (any, error) {
	raceID, err := pathInt(r, "raceId")
	if err != nil {
		return nil, err
	}
	return e.ResultsForRace(raceID), nil
}

// drivers serves the leaderboard. Without search and era the plain all-time
// statistics are returned.
func drivers(e *aggregate.Engine, r *http.Request) (any, error) {
	metric, err := aggregate.ParseMetric(queryString(r, "metric", string(aggregate.MetricWins)))
	if err != nil {
		return nil, err
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		return nil, err
	}
	search := r.URL.Query().Get("search")
	era := r.URL.Query().Get("era")
	if search == "" && era == "" {
		return e.AllTimeStats(metric, limit)
	}
	start, end, err := aggregate.ParseEra(era)
	if err != nil {
		return nil, err
	}
	return e.FilterDrivers(aggregate.DriverFilter{
		Search:   search,
		EraStart: start,
		EraEnd:   end,
		Metric:   metric,
		Limit:    limit,
	})
}

func career(e *aggregate.Engine, r *http.Request) (any, error) {
	id, err := pathInt(r, "driverId")
	if err != nil {
		return nil, err
	}
	return e.DriverCareerStats(id), nil
}

func compare(e *aggregate.Engine, r *http.Request) (any, error) {
	left, err := queryInt(r, "left", -1)
	if err != nil {
		return nil, err
	}
	right, err := queryInt(r, "right", -1)
	if err != nil {
		return nil, err
	}
	if left < 0 || right < 0 {
		return nil, errMissingDrivers
	}
	return e.CompareDrivers(left, right), nil
}

func dominance(e *aggregate.Engine, _ *http.Request) (any, error) {
	return e.ConstructorDominance(), nil
}

func circuits(e *aggregate.Engine, _ *http.Request) (any, error) {
	return e.CircuitStats(), nil
}

func stats(e *aggregate.Engine, _ *http.Request) (any, error) {
	return e.GlobalStats(), nil
}

func tables(e *aggregate.Engine, _ *http.Request) (any, error) {
	return e.Dataset().Status, nil
}
