//go:build property
// +build property

package aggregate_test

import (
	"testing"

	"github.com/aarondl/opt/null"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mpapenbr/f1stats-go/pkg/aggregate"
	"github.com/mpapenbr/f1stats-go/pkg/dataset"
	"github.com/mpapenbr/f1stats-go/pkg/model"
	"github.com/mpapenbr/f1stats-go/pkg/store"
)

// storeOf builds one race per position entry. Driver ids cycle over 1..5,
// a position of 0 denotes an unclassified result.
func storeOf(positions, rounds []int) *store.Store {
	s := &store.Store{}
	for i := range rounds {
		s.Races = append(s.Races, model.Race{ID: i + 1, Year: 2000, Round: rounds[i]})
	}
	for i, p := range positions {
		r := model.Result{
			ID:       i + 1,
			RaceID:   i%max(len(rounds), 1) + 1,
			DriverID: i%5 + 1,
			Grid:     p,
			Points:   float64(p),
		}
		if p > 0 {
			r.Position = null.From(p)
		}
		s.Results = append(s.Results, r)
	}
	return s
}

func TestAllTimeStatsProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	positions := gen.SliceOf(gen.IntRange(0, 20))
	rounds := gen.SliceOf(gen.IntRange(1, 24))

	properties.Property("podiums never fall below wins", prop.ForAll(
		func(p, r []int) bool {
			e := aggregate.New(dataset.New(storeOf(p, r)))
			stats, err := e.AllTimeStats(aggregate.MetricWins, 0)
			if err != nil {
				return false
			}
			for i := range stats {
				if stats[i].Podiums < stats[i].Wins || stats[i].Races < stats[i].Podiums {
					return false
				}
			}
			return true
		},
		positions, rounds,
	))

	properties.Property("wins add up to the number of winning results", prop.ForAll(
		func(p, r []int) bool {
			e := aggregate.New(dataset.New(storeOf(p, r)))
			stats, _ := e.AllTimeStats(aggregate.MetricPoints, 0)
			total, want := 0, 0
			for i := range stats {
				total += stats[i].Wins
			}
			for _, v := range p {
				if v == 1 {
					want++
				}
			}
			return total == want
		},
		positions, rounds,
	))

	properties.Property("result is ordered by metric", prop.ForAll(
		func(p, r []int) bool {
			e := aggregate.New(dataset.New(storeOf(p, r)))
			stats, _ := e.AllTimeStats(aggregate.MetricPodiums, 0)
			for i := 1; i < len(stats); i++ {
				if stats[i-1].Podiums < stats[i].Podiums {
					return false
				}
			}
			return true
		},
		positions, rounds,
	))

	properties.TestingRun(t)
}

func TestRacesForSeasonProperties(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	properties.Property("races are ordered by round", prop.ForAll(
		func(r []int) bool {
			e := aggregate.New(dataset.New(storeOf(nil, r)))
			races, err := e.RacesForSeason(2000)
			if err != nil || len(races) != len(r) {
				return false
			}
			for i := 1; i < len(races); i++ {
				if races[i-1].Round > races[i].Round {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(1, 24)),
	))

	properties.Property("queries are idempotent", prop.ForAll(
		func(p, r []int) bool {
			e := aggregate.New(dataset.New(storeOf(p, r)))
			a := e.GlobalStats()
			b := e.GlobalStats()
			return a == b
		},
		gen.SliceOf(gen.IntRange(0, 20)), gen.SliceOf(gen.IntRange(1, 24)),
	))

	properties.TestingRun(t)
}
