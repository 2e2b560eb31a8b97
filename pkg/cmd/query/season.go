package query

import (
	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1stats-go/pkg/aggregate"
)

func NewSeasonsCmd() *cobra.Command {
	return newQueryCmd("seasons", "list the seasons with races, newest first", cobra.NoArgs,
		func(e *aggregate.Engine, _ []string) (any, error) {
			return e.SeasonsAvailable(), nil
		})
}

func NewRacesCmd() *cobra.Command {
	return newQueryCmd("races year", "list the races of a season in round order", cobra.ExactArgs(1),
		func(e *aggregate.Engine, args []string) (any, error) {
			year, err := intArg(args[0], "year")
			if err != nil {
				return nil, err
			}
			return e.RacesForSeason(year)
		})
}

func NewResultsCmd() *cobra.Command {
	return newQueryCmd("results raceId", "list the results of a race", cobra.ExactArgs(1),
		func(e *aggregate.Engine, args []string) (any, error) {
			raceID, err := intArg(args[0], "raceId")
			if err != nil {
				return nil, err
			}
			return e.ResultsForRace(raceID), nil
		})
}

func NewSummaryCmd() *cobra.Command {
	return newQueryCmd("summary year", "quick stats of a season", cobra.ExactArgs(1),
		func(e *aggregate.Engine, args []string) (any, error) {
			year, err := intArg(args[0], "year")
			if err != nil {
				return nil, err
			}
			return e.SeasonSummary(year)
		})
}

func NewWinnersCmd() *cobra.Command {
	return newQueryCmd("winners year", "winner of every race of a season", cobra.ExactArgs(1),
		func(e *aggregate.Engine, args []string) (any, error) {
			year, err := intArg(args[0], "year")
			if err != nil {
				return nil, err
			}
			return e.RaceWinners(year)
		})
}

func NewMatrixCmd() *cobra.Command {
	return newQueryCmd("matrix year", "results heatmap of a season", cobra.ExactArgs(1),
		func(e *aggregate.Engine, args []string) (any, error) {
			year, err := intArg(args[0], "year")
			if err != nil {
				return nil, err
			}
			return e.ResultsMatrix(year)
		})
}

func NewPitStopsCmd() *cobra.Command {
	var all bool
	cmd := newQueryCmd("pitstops year", "pit stops of a season", cobra.ExactArgs(1),
		func(e *aggregate.Engine, args []string) (any, error) {
			year, err := intArg(args[0], "year")
			if err != nil {
				return nil, err
			}
			stops, err := e.SeasonPitStops(year)
			if err != nil || all {
				return stops, err
			}
			return aggregate.DisplayablePitStops(stops), nil
		})
	cmd.Flags().BoolVar(&all, "all", false,
		"include stops outside the display band (18s - 40s)")
	return cmd
}
