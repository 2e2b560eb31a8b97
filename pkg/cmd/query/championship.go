package query

import (
	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1stats-go/pkg/aggregate"
)

func NewStandingsCmd() *cobra.Command {
	var kind string
	cmd := newQueryCmd("standings year", "final championship standings of a season", cobra.ExactArgs(1),
		func(e *aggregate.Engine, args []string) (any, error) {
			year, err := intArg(args[0], "year")
			if err != nil {
				return nil, err
			}
			k, err := aggregate.ParseEntityKind(kind)
			if err != nil {
				return nil, err
			}
			if k == aggregate.KindConstructor {
				return e.ConstructorStandings(year)
			}
			return e.DriverStandings(year)
		})
	cmd.Flags().StringVar(&kind, "kind", "driver", "championship (driver, constructor)")
	return cmd
}

func NewProgressionCmd() *cobra.Command {
	var kind, fill string
	cmd := newQueryCmd("progression year", "points after every round of a season", cobra.ExactArgs(1),
		func(e *aggregate.Engine, args []string) (any, error) {
			year, err := intArg(args[0], "year")
			if err != nil {
				return nil, err
			}
			k, err := aggregate.ParseEntityKind(kind)
			if err != nil {
				return nil, err
			}
			policy, err := aggregate.ParseFillPolicy(fill)
			if err != nil {
				return nil, err
			}
			return e.ChampionshipProgressionWithPolicy(year, k, policy)
		})
	cmd.Flags().StringVar(&kind, "kind", "driver", "championship (driver, constructor)")
	cmd.Flags().StringVar(&fill, "fill", "zero",
		"points used for rounds without standings (zero, forward)")
	return cmd
}

func NewDominanceCmd() *cobra.Command {
	return newQueryCmd("dominance", "constructor wins per decade", cobra.NoArgs,
		func(e *aggregate.Engine, _ []string) (any, error) {
			return e.ConstructorDominance(), nil
		})
}

func NewCircuitsCmd() *cobra.Command {
	return newQueryCmd("circuits", "statistics of every circuit which hosted a race", cobra.NoArgs,
		func(e *aggregate.Engine, _ []string) (any, error) {
			return e.CircuitStats(), nil
		})
}

func NewStatsCmd() *cobra.Command {
	return newQueryCmd("stats", "total number of races, drivers, constructors and circuits", cobra.NoArgs,
		func(e *aggregate.Engine, _ []string) (any, error) {
			return e.GlobalStats(), nil
		})
}

func NewTablesCmd() *cobra.Command {
	return newQueryCmd("tables", "load report of the tables", cobra.NoArgs,
		func(e *aggregate.Engine, _ []string) (any, error) {
			return e.Dataset().Status, nil
		})
}
