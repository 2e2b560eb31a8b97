package query

import (
	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1stats-go/pkg/aggregate"
)

func NewLeaderboardCmd() *cobra.Command {
	var (
		metric string
		search string
		era    string
		limit  int
	)
	cmd := newQueryCmd("leaderboard", "all-time driver statistics", cobra.NoArgs,
		func(e *aggregate.Engine, _ []string) (any, error) {
			m, err := aggregate.ParseMetric(metric)
			if err != nil {
				return nil, err
			}
			if search == "" && era == "" {
				return e.AllTimeStats(m, limit)
			}
			start, end, err := aggregate.ParseEra(era)
			if err != nil {
				return nil, err
			}
			return e.FilterDrivers(aggregate.DriverFilter{
				Search:   search,
				EraStart: start,
				EraEnd:   end,
				Metric:   m,
				Limit:    limit,
			})
		})
	cmd.Flags().StringVar(&metric, "metric", "wins",
		"sort metric (wins, podiums, poles, points, races)")
	cmd.Flags().IntVar(&limit, "limit", 10, "max number of drivers (0: all)")
	cmd.Flags().StringVar(&search, "search", "", "only drivers whose name contains this text")
	cmd.Flags().StringVar(&era, "era", "", "only drivers with a result in this era, e.g. 1980-1989")
	return cmd
}

func NewDriverCmd() *cobra.Command {
	return newQueryCmd("driver driverId", "career statistics of a driver", cobra.ExactArgs(1),
		func(e *aggregate.Engine, args []string) (any, error) {
			id, err := intArg(args[0], "driverId")
			if err != nil {
				return nil, err
			}
			return e.DriverCareerStats(id), nil
		})
}

func NewCompareCmd() *cobra.Command {
	return newQueryCmd("compare driverId driverId", "career statistics of two drivers", cobra.ExactArgs(2),
		func(e *aggregate.Engine, args []string) (any, error) {
			left, err := intArg(args[0], "driverId")
			if err != nil {
				return nil, err
			}
			right, err := intArg(args[1], "driverId")
			if err != nil {
				return nil, err
			}
			return e.CompareDrivers(left, right), nil
		})
}
