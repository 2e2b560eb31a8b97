package query

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/f1stats-go/log"
	"github.com/mpapenbr/f1stats-go/pkg/aggregate"
	"github.com/mpapenbr/f1stats-go/pkg/cmd/util"
	"github.com/mpapenbr/f1stats-go/pkg/config"
)

// queryFunc computes the value printed by a query command
type queryFunc func(e *aggregate.Engine, args []string) (any, error)

// NewQueryCmds returns one command per engine query
func NewQueryCmds() []*cobra.Command {
	return []*cobra.Command{
		NewSeasonsCmd(),
		NewRacesCmd(),
		NewResultsCmd(),
		NewStandingsCmd(),
		NewProgressionCmd(),
		NewLeaderboardCmd(),
		NewWinnersCmd(),
		NewDominanceCmd(),
		NewCircuitsCmd(),
		NewDriverCmd(),
		NewCompareCmd(),
		NewStatsCmd(),
		NewSummaryCmd(),
		NewMatrixCmd(),
		NewPitStopsCmd(),
		NewTablesCmd(),
	}
}

//nolint:whitespace // can't make both editor and linter happy
func newQueryCmd(
	use, short string, args cobra.PositionalArgs, q queryFunc,
) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, q)
		},
	}
}

func runQuery(cmd *cobra.Command, args []string, q queryFunc) error {
	logger, err := util.SetupLogger()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = log.AddToContext(ctx, logger)

	ds, err := util.LoadDataset(ctx, config.FromFlags())
	if err != nil {
		logger.Error("could not load dataset", log.ErrorField(err))
		return err
	}
	res, err := q(aggregate.New(ds), args)
	if err != nil {
		return err
	}
	return util.Print(cmd.OutOrStdout(), config.Output, res)
}

func intArg(arg, name string) (int, error) {
	v, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", aggregate.ErrInvalidParameter, name, arg)
	}
	return v, nil
}
