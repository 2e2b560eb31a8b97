//nolint:funlen,dupl,lll // ok for tests
package aggregate

import (
	"errors"
	"testing"

	"github.com/aarondl/opt/null"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1stats-go/pkg/dataset"
	"github.com/mpapenbr/f1stats-go/pkg/model"
	"github.com/mpapenbr/f1stats-go/pkg/store"
	"github.com/mpapenbr/f1stats-go/testsupport/f1data"
)

func sampleEngine() *Engine {
	return New(f1data.SampleDataset())
}

func emptyEngine() *Engine {
	return New(dataset.New(&store.Store{}))
}

func TestEngine_SeasonsAvailable(t *testing.T) {
	assert.Equal(t, []int{2023, 2016}, sampleEngine().SeasonsAvailable())
	assert.Empty(t, emptyEngine().SeasonsAvailable())
}

func TestEngine_RacesForSeason(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		want    []int // race ids
		wantErr bool
	}{
		{name: "sorted by round", year: 2023, want: []int{20, 21, 22}},
		{name: "other season", year: 2016, want: []int{10, 11}},
		{name: "no races", year: 1999, want: []int{}},
		{name: "invalid year", year: 0, wantErr: true},
	}
	e := sampleEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.RacesForSeason(tt.year)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParameter)
				return
			}
			require.NoError(t, err)
			ids := make([]int, 0, len(got))
			for i := range got {
				ids = append(ids, got[i].ID)
				if i > 0 {
					assert.Less(t, got[i-1].Round, got[i].Round)
				}
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestEngine_RacesForSeasonDoesNotMutateStore(t *testing.T) {
	e := sampleEngine()
	before := append([]model.Race{}, e.s.Races...)
	_, err := e.RacesForSeason(2023)
	require.NoError(t, err)
	assert.Equal(t, before, e.s.Races)
}

func TestEngine_DriverStandings(t *testing.T) {
	e := sampleEngine()

	got, err := e.DriverStandings(2016)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Position)
	assert.Equal(t, f1data.Rosberg, got[0].DriverID)
	assert.Equal(t, "Nico Rosberg", got[0].DriverName)
	assert.Equal(t, "German", got[0].Nationality)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].Position, got[1].Position, got[2].Position})
	for i := range got {
		assert.Equal(t, 11, got[i].RaceID, "standings must come from the last race")
		assert.LessOrEqual(t, got[i].Points, got[0].Points)
	}

	got, err = e.DriverStandings(2023)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, f1data.Verstappen, got[0].DriverID)

	got, err = e.DriverStandings(1980)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = e.DriverStandings(-1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestEngine_ConstructorStandings(t *testing.T) {
	e := sampleEngine()
	got, err := e.ConstructorStandings(2023)
	require.NoError(t, err)
	want := []string{"Red Bull", "Ferrari", "Mercedes"}
	names := []string{}
	for i := range got {
		names = append(names, got[i].ConstructorName)
	}
	assert.Equal(t, want, names)

	got, err = emptyEngine().ConstructorStandings(2023)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEngine_StandingsUnknownDriver(t *testing.T) {
	s := &store.Store{
		Races:           []model.Race{{ID: 1, Year: 2000, Round: 1}},
		DriverStandings: []model.DriverStanding{{ID: 1, RaceID: 1, DriverID: 99, Points: 10, Position: 1}},
	}
	got, err := New(dataset.New(s)).DriverStandings(2000)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Unknown", got[0].DriverName)
}

func TestEngine_ChampionshipProgression(t *testing.T) {
	e := sampleEngine()

	got, err := e.ChampionshipProgression(2023, KindDriver)
	require.NoError(t, err)
	want := []ProgressionSeries{
		{ID: 2, Name: "Max Verstappen", Color: EntityColor(2), Points: []ProgressionPoint{
			{Round: 1, RaceName: "British Grand Prix", Points: 25},
			{Round: 2, RaceName: "Italian Grand Prix", Points: 50},
			{Round: 3, RaceName: "Belgian Grand Prix", Points: 68},
		}},
		{ID: 3, Name: "Charles Leclerc", Color: EntityColor(3), Points: []ProgressionPoint{
			{Round: 1, RaceName: "British Grand Prix", Points: 15},
			{Round: 2, RaceName: "Italian Grand Prix", Points: 33},
			{Round: 3, RaceName: "Belgian Grand Prix", Points: 48},
		}},
		{ID: 1, Name: "Lewis Hamilton", Color: EntityColor(1), Points: []ProgressionPoint{
			{Round: 1, RaceName: "British Grand Prix", Points: 18},
			{Round: 2, RaceName: "Italian Grand Prix", Points: 0},
			{Round: 3, RaceName: "Belgian Grand Prix", Points: 43},
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ChampionshipProgression() mismatch (-want +got):\n%s", diff)
	}
	for i := range got {
		assert.NotEqual(t, f1data.Rosberg, got[i].ID, "final points of 0 must be excluded")
	}
}

func TestEngine_ChampionshipProgressionFillForward(t *testing.T) {
	got, err := sampleEngine().ChampionshipProgressionWithPolicy(2023, KindDriver, FillForward)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, f1data.Hamilton, got[2].ID)
	assert.InDeltaSlice(t, []float64{18, 18, 43},
		[]float64{got[2].Points[0].Points, got[2].Points[1].Points, got[2].Points[2].Points}, 0)
}

func TestEngine_ChampionshipProgressionConstructors(t *testing.T) {
	got, err := sampleEngine().ChampionshipProgression(2016, "constructors")
	assert.ErrorIs(t, err, ErrInvalidParameter, "raw strings must be parsed")
	assert.Nil(t, got)

	kind, err := ParseEntityKind("constructors")
	require.NoError(t, err)
	got, err = sampleEngine().ChampionshipProgression(2016, kind)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Mercedes", got[0].Name)
	assert.Equal(t, "Ferrari", got[1].Name)
}

func TestEngine_ChampionshipProgressionTopTen(t *testing.T) {
	s := &store.Store{Races: []model.Race{{ID: 1, Year: 2010, Round: 1}}}
	for i := 1; i <= 15; i++ {
		s.DriverStandings = append(s.DriverStandings,
			model.DriverStanding{ID: i, RaceID: 1, DriverID: i, Points: float64(i % 5)})
	}
	got, err := New(dataset.New(s)).ChampionshipProgression(2010, KindDriver)
	require.NoError(t, err)
	require.Len(t, got, 10)
	// equal points keep discovery order
	assert.Equal(t, []int{4, 9, 14, 3, 8, 13, 2, 7, 12, 1}, idsOf(got))
}

func idsOf(series []ProgressionSeries) []int {
	ret := []int{}
	for i := range series {
		ret = append(ret, series[i].ID)
	}
	return ret
}

func TestEngine_ChampionshipProgressionInvalid(t *testing.T) {
	e := sampleEngine()
	_, err := e.ChampionshipProgression(2023, EntityKind("pilot"))
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = e.ChampionshipProgressionWithPolicy(2023, KindDriver, FillPolicy("interpolate"))
	assert.ErrorIs(t, err, ErrInvalidParameter)
	got, err := e.ChampionshipProgression(2030, KindDriver)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEngine_AllTimeStats(t *testing.T) {
	e := sampleEngine()
	tests := []struct {
		name   string
		metric Metric
		limit  int
		want   []int
	}{
		{name: "wins, ties keep first appearance", metric: MetricWins, want: []int{1, 2, 4, 3}},
		{name: "points", metric: MetricPoints, want: []int{1, 2, 3, 4}},
		{name: "races", metric: MetricRaces, want: []int{1, 3, 2, 4}},
		{name: "poles", metric: MetricPoles, want: []int{2, 1, 4, 3}},
		{name: "podiums limited", metric: MetricPodiums, limit: 2, want: []int{1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.AllTimeStats(tt.metric, tt.limit)
			require.NoError(t, err)
			ids := []int{}
			for i := range got {
				ids = append(ids, got[i].DriverID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestEngine_AllTimeStatsValues(t *testing.T) {
	got, err := sampleEngine().AllTimeStats(MetricPoints, 0)
	require.NoError(t, err)
	want := []DriverStats{
		{DriverID: 1, Name: "Lewis Hamilton", Wins: 2, Podiums: 4, Poles: 2, Points: 83, Races: 5},
		{DriverID: 2, Name: "Max Verstappen", Wins: 2, Podiums: 3, Poles: 3, Points: 68, Races: 3},
		{DriverID: 3, Name: "Charles Leclerc", Wins: 0, Podiums: 4, Poles: 0, Points: 66, Races: 5},
		{DriverID: 4, Name: "Nico Rosberg", Wins: 1, Podiums: 2, Poles: 0, Points: 43, Races: 2},
	}
	assert.Equal(t, want, got)
}

func TestEngine_AllTimeStatsSingleDriver(t *testing.T) {
	s := &store.Store{
		Races: []model.Race{{ID: 1, Year: 2023, Round: 1}, {ID: 2, Year: 2023, Round: 2}},
		Results: []model.Result{
			{RaceID: 1, DriverID: 10, Position: null.From(1), Points: 25},
			{RaceID: 2, DriverID: 10, Position: null.From(2), Points: 18},
		},
	}
	got, err := New(dataset.New(s)).AllTimeStats(MetricWins, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, DriverStats{DriverID: 10, Name: "Unknown", Wins: 1, Podiums: 2, Points: 43, Races: 2}, got[0])
}

func TestEngine_AllTimeStatsInvalid(t *testing.T) {
	_, err := sampleEngine().AllTimeStats(Metric("laps"), 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	_, err = sampleEngine().AllTimeStats(MetricWins, -1)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	got, err := emptyEngine().AllTimeStats(MetricWins, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEngine_FilterDrivers(t *testing.T) {
	e := sampleEngine()
	tests := []struct {
		name    string
		filter  DriverFilter
		want    []int
		wantErr bool
	}{
		{name: "search is case insensitive", filter: DriverFilter{Search: "ROS"}, want: []int{4}},
		{name: "era", filter: DriverFilter{EraStart: 2010, EraEnd: 2019, Metric: MetricPoints}, want: []int{1, 3, 4}},
		{name: "search and era", filter: DriverFilter{Search: "le", EraStart: 2020, EraEnd: 2029}, want: []int{1, 3}},
		{name: "nothing found", filter: DriverFilter{Search: "senna"}, want: []int{}},
		{name: "limit", filter: DriverFilter{Metric: MetricRaces, Limit: 1}, want: []int{1}},
		{name: "ties ordered by races", filter: DriverFilter{Metric: MetricPoles}, want: []int{2, 1, 3, 4}},
		{name: "reversed era", filter: DriverFilter{EraStart: 2020, EraEnd: 2010}, wantErr: true},
		{name: "bad metric", filter: DriverFilter{Metric: "fastest"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.FilterDrivers(tt.filter)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidParameter))
				return
			}
			require.NoError(t, err)
			ids := []int{}
			for i := range got {
				ids = append(ids, got[i].DriverID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestEngine_RaceWinners(t *testing.T) {
	got, err := sampleEngine().RaceWinners(2023)
	require.NoError(t, err)
	want := []RaceWinner{
		{RaceID: 20, RaceName: "British Grand Prix", Round: 1, CircuitName: "Silverstone Circuit", DriverID: null.From(2), DriverName: "Max Verstappen", ConstructorName: "Red Bull"},
		{RaceID: 21, RaceName: "Italian Grand Prix", Round: 2, CircuitName: "Autodromo Nazionale di Monza", DriverID: null.From(2), DriverName: "Max Verstappen", ConstructorName: "Red Bull"},
		{RaceID: 22, RaceName: "Belgian Grand Prix", Round: 3, CircuitName: "Circuit de Spa-Francorchamps", DriverID: null.From(1), DriverName: "Lewis Hamilton", ConstructorName: "Mercedes"},
	}
	assert.Equal(t, want, got)
}

func TestEngine_RaceWinnersFallbacks(t *testing.T) {
	s := &store.Store{
		Races: []model.Race{
			{ID: 1, Year: 2001, Round: 1, Name: "A"},
			{ID: 2, Year: 2001, Round: 2, Name: "B"},
		},
		Results: []model.Result{
			{RaceID: 1, DriverID: 7, ConstructorID: 8, Position: null.From(1)},
			{RaceID: 2, DriverID: 7, ConstructorID: 8, Position: null.Val[int]{}},
		},
	}
	got, err := New(dataset.New(s)).RaceWinners(2001)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Unknown", got[0].DriverName)
	assert.Equal(t, "Unknown", got[0].ConstructorName)
	assert.Equal(t, "Unknown", got[0].CircuitName)
	assert.Equal(t, 7, got[0].DriverID.GetOrZero())
	assert.True(t, got[1].DriverID.IsNull(), "race without winner")
	assert.Equal(t, "Unknown", got[1].DriverName)
}

func TestEngine_ConstructorDominance(t *testing.T) {
	got := sampleEngine().ConstructorDominance()
	require.Len(t, got, len(Decades))
	assert.Equal(t, "1950s", got[0].Decade)
	assert.Empty(t, got[0].Wins)
	assert.Equal(t, map[string]int{"Mercedes": 2}, got[6].Wins)
	assert.Equal(t, map[string]int{"Red Bull": 2, "Mercedes": 1}, got[7].Wins)
}

func TestEngine_ConstructorDominanceBuckets(t *testing.T) {
	s := &store.Store{
		Races: []model.Race{
			{ID: 1, Year: 1959, Round: 1},
			{ID: 2, Year: 2025, Round: 1},
			{ID: 3, Year: 2024, Round: 1},
		},
		Results: []model.Result{
			{RaceID: 1, ConstructorID: 5, Position: null.From(1)},
			{RaceID: 2, ConstructorID: 5, Position: null.From(1)},
			{RaceID: 3, ConstructorID: 5, Position: null.From(1)},
			{RaceID: 99, ConstructorID: 5, Position: null.From(1)},
		},
	}
	got := New(dataset.New(s)).ConstructorDominance()
	assert.Equal(t, map[string]int{OtherConstructor: 1}, got[0].Wins)
	assert.Equal(t, map[string]int{OtherConstructor: 1}, got[7].Wins, "2025 is outside the last bucket")
}

func TestDecadeWins_MarshalJSON(t *testing.T) {
	b, err := DecadeWins{Decade: "1980s", Wins: map[string]int{"McLaren": 3}}.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"decade":"1980s","McLaren":3}`, string(b))
}

func TestEngine_CircuitStats(t *testing.T) {
	got := sampleEngine().CircuitStats()
	require.Len(t, got, 3, "Zandvoort hosted no race")
	assert.Equal(t, f1data.Silverstone, got[0].ID)
	assert.Equal(t, 2, got[0].TotalRaces)
	assert.Equal(t, 2, got[0].UniqueWinners)
	assert.Equal(t, &TopWinner{DriverID: 1, Name: "Lewis Hamilton", Wins: 1}, got[0].MostWins)
	assert.Equal(t, &TopWinner{DriverID: 2, Name: "Max Verstappen", Wins: 1}, got[1].MostWins,
		"ties go to the lowest driver id")
	assert.Equal(t, 1, got[2].TotalRaces)
	for i := range got {
		assert.NotEqual(t, f1data.Zandvoort, got[i].ID)
	}
}

func TestEngine_CircuitStatsWithoutWinner(t *testing.T) {
	s := &store.Store{
		Circuits: []model.Circuit{{ID: 1, Name: "Test"}},
		Races:    []model.Race{{ID: 1, Year: 2000, Round: 1, CircuitID: 1}},
	}
	got := New(dataset.New(s)).CircuitStats()
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].UniqueWinners)
	assert.Nil(t, got[0].MostWins)
}

func TestEngine_DriverCareerStats(t *testing.T) {
	e := sampleEngine()
	tests := []struct {
		name string
		id   int
		want CareerStats
	}{
		{
			name: "champion 2023",
			id:   f1data.Verstappen,
			want: CareerStats{
				DriverID: 2, Name: "Max Verstappen", Nationality: "Dutch",
				Races: 3, Wins: 2, Podiums: 3, Poles: 3, Points: 68,
				AvgFinish: null.From(1.3), Championships: []int{2023},
			},
		},
		{
			name: "no title",
			id:   f1data.Hamilton,
			want: CareerStats{
				DriverID: 1, Name: "Lewis Hamilton", Nationality: "British",
				Races: 5, Wins: 2, Podiums: 4, Poles: 2, Points: 83,
				AvgFinish: null.From(1.8), Championships: []int{},
			},
		},
		{
			name: "unknown driver",
			id:   99,
			want: CareerStats{
				DriverID: 99, Name: "Unknown", Nationality: "Unknown",
				Championships: []int{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.DriverCareerStats(tt.id))
		})
	}
}

func TestEngine_DriverCareerStatsNoClassifiedFinish(t *testing.T) {
	s := &store.Store{
		Drivers: []model.Driver{{ID: 5, FullName: "Dee Enef"}},
		Results: []model.Result{{RaceID: 1, DriverID: 5, Grid: 1}},
	}
	got := New(dataset.New(s)).DriverCareerStats(5)
	assert.Equal(t, 1, got.Races)
	assert.Equal(t, 1, got.Poles)
	assert.True(t, got.AvgFinish.IsNull())
}

func TestEngine_DriverCareerStatsChampionshipsNewestFirst(t *testing.T) {
	s := &store.Store{
		Races: []model.Race{
			{ID: 1, Year: 2001, Round: 1},
			{ID: 2, Year: 2002, Round: 1},
			{ID: 3, Year: 2003, Round: 1},
		},
		DriverStandings: []model.DriverStanding{
			{RaceID: 1, DriverID: 7, Position: 1, Points: 10},
			{RaceID: 2, DriverID: 8, Position: 1, Points: 10},
			{RaceID: 3, DriverID: 7, Position: 1, Points: 10},
		},
	}
	got := New(dataset.New(s)).DriverCareerStats(7)
	assert.Equal(t, []int{2003, 2001}, got.Championships)
}

func TestEngine_CompareDrivers(t *testing.T) {
	got := sampleEngine().CompareDrivers(f1data.Rosberg, f1data.Hamilton)
	assert.Equal(t, []int{2016}, got.Left.Championships)
	assert.Equal(t, "Lewis Hamilton", got.Right.Name)
}

func TestEngine_GlobalStats(t *testing.T) {
	assert.Equal(t,
		GlobalStats{TotalRaces: 5, TotalDrivers: 4, TotalConstructors: 3, TotalCircuits: 3},
		sampleEngine().GlobalStats())
	assert.Equal(t, GlobalStats{}, emptyEngine().GlobalStats())
}

func TestEngine_SeasonSummary(t *testing.T) {
	got, err := sampleEngine().SeasonSummary(2016)
	require.NoError(t, err)
	assert.Equal(t, SeasonSummary{Year: 2016, Races: 2, Drivers: 3}, got)
}

func TestEngine_ResultsForRace(t *testing.T) {
	got := sampleEngine().ResultsForRace(10)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].PositionOrder, got[1].PositionOrder, got[2].PositionOrder})
	assert.True(t, got[2].Position.IsNull())
}

func TestEngine_ResultsMatrix(t *testing.T) {
	got, err := sampleEngine().ResultsMatrix(2023)
	require.NoError(t, err)
	assert.Len(t, got.Races, 3)
	assert.Len(t, got.Cells, 9)
	assert.Equal(t, []MatrixDriver{
		{ID: 2, Name: "Max Verstappen", Points: 68},
		{ID: 3, Name: "Charles Leclerc", Points: 48},
		{ID: 1, Name: "Lewis Hamilton", Points: 43},
	}, got.Drivers)

	got, err = sampleEngine().ResultsMatrix(1900)
	require.NoError(t, err)
	assert.Empty(t, got.Races)
	assert.Empty(t, got.Cells)
}

func TestEngine_SeasonPitStops(t *testing.T) {
	e := sampleEngine()
	got, err := e.SeasonPitStops(2023)
	require.NoError(t, err)
	assert.Len(t, got, 4)
	valid := DisplayablePitStops(got)
	require.Len(t, valid, 1)
	assert.Equal(t, 22500, valid[0].Milliseconds)
	assert.Len(t, e.s.PitStops, 5, "invalid stops stay in the store")
}

func TestEngine_SeasonPitStopsMissingTable(t *testing.T) {
	s := f1data.SampleStore()
	s.PitStops = nil
	got, err := New(dataset.New(s)).SeasonPitStops(2023)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, DisplayablePitStops(got))
}

func TestEntityColor(t *testing.T) {
	assert.Equal(t, "#E10600", EntityColor(0))
	assert.Equal(t, EntityColor(1), EntityColor(16))
	assert.Equal(t, EntityColor(3), EntityColor(-3))
}

func TestEngine_QueriesAreIdempotent(t *testing.T) {
	e := sampleEngine()
	queries := []struct {
		name string
		q    func() (any, error)
	}{
		{"seasons", func() (any, error) { return e.SeasonsAvailable(), nil }},
		{"races", func() (any, error) { return e.RacesForSeason(2023) }},
		{"driver standings", func() (any, error) { return e.DriverStandings(2023) }},
		{"constructor standings", func() (any, error) { return e.ConstructorStandings(2016) }},
		{"progression", func() (any, error) { return e.ChampionshipProgression(2023, KindDriver) }},
		{"progression forward", func() (any, error) {
			return e.ChampionshipProgressionWithPolicy(2023, KindConstructor, FillForward)
		}},
		{"all-time stats", func() (any, error) { return e.AllTimeStats(MetricPoints, 0) }},
		{"filter drivers", func() (any, error) {
			return e.FilterDrivers(DriverFilter{Search: "e", EraStart: 2010, EraEnd: 2029})
		}},
		{"winners", func() (any, error) { return e.RaceWinners(2023) }},
		{"dominance", func() (any, error) { return e.ConstructorDominance(), nil }},
		{"circuits", func() (any, error) { return e.CircuitStats(), nil }},
		{"career", func() (any, error) { return e.DriverCareerStats(f1data.Hamilton), nil }},
		{"compare", func() (any, error) { return e.CompareDrivers(f1data.Rosberg, f1data.Verstappen), nil }},
		{"global", func() (any, error) { return e.GlobalStats(), nil }},
		{"summary", func() (any, error) { return e.SeasonSummary(2016) }},
		{"results", func() (any, error) { return e.ResultsForRace(22), nil }},
		{"matrix", func() (any, error) { return e.ResultsMatrix(2023) }},
		{"pit stops", func() (any, error) { return e.SeasonPitStops(2023) }},
	}
	for _, tt := range queries {
		t.Run(tt.name, func(t *testing.T) {
			first, err := tt.q()
			require.NoError(t, err)
			second, err := tt.q()
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
	assert.Equal(t, f1data.SampleStore(), e.s, "queries must not modify the store")
}

func TestEngine_RoundsStrictlyAscending(t *testing.T) {
	e := sampleEngine()
	for _, year := range e.SeasonsAvailable() {
		races, err := e.RacesForSeason(year)
		require.NoError(t, err)
		require.NotEmpty(t, races)
		for i := 1; i < len(races); i++ {
			assert.Less(t, races[i-1].Round, races[i].Round, "season %d", year)
		}
	}
}
