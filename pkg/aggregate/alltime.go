package aggregate

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mpapenbr/f1stats-go/pkg/model"
)

// DriverStats are the all-time totals of a driver
type DriverStats struct {
	DriverID int     `json:"driverId"`
	Name     string  `json:"name"`
	Wins     int     `json:"wins"`
	Podiums  int     `json:"podiums"`
	Poles    int     `json:"poles"`
	Points   float64 `json:"points"`
	Races    int     `json:"races"`
}

// DriverFilter narrows the all-time leaderboard.
// EraStart/EraEnd of 0 mean no restriction, a Limit of 0 means no limit.
type DriverFilter struct {
	Search   string
	EraStart int
	EraEnd   int
	Metric   Metric
	Limit    int
}

// AllTimeStats accumulates the totals of every driver with a result and
// orders them by metric, descending. Ties keep the order in which drivers
// first appear in the results table. limit 0 returns all drivers.
func (e *Engine) AllTimeStats(metric Metric, limit int) ([]DriverStats, error) {
	if err := metric.validate(); err != nil {
		return nil, err
	}
	if err := validateLimit(limit); err != nil {
		return nil, err
	}
	ret := e.collectDriverStats(nil)
	sortByMetric(ret, metric)
	return truncate(ret, limit), nil
}

// FilterDrivers returns the all-time rows of drivers whose name contains the
// search term (case-insensitive) and who had a result within the era.
// Ties on the metric keep the drivers with more races first.
func (e *Engine) FilterDrivers(f DriverFilter) ([]DriverStats, error) {
	if f.Metric == "" {
		f.Metric = MetricWins
	}
	if err := f.Metric.validate(); err != nil {
		return nil, err
	}
	if err := validateLimit(f.Limit); err != nil {
		return nil, err
	}
	if f.EraStart > 0 && f.EraEnd > 0 && f.EraStart > f.EraEnd {
		return nil, fmt.Errorf("%w: era %d-%d", ErrInvalidParameter, f.EraStart, f.EraEnd)
	}

	ret := e.collectDriverStats(nil)
	// equal metric values are ordered by number of races
	sortByMetric(ret, MetricRaces)
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		filtered := ret[:0:0]
		for i := range ret {
			if strings.Contains(strings.ToLower(ret[i].Name), term) {
				filtered = append(filtered, ret[i])
			}
		}
		ret = filtered
	}
	if f.EraStart > 0 || f.EraEnd > 0 {
		active := e.driversActiveIn(f.EraStart, f.EraEnd)
		filtered := ret[:0:0]
		for i := range ret {
			if _, ok := active[ret[i].DriverID]; ok {
				filtered = append(filtered, ret[i])
			}
		}
		ret = filtered
	}
	sortByMetric(ret, f.Metric)
	return truncate(ret, f.Limit), nil
}

func (e *Engine) driversActiveIn(start, end int) map[int]struct{} {
	ret := map[int]struct{}{}
	for i := range e.s.Results {
		race, ok := e.idx.Race(e.s.Results[i].RaceID)
		if !ok {
			continue
		}
		if (start == 0 || race.Year >= start) && (end == 0 || race.Year <= end) {
			ret[e.s.Results[i].DriverID] = struct{}{}
		}
	}
	return ret
}

// collectDriverStats scans the results once. Drivers appear in the order of
// their first result. include may be nil.
func (e *Engine) collectDriverStats(include func(*model.Result) bool) []DriverStats {
	pos := map[int]int{}
	ret := []DriverStats{}
	points := []decimal.Decimal{}
	for i := range e.s.Results {
		r := &e.s.Results[i]
		if include != nil && !include(r) {
			continue
		}
		at, ok := pos[r.DriverID]
		if !ok {
			at = len(ret)
			pos[r.DriverID] = at
			ret = append(ret, DriverStats{DriverID: r.DriverID, Name: e.idx.DriverName(r.DriverID)})
			points = append(points, decimal.Zero)
		}
		ds := &ret[at]
		ds.Races++
		points[at] = points[at].Add(decimal.NewFromFloat(r.Points))
		if r.IsWin() {
			ds.Wins++
		}
		if r.IsPodium() {
			ds.Podiums++
		}
		if r.IsPole() {
			ds.Poles++
		}
	}
	for i := range ret {
		ret[i].Points = points[i].InexactFloat64()
	}
	return ret
}

func sortByMetric(stats []DriverStats, metric Metric) {
	slices.SortStableFunc(stats, func(a, b DriverStats) int {
		return cmp.Compare(metric.value(&b), metric.value(&a))
	})
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
