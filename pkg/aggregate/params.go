package aggregate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidParameter is returned for call parameters the engine does not
// understand. Missing data is never reported as an error.
var ErrInvalidParameter = errors.New("invalid parameter")

type Metric string

const (
	MetricWins    Metric = "wins"
	MetricPodiums Metric = "podiums"
	MetricPoles   Metric = "poles"
	MetricPoints  Metric = "points"
	MetricRaces   Metric = "races"
)

func Metrics() []Metric {
	return []Metric{MetricWins, MetricPodiums, MetricPoles, MetricPoints, MetricRaces}
}

func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	if err := m.validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m Metric) validate() error {
	switch m {
	case MetricWins, MetricPodiums, MetricPoles, MetricPoints, MetricRaces:
		return nil
	}
	return fmt.Errorf("%w: unknown metric %q", ErrInvalidParameter, string(m))
}

func (m Metric) value(ds *DriverStats) float64 {
	switch m {
	case MetricWins:
		return float64(ds.Wins)
	case MetricPodiums:
		return float64(ds.Podiums)
	case MetricPoles:
		return float64(ds.Poles)
	case MetricPoints:
		return ds.Points
	case MetricRaces:
		return float64(ds.Races)
	}
	return 0
}

// EntityKind selects the championship
type EntityKind string

const (
	KindDriver      EntityKind = "driver"
	KindConstructor EntityKind = "constructor"
)

func ParseEntityKind(s string) (EntityKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "driver", "drivers":
		return KindDriver, nil
	case "constructor", "constructors", "team", "teams":
		return KindConstructor, nil
	}
	return "", fmt.Errorf("%w: unknown entity kind %q", ErrInvalidParameter, s)
}

func (k EntityKind) validate() error {
	if k == KindDriver || k == KindConstructor {
		return nil
	}
	return fmt.Errorf("%w: unknown entity kind %q", ErrInvalidParameter, string(k))
}

// FillPolicy decides which points are used for a round in which an entity
// has no standings row.
type FillPolicy string

const (
	// FillZero uses 0 for rounds without a standings row
	FillZero FillPolicy = "zero"
	// FillForward carries the last known points
	FillForward FillPolicy = "forward"
)

func ParseFillPolicy(s string) (FillPolicy, error) {
	p := FillPolicy(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return FillZero, nil
	}
	if err := p.validate(); err != nil {
		return "", err
	}
	return p, nil
}

func (p FillPolicy) validate() error {
	if p == FillZero || p == FillForward {
		return nil
	}
	return fmt.Errorf("%w: unknown fill policy %q", ErrInvalidParameter, string(p))
}

func validateYear(year int) error {
	if year < 1 {
		return fmt.Errorf("%w: year %d", ErrInvalidParameter, year)
	}
	return nil
}

func validateLimit(limit int) error {
	if limit < 0 {
		return fmt.Errorf("%w: limit %d", ErrInvalidParameter, limit)
	}
	return nil
}

// ParseEra parses "1950-1959". "all" and the empty string mean no restriction
// and yield 0,0.
func ParseEra(s string) (start, end int, err error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "all" {
		return 0, 0, nil
	}
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: era %q", ErrInvalidParameter, s)
	}
	if start, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("%w: era %q", ErrInvalidParameter, s)
	}
	if end, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("%w: era %q", ErrInvalidParameter, s)
	}
	if start > end {
		return 0, 0, fmt.Errorf("%w: era %q", ErrInvalidParameter, s)
	}
	return start, end, nil
}
