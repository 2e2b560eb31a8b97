package dataset

import (
	"context"
	"time"

	"github.com/mpapenbr/f1stats-go/log"
	"github.com/mpapenbr/f1stats-go/pkg/index"
	"github.com/mpapenbr/f1stats-go/pkg/store"
)

// Dataset is the immutable result of a load phase: the tables, the lookup
// maps built from them and the per table load report.
// A reload produces a new Dataset, an existing one never changes.
type Dataset struct {
	Store    *store.Store
	Index    *index.Index
	Status   []store.LoadStatus
	LoadedAt time.Time
	Source   string
}

// New wraps an already populated store, e.g. in tests
func New(s *store.Store) *Dataset {
	if s == nil {
		s = &store.Store{}
	}
	return &Dataset{
		Store:    s,
		Index:    index.Build(s),
		Status:   []store.LoadStatus{},
		LoadedAt: time.Now(),
	}
}

// Load runs the load phase: tables -> normalization -> indices.
// The index is only built after every table fetch has settled.
func Load(ctx context.Context, src store.Source, opts ...store.LoaderOption) *Dataset {
	l := log.GetFromContext(ctx).Named("dataset")
	start := time.Now()
	s, status := store.NewLoader(src, opts...).Load(ctx)
	ds := New(s)
	ds.Status = status
	ds.Source = src.String()

	failed := 0
	for i := range status {
		if status[i].State == store.LoadStateFailed {
			failed++
		}
	}
	l.Info("dataset loaded",
		log.String("source", ds.Source),
		log.Int("tables", len(status)),
		log.Int("failed", failed),
		log.Int("drivers", ds.Index.NumDrivers()),
		log.Int("constructors", ds.Index.NumConstructors()),
		log.Int("races", ds.Index.NumRaces()),
		log.Int("circuits", ds.Index.NumCircuits()),
		log.Duration("duration", time.Since(start)))
	return ds
}

// Failed returns the tables which could not be loaded
func (ds *Dataset) Failed() []store.LoadStatus {
	ret := []store.LoadStatus{}
	for i := range ds.Status {
		if ds.Status[i].State == store.LoadStateFailed {
			ret = append(ret, ds.Status[i])
		}
	}
	return ret
}
