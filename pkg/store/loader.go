package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mpapenbr/f1stats-go/log"
)

type LoadState string

const (
	LoadStateLoaded LoadState = "loaded"
	LoadStateFailed LoadState = "failed"
)

// LoadStatus is the outcome of loading a single table.
// A failed table is substituted by an empty one, Err wraps ErrSourceUnavailable.
type LoadStatus struct {
	Table    Table         `json:"table"`
	State    LoadState     `json:"state"`
	Records  int           `json:"records"`
	Duration time.Duration `json:"duration"`
	Err      error         `json:"-"`
	Error    string        `json:"error,omitempty"`
}

type (
	LoaderOption func(*Loader)
	Loader       struct {
		source      Source
		tables      []Table
		concurrency int
		timeout     time.Duration
		onStatus    func(LoadStatus)
		statusMu    sync.Mutex
		l           *log.Logger
	}
)

func WithTables(tables ...Table) LoaderOption {
	return func(ld *Loader) {
		ld.tables = tables
	}
}

// WithConcurrency limits the number of tables fetched in parallel (<=0: no limit)
func WithConcurrency(n int) LoaderOption {
	return func(ld *Loader) {
		ld.concurrency = n
	}
}

// WithTableTimeout bounds the time spent on a single table (0: no timeout)
func WithTableTimeout(d time.Duration) LoaderOption {
	return func(ld *Loader) {
		ld.timeout = d
	}
}

// WithStatusCallback registers a function receiving one event per table.
// Calls are serialized.
func WithStatusCallback(cb func(LoadStatus)) LoaderOption {
	return func(ld *Loader) {
		ld.onStatus = cb
	}
}

func WithLogger(l *log.Logger) LoaderOption {
	return func(ld *Loader) {
		ld.l = l
	}
}

func NewLoader(src Source, opts ...LoaderOption) *Loader {
	ld := &Loader{
		source: src,
		tables: DefaultTables(),
		l:      log.Default().Named("store.loader"),
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

// Load fetches all configured tables and normalizes them once every fetch has
// settled. It never fails as a whole: unavailable tables are reported in the
// returned status list and left empty in the store.
func (ld *Loader) Load(ctx context.Context) (*Store, []LoadStatus) {
	raw := make([][]RawRecord, len(ld.tables))
	status := make([]LoadStatus, len(ld.tables))

	var g errgroup.Group
	if ld.concurrency > 0 {
		g.SetLimit(ld.concurrency)
	}
	for i, t := range ld.tables {
		g.Go(func() error {
			start := time.Now()
			recs, err := ld.loadTable(ctx, t)
			st := LoadStatus{
				Table:    t,
				State:    LoadStateLoaded,
				Records:  len(recs),
				Duration: time.Since(start),
			}
			if err != nil {
				st.State = LoadStateFailed
				st.Records = 0
				st.Err = fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, t, err)
				st.Error = st.Err.Error()
				recs = nil
			}
			raw[i] = recs
			status[i] = st
			ld.report(st)
			return nil
		})
	}
	_ = g.Wait()

	byTable := make(map[Table][]RawRecord, len(ld.tables))
	for i, t := range ld.tables {
		byTable[t] = raw[i]
	}
	ld.l.Debug("normalizing tables", log.Int("tables", len(byTable)))
	return Normalize(byTable), status
}

func (ld *Loader) loadTable(ctx context.Context, t Table) ([]RawRecord, error) {
	if ld.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ld.timeout)
		defer cancel()
	}
	r, err := ld.source.Open(ctx, t.FileName())
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return readRecords(r)
}

func (ld *Loader) report(st LoadStatus) {
	if st.Err != nil {
		ld.l.Warn("could not load table",
			log.String("table", st.Table.String()),
			log.String("source", ld.source.String()),
			log.ErrorField(st.Err))
	} else {
		ld.l.Info("loaded table",
			log.String("table", st.Table.String()),
			log.Int("records", st.Records),
			log.Duration("duration", st.Duration))
	}
	if ld.onStatus == nil {
		return
	}
	ld.statusMu.Lock()
	defer ld.statusMu.Unlock()
	ld.onStatus(st)
}
