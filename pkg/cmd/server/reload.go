package server

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mpapenbr/f1stats-go/log"
	"github.com/mpapenbr/f1stats-go/pkg/aggregate"
	"github.com/mpapenbr/f1stats-go/pkg/dataset"
	"github.com/mpapenbr/f1stats-go/pkg/endpoints/api"
	"github.com/mpapenbr/f1stats-go/pkg/store"
)

type (
	engineSwapper interface {
		Swap(e *aggregate.Engine) *aggregate.Engine
	}
	loadFunc       func(ctx context.Context) (*dataset.Dataset, error)
	reloaderOption func(*reloader)
	// reloader watches a data directory and activates a freshly loaded
	// dataset once the files stopped changing.
	reloader struct {
		ctx      context.Context
		dir      string
		target   engineSwapper
		load     loadFunc
		debounce time.Duration
		events   chan<- api.ReloadEvent
		log      *log.Logger
	}
)

func withDebounce(d time.Duration) reloaderOption {
	return func(r *reloader) {
		r.debounce = d
	}
}

func withEvents(ch chan<- api.ReloadEvent) reloaderOption {
	return func(r *reloader) {
		r.events = ch
	}
}

func withLoadFunc(f loadFunc) reloaderOption {
	return func(r *reloader) {
		r.load = f
	}
}

//nolint:whitespace // editor/linter issue
func newReloader(
	ctx context.Context, dir string, target engineSwapper, opts ...reloaderOption,
) *reloader {
	r := &reloader{
		ctx:      ctx,
		dir:      dir,
		target:   target,
		debounce: 2 * time.Second,
		log:      log.GetFromContext(ctx).Named("server.reload"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// watch blocks until the context is done
//
//nolint:funlen,gocognit,cyclop // event loop
func (r *reloader) watch() {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		r.log.Error("could not create fsnotify watcher", log.ErrorField(err))
		return
	}
	defer watcher.Close()
	if err := watcher.Add(r.dir); err != nil {
		r.log.Error("could not watch data directory",
			log.String("dir", r.dir), log.ErrorField(err))
		return
	}
	r.log.Info("watching data directory", log.String("dir", r.dir))

	timer := time.NewTimer(r.debounce)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-r.ctx.Done():
			r.log.Info("context done, stopping data reload")
			return
		case event, ok := <-watcher.Events:
			if !ok {
				r.log.Info("watcher events channel closed, stopping data reload")
				return
			}
			if !isTableFile(event.Name) {
				continue
			}
			r.log.Debug("change detected",
				log.String("file", event.Name), log.String("op", event.Op.String()))
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				timer.Reset(r.debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				r.log.Info("watcher errors channel closed, stopping data reload")
				return
			}
			r.log.Error("watcher error", log.ErrorField(err))
		case <-timer.C:
			r.reload()
		}
	}
}

// reload keeps the active engine if the new dataset cannot be loaded or
// lacks one of the required tables.
func (r *reloader) reload() {
	r.log.Info("data changed, reloading", log.String("dir", r.dir))
	ds, err := r.load(r.ctx)
	if err != nil {
		r.log.Error("could not reload dataset", log.ErrorField(err))
		return
	}
	failed := []string{}
	for _, st := range ds.Failed() {
		failed = append(failed, st.Table.String())
	}
	if missing := missingRequired(ds); len(missing) > 0 {
		r.log.Warn("reloaded dataset is incomplete, keeping the active one",
			log.Strings("missing", missing), log.Strings("failed", failed))
		return
	}
	r.target.Swap(aggregate.New(ds))

	r.log.Info("dataset activated",
		log.Time("loadedAt", ds.LoadedAt), log.Strings("failed", failed))
	if r.events == nil {
		return
	}
	select {
	case r.events <- api.ReloadEvent{LoadedAt: ds.LoadedAt, Source: ds.Source, Failed: failed}:
	case <-r.ctx.Done():
	}
}

// requiredTables must be loaded for a dataset to replace the active one
var requiredTables = []store.Table{store.TableRaces, store.TableResults}

func missingRequired(ds *dataset.Dataset) []string {
	ret := []string{}
	for _, st := range ds.Failed() {
		if slices.Contains(requiredTables, st.Table) {
			ret = append(ret, st.Table.String())
		}
	}
	return ret
}

func isTableFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".csv")
}
