// Package api serves the engine queries as read-only JSON over HTTP.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/mpapenbr/f1stats-go/log"
	"github.com/mpapenbr/f1stats-go/pkg/aggregate"
	"github.com/mpapenbr/f1stats-go/pkg/utils/broadcast"
	"github.com/mpapenbr/f1stats-go/pkg/utils/cache"
	"github.com/mpapenbr/f1stats-go/pkg/utils/cache/loadercache"
)

// ReloadEvent is published to /api/events after a new dataset was activated
type ReloadEvent struct {
	LoadedAt time.Time `json:"loadedAt"`
	Source   string    `json:"source"`
	Failed   []string  `json:"failed"`
}

type (
	Option  func(*Handler)
	Handler struct {
		current      atomic.Pointer[generation]
		events       broadcast.BroadcastServer[ReloadEvent]
		cacheEntries int
		cacheTTL     time.Duration
		l            *log.Logger
	}
	// generation binds a response cache to the engine it was filled from
	generation struct {
		engine *aggregate.Engine
		cache  cache.Cache[string, []byte]
	}
)

func WithLogger(l *log.Logger) Option {
	return func(h *Handler) {
		h.l = l
	}
}

// WithCacheEntries limits the number of cached responses (0: no caching)
func WithCacheEntries(n int) Option {
	return func(h *Handler) {
		h.cacheEntries = n
	}
}

// WithCacheExpiration sets the lifetime of cached responses (0: until the
// next engine swap)
func WithCacheExpiration(d time.Duration) Option {
	return func(h *Handler) {
		h.cacheTTL = d
	}
}

// WithReloadEvents enables the /api/events stream
func WithReloadEvents(b broadcast.BroadcastServer[ReloadEvent]) Option {
	return func(h *Handler) {
		h.events = b
	}
}

func New(e *aggregate.Engine, opts ...Option) *Handler {
	h := &Handler{
		cacheEntries: 500,
		l:            log.Default().Named("api"),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.Swap(e)
	return h
}

// Engine returns the engine currently used to answer requests
func (h *Handler) Engine() *aggregate.Engine {
	return h.current.Load().engine
}

// Swap activates e and returns the previously active engine.
// Requests already running finish with the engine they started with.
func (h *Handler) Swap(e *aggregate.Engine) *aggregate.Engine {
	var c cache.Cache[string, []byte]
	if h.cacheEntries > 0 {
		c = loadercache.New(
			loadercache.WithMaxEntries[string, []byte](h.cacheEntries),
			loadercache.WithExpiration[string, []byte](h.cacheTTL),
			loadercache.WithLogger[string, []byte](h.l.Named("cache")))
	}
	old := h.current.Swap(&generation{engine: e, cache: c})
	if old == nil {
		return nil
	}
	return old.engine
}

// Routes registers all endpoints below /api on a new mux
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/seasons", h.handle(seasons))
	mux.HandleFunc("GET /api/seasons/{year}/races", h.handle(races))
	mux.HandleFunc("GET /api/seasons/{year}/summary", h.handle(summary))
	mux.HandleFunc("GET /api/seasons/{year}/standings", h.handle(standings))
	mux.HandleFunc("GET /api/seasons/{year}/progression", h.handle(progression))
	mux.HandleFunc("GET /api/seasons/{year}/winners", h.handle(winners))
	mux.HandleFunc("GET /api/seasons/{year}/matrix", h.handle(matrix))
	mux.HandleFunc("GET /api/seasons/{year}/pitstops", h.handle(pitStops))
	mux.HandleFunc("GET /api/races/{raceId}/results", h.handle(results))
	mux.HandleFunc("GET /api/drivers", h.handle(drivers))
	mux.HandleFunc("GET /api/drivers/compare", h.handle(compare))
	mux.HandleFunc("GET /api/drivers/{driverId}", h.handle(career))
	mux.HandleFunc("GET /api/dominance", h.handle(dominance))
	mux.HandleFunc("GET /api/circuits", h.handle(circuits))
	mux.HandleFunc("GET /api/stats", h.handle(stats))
	mux.HandleFunc("GET /api/tables", h.handle(tables))
	mux.HandleFunc("GET /api/events", h.streamEvents)
	return mux
}

var errMissingDrivers = fmt.Errorf("%w: left and right driver ids are required",
	aggregate.ErrInvalidParameter)

type queryFunc func(e *aggregate.Engine, r *http.Request) (any, error)

func (h *Handler) handle(q queryFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gen := h.current.Load()
		compute := func(ctx context.Context) (*[]byte, error) {
			v, err := q(gen.engine, r)
			if err != nil {
				return nil, err
			}
			data, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			return &data, nil
		}
		var data *[]byte
		var err error
		if gen.cache != nil {
			data, err = gen.cache.GetOrLoad(r.Context(), r.URL.RequestURI(), compute)
		} else {
			data, err = compute(r.Context())
		}
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(*data); err != nil {
			h.l.Debug("could not write response", log.ErrorField(err))
		}
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, aggregate.ErrInvalidParameter) {
		status = http.StatusBadRequest
	} else {
		h.l.Error("query failed", log.String("path", r.URL.Path), log.ErrorField(err))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errchkjson // map of strings
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func (h *Handler) streamEvents(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		http.NotFound(w, r)
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}
	ch := h.events.Subscribe()
	defer h.events.CancelSubscription(ch)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()
	for {
		select {
		case <-r.Context().Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			data, err := json.Marshal(ev)
			if err != nil {
				h.l.Error("could not encode event", log.ErrorField(err))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: reload\ndata: %s\n\n", data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func pathInt(r *http.Request, name string) (int, error) {
	v, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number",
			aggregate.ErrInvalidParameter, name, r.PathValue(name))
	}
	return v, nil
}

func queryInt(r *http.Request, name string, defaultVal int) (int, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", aggregate.ErrInvalidParameter, name, s)
	}
	return v, nil
}

func queryString(r *http.Request, name, defaultVal string) string {
	if s := r.URL.Query().Get(name); s != "" {
		return s
	}
	return defaultVal
}
