package loadercache

import (
	"context"
	"sync"
	"time"

	"github.com/mpapenbr/f1stats-go/log"
	"github.com/mpapenbr/f1stats-go/pkg/utils/cache"
)

// based on github.com/kittpat1413/go-common/framework/cache/localcache/localcache.go

type (
	Option[K comparable, V any] func(*config[K, V])
	item[T any]                 struct {
		data    T
		expires *time.Time
	}
	config[K comparable, V any] struct {
		expiration time.Duration
		maxEntries int
		l          *log.Logger
	}
	loaderCache[K comparable, V any] struct {
		mutex  sync.Mutex
		items  map[K]item[*V]
		config *config[K, V]
	}
)

// WithExpiration sets the lifetime of an entry (0: entries never expire)
func WithExpiration[K comparable, V any](expiration time.Duration) Option[K, V] {
	return func(c *config[K, V]) {
		c.expiration = expiration
	}
}

// WithMaxEntries limits the number of entries. When the limit is reached
// the cache is cleared before a new entry is stored.
func WithMaxEntries[K comparable, V any](n int) Option[K, V] {
	return func(c *config[K, V]) {
		c.maxEntries = n
	}
}

func WithLogger[K comparable, V any](arg *log.Logger) Option[K, V] {
	return func(c *config[K, V]) {
		c.l = arg
	}
}

func New[K comparable, V any](opts ...Option[K, V]) cache.Cache[K, V] {
	c := &config[K, V]{
		expiration: 0,
		maxEntries: 1000,
		l:          log.Default().Named("cache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return &loaderCache[K, V]{
		mutex:  sync.Mutex{},
		items:  make(map[K]item[*V]),
		config: c,
	}
}

// GetOrLoad does not hold the lock while load runs. Concurrent misses for the
// same key may load more than once, the last result is kept.
//
//nolint:whitespace // editor/linter issue
func (c *loaderCache[K, V]) GetOrLoad(
	ctx context.Context, key K, load cache.LoadFunc[V],
) (*V, error) {
	c.mutex.Lock()
	v, ok := c.lookup(key)
	c.mutex.Unlock()
	if ok {
		return v, nil
	}

	v, err := load(ctx)
	if err != nil {
		c.config.l.Debug("error loading entry", log.Any("key", key), log.ErrorField(err))
		return nil, err
	}
	c.config.l.Debug("loaded entry", log.Any("key", key))

	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.config.maxEntries > 0 && len(c.items) >= c.config.maxEntries {
		c.items = make(map[K]item[*V])
	}
	entry := item[*V]{data: v}
	if c.config.expiration > 0 {
		expires := time.Now().Add(c.config.expiration)
		entry.expires = &expires
	}
	c.items[key] = entry
	return v, nil
}

// lookup must be called with the mutex held
func (c *loaderCache[K, V]) lookup(key K) (*V, bool) {
	cacheItem, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if cacheItem.expires != nil && cacheItem.expires.Before(time.Now()) {
		delete(c.items, key)
		return nil, false
	}
	return cacheItem.data, true
}

func (c *loaderCache[K, V]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.items)
}
