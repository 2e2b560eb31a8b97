package cache

import "context"

// based on github.com/kittpat1413/go-common/framework/cache/cache.go

// LoadFunc computes the value of a missing entry
type LoadFunc[V any] func(ctx context.Context) (*V, error)

type Cache[K comparable, V any] interface {
	// GetOrLoad returns the cached value for key or stores the result of load
	GetOrLoad(ctx context.Context, key K, load LoadFunc[V]) (*V, error)
	Len() int
}
