// Package aggregate answers the dashboard queries over a loaded dataset.
//
// All queries are pure: they read the store and the index, never modify them
// and recompute their result on every call. An Engine is safe for concurrent use.
package aggregate

import (
	"github.com/mpapenbr/f1stats-go/pkg/dataset"
	"github.com/mpapenbr/f1stats-go/pkg/index"
	"github.com/mpapenbr/f1stats-go/pkg/store"
)

type Engine struct {
	ds  *dataset.Dataset
	s   *store.Store
	idx *index.Index
}

func New(ds *dataset.Dataset) *Engine {
	if ds == nil {
		ds = dataset.New(nil)
	}
	return &Engine{ds: ds, s: ds.Store, idx: ds.Index}
}

// Dataset returns the dataset the engine operates on
func (e *Engine) Dataset() *dataset.Dataset {
	return e.ds
}
