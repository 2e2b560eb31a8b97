package loadercache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/f1stats-go/pkg/utils/cache"
)

func counter(calls *int, val string) cache.LoadFunc[string] {
	return func(ctx context.Context) (*string, error) {
		*calls++
		return &val, nil
	}
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()
	c := New[string, string]()
	calls := 0

	v, err := c.GetOrLoad(ctx, "a", counter(&calls, "first"))
	require.NoError(t, err)
	assert.Equal(t, "first", *v)

	v, err = c.GetOrLoad(ctx, "a", counter(&calls, "second"))
	require.NoError(t, err)
	assert.Equal(t, "first", *v)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.Len())
}

func TestGetOrLoadError(t *testing.T) {
	c := New[int, string]()
	boom := errors.New("boom")
	_, err := c.GetOrLoad(context.Background(), 1, func(ctx context.Context) (*string, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len(), "errors are not cached")
}

func TestExpiration(t *testing.T) {
	ctx := context.Background()
	c := New(WithExpiration[string, string](time.Millisecond))
	calls := 0
	_, err := c.GetOrLoad(ctx, "a", counter(&calls, "x"))
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	v, err := c.GetOrLoad(ctx, "a", counter(&calls, "y"))
	require.NoError(t, err)
	assert.Equal(t, "y", *v)
	assert.Equal(t, 2, calls)
}

func TestMaxEntries(t *testing.T) {
	ctx := context.Background()
	c := New(WithMaxEntries[int, string](2))
	calls := 0
	for i := range 3 {
		_, err := c.GetOrLoad(ctx, i, counter(&calls, "x"))
		require.NoError(t, err)
	}
	assert.Equal(t, 1, c.Len())
}
