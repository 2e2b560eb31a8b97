package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitForSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	ctx := context.Background()
	assert.NoError(t, WaitForSource(ctx, srv.URL+"/data", time.Second),
		"any response counts as reachable")
	assert.NoError(t, WaitForSource(ctx, "/local/dir", time.Second))
	assert.NoError(t, WaitForSource(ctx, "s3://bucket/prefix", time.Second))
	assert.NoError(t, WaitForSource(ctx, "http://127.0.0.1:1/data", 0))
}

func TestWaitForSourceUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	err := WaitForSource(context.Background(), addr, 300*time.Millisecond)
	assert.Error(t, err)
}

func TestWaitForTCP(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	assert.NoError(t, WaitForTCP(context.Background(), srv.Listener.Addr().String(), time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, WaitForTCP(ctx, "127.0.0.1:1", time.Second))
}
