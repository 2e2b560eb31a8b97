package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// Source provides the raw bytes of a table file
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	String() string
}

var ErrSourceUnavailable = errors.New("source unavailable")

type (
	SourceOption func(*sourceConfig)
	sourceConfig struct {
		httpClient *http.Client
		s3Region   string
		s3Endpoint string
	}
)

func WithHTTPClient(c *http.Client) SourceOption {
	return func(cfg *sourceConfig) {
		cfg.httpClient = c
	}
}

func WithS3Region(region string) SourceOption {
	return func(cfg *sourceConfig) {
		cfg.s3Region = region
	}
}

// WithS3Endpoint sets a custom endpoint (MinIO, LocalStack)
func WithS3Endpoint(endpoint string) SourceOption {
	return func(cfg *sourceConfig) {
		cfg.s3Endpoint = endpoint
	}
}

// NewSource creates a source for location. Supported are
//   - a local directory
//   - http(s)://host/path
//   - s3://bucket/prefix
//   - gs://bucket/prefix
func NewSource(ctx context.Context, location string, opts ...SourceOption) (Source, error) {
	cfg := &sourceConfig{httpClient: http.DefaultClient}
	for _, opt := range opts {
		opt(cfg)
	}
	if dir, ok := LocalDir(location); ok {
		return NewDirSource(dir)
	}
	u, err := url.Parse(location)
	if err != nil {
		return nil, err
	}
	prefix := strings.TrimPrefix(u.Path, "/")
	switch u.Scheme {
	case "http", "https":
		return NewHTTPSource(location, cfg.httpClient), nil
	case "s3":
		return NewS3Source(ctx, S3SourceConfig{
			Bucket:   u.Host,
			Prefix:   prefix,
			Region:   cfg.s3Region,
			Endpoint: cfg.s3Endpoint,
		})
	case "gs":
		return NewGCSSource(ctx, u.Host, prefix)
	default:
		return nil, fmt.Errorf("unsupported source scheme %q", u.Scheme)
	}
}

// LocalDir reports whether location denotes a local directory and returns
// its path. Plain paths, windows drive letters and file:// urls are local.
func LocalDir(location string) (string, bool) {
	u, err := url.Parse(location)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		return location, true
	}
	if u.Scheme == "file" {
		return u.Path, true
	}
	return "", false
}

type fsSource struct {
	fsys fs.FS
	desc string
}

// NewFSSource reads tables from fsys
func NewFSSource(fsys fs.FS, desc string) Source {
	return &fsSource{fsys: fsys, desc: desc}
}

func NewDirSource(dir string) (Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return &fsSource{fsys: os.DirFS(dir), desc: dir}, nil
}

func (s *fsSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.fsys.Open(name)
}

func (s *fsSource) String() string {
	return s.desc
}

type httpSource struct {
	base   string
	client *http.Client
}

func NewHTTPSource(baseURL string, client *http.Client) Source {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpSource{base: strings.TrimSuffix(baseURL, "/"), client: client}
}

func (s *httpSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+"/"+name, http.NoBody)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("get %s: %s", req.URL, resp.Status)
	}
	return resp.Body, nil
}

func (s *httpSource) String() string {
	return s.base
}

// Close releases resources held by src if it has any
func Close(src Source) error {
	if c, ok := src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
