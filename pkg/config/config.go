package config

import "time"

// this holds the resolved configuration values from CLI
//
//nolint:lll // readablity
var (
	DataSource      string        // location of the csv files (dir, http(s)://, s3://, gs://)
	LogLevel        string        // sets the log level (zap log level values)
	LogFormat       string        // text vs json
	LogFilter       string        // zapfilter rules, e.g. "warn+:* debug+:store.*"
	LoadConcurrency int           // max number of tables loaded in parallel
	LoadTimeout     time.Duration // timeout for a single table (0: none)
	Output          string        // json vs yaml
	S3Region        string        // region for s3:// sources
	S3Endpoint      string        // custom endpoint for s3:// sources (MinIO, LocalStack)
	ServerAddr      string        // listen addr for the API server
	Watch           bool          // reload the dataset on changes of a directory source
	WatchDebounce   time.Duration // quiet period after the last change before reloading
	WaitForSource   time.Duration // duration to wait for a remote source to become reachable
	ProfilingPort   int           // port for profiling
	CacheEntries    int           // max number of cached API responses
	CacheTTL        time.Duration // lifetime of cached API responses (0: until reload)
)

// Config holds the configuration values which are used by the application
type Config struct {
	DataSource      string
	LoadConcurrency int
	LoadTimeout     time.Duration
	S3Region        string
	S3Endpoint      string
}

// FromFlags collects the values relevant for loading the dataset
func FromFlags() Config {
	return Config{
		DataSource:      DataSource,
		LoadConcurrency: LoadConcurrency,
		LoadTimeout:     LoadTimeout,
		S3Region:        S3Region,
		S3Endpoint:      S3Endpoint,
	}
}
