package util

import (
	"context"
	"fmt"
	"os"

	"github.com/mpapenbr/f1stats-go/log"
	"github.com/mpapenbr/f1stats-go/pkg/config"
	"github.com/mpapenbr/f1stats-go/pkg/dataset"
	"github.com/mpapenbr/f1stats-go/pkg/store"
)

func ParseLogLevel(l string, defaultVal log.Level) log.Level {
	level, err := log.ParseLevel(l)
	if err != nil {
		return defaultVal
	}
	return level
}

// SetupLogger creates the logger configured by the log flags and installs it
// as default logger. Logs go to stderr, stdout is reserved for query output.
func SetupLogger() (*log.Logger, error) {
	var logger *log.Logger
	switch config.LogFormat {
	case "json":
		logger = log.New(
			os.Stderr,
			ParseLogLevel(config.LogLevel, log.InfoLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	default:
		logger = log.DevLogger(
			os.Stderr,
			ParseLogLevel(config.LogLevel, log.DebugLevel),
			log.WithCaller(true),
			log.AddCallerSkip(1))
	}
	logger, err := logger.WithFilter(config.LogFilter)
	if err != nil {
		return nil, fmt.Errorf("invalid log filter %q: %w", config.LogFilter, err)
	}
	log.ResetDefault(logger)
	return logger, nil
}

// OpenSource creates the store source for cfg.DataSource
func OpenSource(ctx context.Context, cfg config.Config) (store.Source, error) {
	opts := []store.SourceOption{}
	if cfg.S3Region != "" {
		opts = append(opts, store.WithS3Region(cfg.S3Region))
	}
	if cfg.S3Endpoint != "" {
		opts = append(opts, store.WithS3Endpoint(cfg.S3Endpoint))
	}
	src, err := store.NewSource(ctx, cfg.DataSource, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", store.ErrSourceUnavailable, cfg.DataSource, err)
	}
	return src, nil
}

// LoaderOptions translates cfg into loader options
func LoaderOptions(cfg config.Config) []store.LoaderOption {
	return []store.LoaderOption{
		store.WithConcurrency(cfg.LoadConcurrency),
		store.WithTableTimeout(cfg.LoadTimeout),
	}
}

// LoadDataset opens the configured source and runs the load phase.
// Tables which could not be loaded are logged, they do not fail the call.
func LoadDataset(ctx context.Context, cfg config.Config) (*dataset.Dataset, error) {
	src, err := OpenSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := store.Close(src); err != nil {
			log.GetFromContext(ctx).Warn("could not close source", log.ErrorField(err))
		}
	}()
	return dataset.Load(ctx, src, LoaderOptions(cfg)...), nil
}
