package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // only served with --profiling-port
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mpapenbr/f1stats-go/log"
	"github.com/mpapenbr/f1stats-go/pkg/aggregate"
	"github.com/mpapenbr/f1stats-go/pkg/cmd/util"
	"github.com/mpapenbr/f1stats-go/pkg/config"
	"github.com/mpapenbr/f1stats-go/pkg/dataset"
	"github.com/mpapenbr/f1stats-go/pkg/endpoints/api"
	"github.com/mpapenbr/f1stats-go/pkg/store"
	"github.com/mpapenbr/f1stats-go/pkg/utils"
	"github.com/mpapenbr/f1stats-go/pkg/utils/broadcast"
)

func NewServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "starts the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return startServer(ctx)
		},
	}
	cmd.Flags().StringVarP(&config.ServerAddr,
		"addr",
		"a",
		"localhost:8080",
		"API server listen address")
	cmd.Flags().BoolVar(&config.Watch,
		"watch",
		false,
		"reload the dataset when files of a directory source change")
	cmd.Flags().DurationVar(&config.WatchDebounce,
		"watch-debounce",
		2*time.Second,
		"quiet period after the last file change before reloading")
	cmd.Flags().DurationVar(&config.WaitForSource,
		"wait-for-source",
		0,
		"duration to wait for a http(s) source to become reachable")
	cmd.Flags().IntVar(&config.ProfilingPort,
		"profiling-port",
		0,
		"port to use for providing profiling data")
	cmd.Flags().IntVar(&config.CacheEntries,
		"cache-entries",
		500,
		"max number of cached API responses (0: no caching)")
	cmd.Flags().DurationVar(&config.CacheTTL,
		"cache-ttl",
		0,
		"lifetime of cached API responses (0: until the next reload)")
	return cmd
}

//nolint:funlen,cyclop // sequential setup
func startServer(ctx context.Context) error {
	logger, err := util.SetupLogger()
	if err != nil {
		return err
	}
	ctx = log.AddToContext(ctx, logger)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.FromFlags()
	log.Debug("Config:",
		log.String("data", cfg.DataSource),
		log.String("addr", config.ServerAddr),
		log.Int("loadConcurrency", cfg.LoadConcurrency),
		log.Duration("loadTimeout", cfg.LoadTimeout),
		log.Bool("watch", config.Watch),
	)

	if config.ProfilingPort > 0 {
		log.Info("Starting profiling server on port", log.Int("port", config.ProfilingPort))
		go func() {
			//nolint:gosec // localhost only, no timeouts needed
			err := http.ListenAndServe(
				fmt.Sprintf("localhost:%d", config.ProfilingPort),
				nil)
			if err != nil {
				log.Error("Profiling server stopped", log.ErrorField(err))
			}
		}()
	}

	if err := utils.WaitForSource(ctx, cfg.DataSource, config.WaitForSource); err != nil {
		log.Error("data source not ready", log.ErrorField(err))
		return err
	}

	ds, err := util.LoadDataset(ctx, cfg)
	if err != nil {
		log.Error("server could not be started", log.ErrorField(err))
		return err
	}

	reloads := make(chan api.ReloadEvent)
	events := broadcast.NewBroadcastServer("reload", reloads,
		broadcast.WithLogger[api.ReloadEvent](logger.Named("broadcast")))
	defer events.Close()

	handler := api.New(aggregate.New(ds),
		api.WithLogger(logger.Named("api")),
		api.WithCacheEntries(config.CacheEntries),
		api.WithCacheExpiration(config.CacheTTL),
		api.WithReloadEvents(events))

	if config.Watch {
		dir, ok := store.LocalDir(cfg.DataSource)
		if ok {
			r := newReloader(ctx, dir, handler,
				withDebounce(config.WatchDebounce),
				withEvents(reloads),
				withLoadFunc(func(ctx context.Context) (*dataset.Dataset, error) {
					return util.LoadDataset(ctx, cfg)
				}))
			go r.watch()
		} else {
			log.Warn("watch is only supported for directory sources",
				log.String("data", cfg.DataSource))
		}
	}

	server := &http.Server{
		Addr:              config.ServerAddr,
		Handler:           h2c.NewHandler(newCORS().Handler(handler.Routes()), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting API server", log.String("addr", config.ServerAddr))
		errCh <- server.ListenAndServe()
	}()
	setupGoRoutinesDump()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server could not be started", log.ErrorField(err))
			return err
		}
	case <-ctx.Done():
		log.Debug("Got signal", log.ErrorField(context.Cause(ctx)))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("server shutdown", log.ErrorField(err))
	}
	log.Info("Server terminated")
	return nil
}

func setupGoRoutinesDump() {
	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGQUIT)
		buf := make([]byte, 1<<20)
		for {
			<-sigs
			stacklen := runtime.Stack(buf, true)
			fmt.Printf("=== received SIGQUIT ===\n*** goroutine dump...\n%s\n*** end\n",
				buf[:stacklen])
		}
	}()
}

func newCORS() *cors.Cors {
	// The dashboard may be served from a different origin, we allow any origin
	// for the read-only endpoints.
	return cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{
			"Accept",
			"Accept-Encoding",
			"Content-Encoding",
		},
		// Let browsers cache CORS information for longer, which reduces the number
		// of preflight requests. FF caps this value at 24h, and modern
		// Chrome caps it at 2h.
		MaxAge: int(2 * time.Hour / time.Second),
	})
}
