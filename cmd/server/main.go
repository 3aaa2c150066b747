package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tablepos/internal/catalog"
	"github.com/mmynk/tablepos/internal/config"
	"github.com/mmynk/tablepos/internal/display"
	"github.com/mmynk/tablepos/internal/metrics"
	"github.com/mmynk/tablepos/internal/middleware"
	"github.com/mmynk/tablepos/internal/service"
	"github.com/mmynk/tablepos/internal/storage/sqlite"
	"github.com/mmynk/tablepos/pkg/api/apiconnect"
	"github.com/mmynk/tablepos/pkg/logging"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize SQLite device storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	cat := catalog.Empty()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			slog.Error("Failed to load catalog", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Catalog loaded", "path", cfg.CatalogPath, "products", cat.Len())
	} else {
		slog.Warn("No CATALOG_PATH set, starting with an empty catalog")
	}

	m := metrics.New()
	hub := display.NewHub(cfg.DisplayBuffer, display.OnDrop(m.DisplayDropped.Inc))
	m.ObserveDisplaySubscribers(hub.Subscribers)

	// Mirror of the customer screen for terminals that poll GetScreen.
	screen := display.NewScreen()
	screenCh, unsubscribeScreen := hub.Subscribe()
	defer unsubscribeScreen()
	go screen.Run(ctx, screenCh)

	var publisher display.Publisher = hub
	if cfg.RedisURL != "" {
		rdb, err := display.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			slog.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()

		switch cfg.DisplayRole {
		case "screen":
			relay := display.NewRelay(rdb, cfg.DisplayChannel, hub)
			go func() {
				if err := relay.Run(ctx); err != nil {
					slog.Error("Display relay stopped", "error", err)
				}
			}()
		default:
			publisher = display.Fanout{hub, display.NewRedisPublisher(rdb, cfg.DisplayChannel)}
		}
		slog.Info("Display relay enabled", "role", cfg.DisplayRole, "channel", cfg.DisplayChannel)
	}

	mux := http.NewServeMux()
	interceptors := connect.WithInterceptors(
		middleware.NewMetricsInterceptor(m),
		middleware.NewLoggingInterceptor(),
	)

	// Register Connect services
	orders := service.NewOrderService(cat, publisher, m)
	defer orders.Close()
	mux.Handle(apiconnect.NewOrderServiceHandler(orders, interceptors))
	mux.Handle(apiconnect.NewCatalogServiceHandler(service.NewCatalogService(cat), interceptors))
	mux.Handle(apiconnect.NewDisplayServiceHandler(service.NewDisplayService(store, hub, screen), interceptors))
	mux.Handle(cfg.MetricsPath, m.Handler())

	// Add logging and CORS middleware
	loggedHandler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(loggedHandler, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: h2cHandler}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("Shutdown incomplete", "error", err)
		}
	}()

	slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for the touch UI running in a browser
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
