package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tablepos/internal/catalog"
	"github.com/mmynk/tablepos/internal/display"
	"github.com/mmynk/tablepos/internal/metrics"
	"github.com/mmynk/tablepos/internal/middleware"
	"github.com/mmynk/tablepos/internal/storage/sqlite"
	"github.com/mmynk/tablepos/pkg/api/apiconnect"
)

type testServer struct {
	orders  apiconnect.OrderServiceClient
	catalog apiconnect.CatalogServiceClient
	display apiconnect.DisplayServiceClient
	hub     *display.Hub
	metrics *metrics.Metrics
}

// setupTestServer serves all three services over httptest with the sample
// catalog and a temporary SQLite device store.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	cat, err := catalog.Load("../catalog/testdata/catalog.yaml")
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	store, err := sqlite.New(filepath.Join(t.TempDir(), "device.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	m := metrics.New()
	hub := display.NewHub(16, display.OnDrop(m.DisplayDropped.Inc))
	screen := display.NewScreen()
	screenCh, unsubscribeScreen := hub.Subscribe()
	ctx, cancel := context.WithCancel(context.Background())
	go screen.Run(ctx, screenCh)

	interceptors := connect.WithInterceptors(middleware.NewMetricsInterceptor(m))
	orders := NewOrderService(cat, hub, m)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewOrderServiceHandler(orders, interceptors))
	mux.Handle(apiconnect.NewCatalogServiceHandler(NewCatalogService(cat), interceptors))
	mux.Handle(apiconnect.NewDisplayServiceHandler(NewDisplayService(store, hub, screen), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		orders.Close()
		cancel()
		unsubscribeScreen()
		store.Close()
	})

	return &testServer{
		orders:  apiconnect.NewOrderServiceClient(http.DefaultClient, server.URL),
		catalog: apiconnect.NewCatalogServiceClient(http.DefaultClient, server.URL),
		display: apiconnect.NewDisplayServiceClient(http.DefaultClient, server.URL),
		hub:     hub,
		metrics: m,
	}
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Errorf("expected code %v, got %v (%v)", want, got, err)
	}
}

// waitFor polls cond until it holds or a second has passed.
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 0.001 && d > -0.001
}
