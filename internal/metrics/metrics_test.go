package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerExportsDisplaySubscribers(t *testing.T) {
	m := New()
	subscribers := 2
	m.ObserveDisplaySubscribers(func() int { return subscribers })
	m.OrdersCompleted.Inc()

	scrape := func() string {
		t.Helper()
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
		body, err := io.ReadAll(rec.Body)
		if err != nil {
			t.Fatalf("failed to read scrape: %v", err)
		}
		return string(body)
	}

	body := scrape()
	if !strings.Contains(body, "tablepos_display_subscribers 2") {
		t.Errorf("expected subscriber gauge of 2 in scrape:\n%s", body)
	}
	if !strings.Contains(body, "tablepos_orders_completed_total 1") {
		t.Errorf("expected completed orders counter in scrape:\n%s", body)
	}

	subscribers = 0
	if body := scrape(); !strings.Contains(body, "tablepos_display_subscribers 0") {
		t.Errorf("gauge should follow the live count:\n%s", body)
	}
}
