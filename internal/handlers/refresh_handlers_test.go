package handlers

import (
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/Acelogic/Maginator/internal/models"
	"github.com/Acelogic/Maginator/internal/roundhill"
)

func TestRefresh_ClearsBothCaches(t *testing.T) {
	st := newTestStack(t, roundhill.FetchHTTPOnly, nil, nil)

	// Warm both caches.
	performRequest(st.router, "GET", "/api/fund", nil)
	performRequest(st.router, "GET", "/api/quotes", nil)
	if p, q := atomic.LoadInt32(&st.pageCalls), atomic.LoadInt32(&st.avCalls); p != 1 || q != 7 {
		t.Fatalf("warmup: expected 1 page / 7 quote fetches, got %d / %d", p, q)
	}

	w := performRequest(st.router, "POST", "/api/refresh", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.RefreshResponse
	decodeJSON(t, w, &resp)
	if len(resp.Cleared) != 2 || resp.Cleared[0] != "holdings" || resp.Cleared[1] != "quotes" {
		t.Errorf("expected cleared [holdings quotes], got %v", resp.Cleared)
	}

	// Both caches are cold again.
	performRequest(st.router, "GET", "/api/fund", nil)
	performRequest(st.router, "GET", "/api/quotes", nil)
	if p, q := atomic.LoadInt32(&st.pageCalls), atomic.LoadInt32(&st.avCalls); p != 2 || q != 14 {
		t.Errorf("after refresh: expected 2 page / 14 quote fetches, got %d / %d", p, q)
	}
}
