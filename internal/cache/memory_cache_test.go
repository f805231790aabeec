package cache

import (
	"testing"
	"time"

	"github.com/Acelogic/Maginator/internal/models"
)

func testSnapshot() *models.FundSnapshot {
	return &models.FundSnapshot{
		NAV:    52.80,
		HasNAV: true,
		AsOf:   "8/22/2026",
		Holdings: []models.Holding{
			{Symbol: "NVDA", Name: "NVIDIA CORP", Weight: 0.1419},
		},
		Source:    "http",
		FetchedAt: time.Now(),
	}
}

func TestMemoryCache_SnapshotRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, _, ok := c.GetSnapshot(); ok {
		t.Fatal("expected miss on empty cache")
	}

	warnings := []models.Warning{{Code: models.WarnNAVMissing, Message: "no NAV on page"}}
	c.SetSnapshot(testSnapshot(), warnings)

	snap, stored, ok := c.GetSnapshot()
	if !ok {
		t.Fatal("expected hit after set")
	}
	if snap.NAV != 52.80 {
		t.Errorf("expected NAV 52.80, got %.2f", snap.NAV)
	}
	if len(stored) != 1 || stored[0].Code != models.WarnNAVMissing {
		t.Errorf("expected stored warnings replayed on hit, got %v", stored)
	}
}

func TestMemoryCache_SnapshotExpiry(t *testing.T) {
	c := NewMemoryCache(10*time.Millisecond, time.Minute)
	c.SetSnapshot(testSnapshot(), nil)

	time.Sleep(25 * time.Millisecond)

	if _, _, ok := c.GetSnapshot(); ok {
		t.Error("expected snapshot to expire after its TTL")
	}
}

func TestMemoryCache_QuoteBookKeying(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	book := &models.QuoteBook{
		Quotes:    map[string]models.Quote{"NVDA": {Symbol: "NVDA", Price: 181.40}},
		FetchedAt: time.Now(),
	}
	c.SetQuotes("AAPL,NVDA", book)

	got, ok := c.GetQuotes("AAPL,NVDA")
	if !ok {
		t.Fatal("expected hit for the stored key")
	}
	if got.Quotes["NVDA"].Price != 181.40 {
		t.Errorf("expected NVDA at 181.40, got %.2f", got.Quotes["NVDA"].Price)
	}

	if _, ok := c.GetQuotes("NVDA"); ok {
		t.Error("expected miss for a different symbol set")
	}
}

func TestMemoryCache_QuoteExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, 10*time.Millisecond)
	c.SetQuotes("NVDA", &models.QuoteBook{FetchedAt: time.Now()})

	time.Sleep(25 * time.Millisecond)

	if _, ok := c.GetQuotes("NVDA"); ok {
		t.Error("expected quote book to expire after its TTL")
	}
}

func TestMemoryCache_IndependentTTLs(t *testing.T) {
	// Holdings live longer than quotes; an expired quote book must not
	// take the snapshot with it.
	c := NewMemoryCache(time.Minute, 10*time.Millisecond)
	c.SetSnapshot(testSnapshot(), nil)
	c.SetQuotes("NVDA", &models.QuoteBook{FetchedAt: time.Now()})

	time.Sleep(25 * time.Millisecond)

	if _, _, ok := c.GetSnapshot(); !ok {
		t.Error("snapshot should still be fresh")
	}
	if _, ok := c.GetQuotes("NVDA"); ok {
		t.Error("quote book should have expired")
	}
}

func TestMemoryCache_Clear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.SetSnapshot(testSnapshot(), nil)
	c.SetQuotes("NVDA", &models.QuoteBook{FetchedAt: time.Now()})

	c.Clear()

	if _, _, ok := c.GetSnapshot(); ok {
		t.Error("expected snapshot gone after Clear")
	}
	if _, ok := c.GetQuotes("NVDA"); ok {
		t.Error("expected quote books gone after Clear")
	}
}

func TestMemoryCache_InvalidateSnapshotLeavesQuotes(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.SetSnapshot(testSnapshot(), nil)
	c.SetQuotes("NVDA", &models.QuoteBook{FetchedAt: time.Now()})

	c.InvalidateSnapshot()

	if _, _, ok := c.GetSnapshot(); ok {
		t.Error("expected snapshot gone")
	}
	if _, ok := c.GetQuotes("NVDA"); !ok {
		t.Error("expected quote books untouched")
	}
}
