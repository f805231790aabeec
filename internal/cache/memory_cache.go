package cache

import (
	"sync"
	"time"

	"github.com/Acelogic/Maginator/internal/models"
)

// MemoryCache provides the in-memory TTL cache for the fund snapshot and
// quote books. Policy is deliberately visible: entries carry a stored-at
// time, expiry is evaluated on read, and the cache never refreshes itself.
type MemoryCache struct {
	snapshot    *snapshotEntry
	quotes      map[string]quoteEntry
	snapMu      sync.RWMutex
	quoteMu     sync.RWMutex
	holdingsTTL time.Duration
	quotesTTL   time.Duration
}

type snapshotEntry struct {
	snapshot *models.FundSnapshot
	warnings []models.Warning
	storedAt time.Time
}

type quoteEntry struct {
	book     *models.QuoteBook
	storedAt time.Time
}

// NewMemoryCache creates a new in-memory cache with per-concern TTLs.
func NewMemoryCache(holdingsTTL, quotesTTL time.Duration) *MemoryCache {
	return &MemoryCache{
		quotes:      make(map[string]quoteEntry),
		holdingsTTL: holdingsTTL,
		quotesTTL:   quotesTTL,
	}
}

// GetSnapshot retrieves the cached fund snapshot and the warnings it was
// stored with, if fresh.
func (c *MemoryCache) GetSnapshot() (*models.FundSnapshot, []models.Warning, bool) {
	c.snapMu.RLock()
	defer c.snapMu.RUnlock()

	if c.snapshot == nil {
		return nil, nil, false
	}
	if time.Since(c.snapshot.storedAt) > c.holdingsTTL {
		return nil, nil, false
	}
	return c.snapshot.snapshot, c.snapshot.warnings, true
}

// SetSnapshot caches the fund snapshot together with its scrape warnings,
// so cache hits surface the same warnings the original fetch did.
func (c *MemoryCache) SetSnapshot(snapshot *models.FundSnapshot, warnings []models.Warning) {
	c.snapMu.Lock()
	defer c.snapMu.Unlock()

	c.snapshot = &snapshotEntry{
		snapshot: snapshot,
		warnings: warnings,
		storedAt: time.Now(),
	}
}

// GetQuotes retrieves a cached quote book for a symbol-set key, if fresh.
func (c *MemoryCache) GetQuotes(key string) (*models.QuoteBook, bool) {
	c.quoteMu.RLock()
	defer c.quoteMu.RUnlock()

	entry, exists := c.quotes[key]
	if !exists {
		return nil, false
	}
	if time.Since(entry.storedAt) > c.quotesTTL {
		return nil, false
	}
	return entry.book, true
}

// SetQuotes caches a quote book under a symbol-set key.
func (c *MemoryCache) SetQuotes(key string, book *models.QuoteBook) {
	c.quoteMu.Lock()
	defer c.quoteMu.Unlock()

	c.quotes[key] = quoteEntry{
		book:     book,
		storedAt: time.Now(),
	}
}

// InvalidateSnapshot drops the cached fund snapshot.
func (c *MemoryCache) InvalidateSnapshot() {
	c.snapMu.Lock()
	defer c.snapMu.Unlock()

	c.snapshot = nil
}

// InvalidateQuotes drops all cached quote books.
func (c *MemoryCache) InvalidateQuotes() {
	c.quoteMu.Lock()
	defer c.quoteMu.Unlock()

	c.quotes = make(map[string]quoteEntry)
}

// Clear removes all cached data. This backs the dashboard's manual refresh.
func (c *MemoryCache) Clear() {
	c.InvalidateSnapshot()
	c.InvalidateQuotes()
}
