package observability

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// MarketStats aggregates process-lifetime counters for the debug endpoint.
// Counters are atomic so workers can bump them without coordination.
type MarketStats struct {
	log     *slog.Logger
	started time.Time

	ListingsCreated  uint64
	PurchaseRequests uint64
	OffersSubmitted  uint64
	LookupFailures   uint64
	NotifyFailures   uint64
	IgnoredEvents    uint64
}

func NewMarketStats(log *slog.Logger) *MarketStats {
	return &MarketStats{log: log, started: time.Now()}
}

func (m *MarketStats) IncrListingsCreated()  { atomic.AddUint64(&m.ListingsCreated, 1) }
func (m *MarketStats) IncrPurchaseRequests() { atomic.AddUint64(&m.PurchaseRequests, 1) }
func (m *MarketStats) IncrOffersSubmitted()  { atomic.AddUint64(&m.OffersSubmitted, 1) }
func (m *MarketStats) IncrLookupFailures()   { atomic.AddUint64(&m.LookupFailures, 1) }
func (m *MarketStats) IncrNotifyFailures()   { atomic.AddUint64(&m.NotifyFailures, 1) }
func (m *MarketStats) IncrIgnoredEvents()    { atomic.AddUint64(&m.IgnoredEvents, 1) }

// Snapshot renders the counters for the debug endpoint.
func (m *MarketStats) Snapshot() map[string]any {
	return map[string]any{
		"uptime":            time.Since(m.started).Round(time.Second).String(),
		"listings_created":  atomic.LoadUint64(&m.ListingsCreated),
		"purchase_requests": atomic.LoadUint64(&m.PurchaseRequests),
		"offers_submitted":  atomic.LoadUint64(&m.OffersSubmitted),
		"lookup_failures":   atomic.LoadUint64(&m.LookupFailures),
		"notify_failures":   atomic.LoadUint64(&m.NotifyFailures),
		"ignored_events":    atomic.LoadUint64(&m.IgnoredEvents),
	}
}
