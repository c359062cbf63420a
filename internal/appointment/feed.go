package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/clinicdash/clinicdash/pkg/logger"
)

// Transport is the outbound boundary the feed depends on.
type Transport interface {
	ListAppointments(ctx context.Context) ([]Record, error)
}

// Feed caches the last successful appointment fetch, same stale-on-error
// policy as the doctor store but with no mutation path.
type Feed struct {
	mu        sync.RWMutex
	transport Transport
	records   []Record
	lastErr   error
	refreshed time.Time
}

func NewFeed(t Transport) *Feed {
	return &Feed{transport: t}
}

// Refresh replaces the cached list wholesale; a failed fetch keeps the
// previous snapshot and records the error.
func (f *Feed) Refresh(ctx context.Context) error {
	records, err := f.transport.ListAppointments(ctx)
	if err != nil {
		logger.Errorf("appointment feed: refresh failed, keeping stale snapshot: %v", err)
		f.mu.Lock()
		f.lastErr = err
		f.mu.Unlock()
		return err
	}
	f.mu.Lock()
	f.records = records
	f.lastErr = nil
	f.refreshed = time.Now()
	f.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the cached list.
func (f *Feed) Snapshot() []Record {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Record, len(f.records))
	copy(out, f.records)
	return out
}

func (f *Feed) LastError() error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.lastErr
}
