package doctor

import (
	"context"
	"sync"
	"time"

	"github.com/clinicdash/clinicdash/pkg/logger"
	"github.com/clinicdash/clinicdash/pkg/metrics"
)

// Transport is the outbound boundary the store depends on. Implemented by
// internal/content.Client; tests substitute a fake.
type Transport interface {
	ListDoctors(ctx context.Context) ([]Record, error)
	CreateDoctor(ctx context.Context, attrs Attributes, attachment *Attachment) (Record, error)
	UpdateDoctor(ctx context.Context, id int64, attrs Attributes, attachment *Attachment) error
	DeleteDoctor(ctx context.Context, id int64) error
}

// Store caches the last successful list fetch. Consistency policy is
// read-after-write via re-fetch: every mutation goes to the transport first
// and, once acknowledged, triggers a wholesale Refresh instead of patching
// the cached slice. A failed refresh keeps the previous snapshot.
//
// Overlapping refreshes (e.g. from two racing mutations) are
// last-response-wins; the mutex only guards the snapshot swap.
type Store struct {
	mu        sync.RWMutex
	transport Transport
	records   []Record
	lastErr   error
	refreshed time.Time
}

func NewStore(t Transport) *Store {
	return &Store{transport: t}
}

// Refresh replaces the cached collection with the server's current truth.
// On failure the previous snapshot is retained and the error is recorded.
func (s *Store) Refresh(ctx context.Context) error {
	records, err := s.transport.ListDoctors(ctx)
	if err != nil {
		logger.Errorf("doctor store: refresh failed, keeping stale snapshot: %v", err)
		metrics.StoreRefreshes.WithLabelValues("error").Inc()
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return err
	}

	metrics.StoreRefreshes.WithLabelValues("ok").Inc()
	s.mu.Lock()
	s.records = records
	s.lastErr = nil
	s.refreshed = time.Now()
	s.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the cached collection.
func (s *Store) Snapshot() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get looks a record up in the cache by id.
func (s *Store) Get(id int64) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// LastError reports the error state of the most recent refresh, nil after a
// successful one.
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// RefreshedAt returns when the snapshot last matched server truth.
func (s *Store) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshed
}

// Create submits a new record and re-fetches the collection once the remote
// store has acknowledged it. The created record (with its assigned id) is
// returned even if the follow-up refresh fails; the refresh failure lands in
// LastError.
func (s *Store) Create(ctx context.Context, attrs Attributes, attachment *Attachment) (Record, error) {
	created, err := s.transport.CreateDoctor(ctx, attrs, attachment)
	if err != nil {
		return Record{}, err
	}
	if err := s.Refresh(ctx); err != nil {
		logger.Warnf("doctor store: refresh after create %d failed: %v", created.ID, err)
	}
	return created, nil
}

// Update replaces all fields of an existing record server-side, then
// re-fetches. A nil attachment leaves the remote attachment untouched.
func (s *Store) Update(ctx context.Context, id int64, attrs Attributes, attachment *Attachment) error {
	if err := s.transport.UpdateDoctor(ctx, id, attrs, attachment); err != nil {
		return err
	}
	if err := s.Refresh(ctx); err != nil {
		logger.Warnf("doctor store: refresh after update %d failed: %v", id, err)
	}
	return nil
}

// Delete removes a record remotely, then re-fetches. Deletion is
// irreversible; callers must have confirmed with the user beforehand.
func (s *Store) Delete(ctx context.Context, id int64) error {
	if err := s.transport.DeleteDoctor(ctx, id); err != nil {
		return err
	}
	if err := s.Refresh(ctx); err != nil {
		logger.Warnf("doctor store: refresh after delete %d failed: %v", id, err)
	}
	return nil
}
