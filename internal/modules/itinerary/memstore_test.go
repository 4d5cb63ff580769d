// README: In-memory Store used by the service tests; mirrors the CAS
// semantics of the PostgreSQL store.
package itinerary

import (
	"context"
	"sync"
	"time"

	"travelbuddy/internal/types"
)

type memStore struct {
	mu     sync.Mutex
	rows   map[types.ID]*Itinerary
	events []Event
}

func newMemStore() *memStore {
	return &memStore{rows: make(map[types.ID]*Itinerary)}
}

func (m *memStore) Create(ctx context.Context, it *Itinerary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *it
	m.rows[it.ID] = &cp
	return nil
}

func (m *memStore) Get(ctx context.Context, id types.ID) (*Itinerary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *it
	return &cp, nil
}

func (m *memStore) ListByUser(ctx context.Context, userID types.ID) ([]*Itinerary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Itinerary
	for _, it := range m.rows {
		if it.UserID == userID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStore) UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, reason *string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.rows[id]
	if !ok || it.Status != from || it.StatusVersion != version {
		return false, nil
	}
	now := time.Now()
	it.Status = to
	it.StatusVersion++
	switch to {
	case StatusConfirmed:
		it.ConfirmedAt = &now
	case StatusCompleted:
		it.CompletedAt = &now
	case StatusCancelled, StatusExpired:
		it.CancelledAt = &now
	}
	if reason != nil {
		it.CancelReason = reason
	}
	return true, nil
}

func (m *memStore) ListExpiredDrafts(ctx context.Context, now time.Time) ([]*Itinerary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Itinerary
	for _, it := range m.rows {
		if it.Status == StatusDraft && !it.ExpiresAt.After(now) {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memStore) AppendEvent(ctx context.Context, e *Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = int64(len(m.events) + 1)
	m.events = append(m.events, *e)
	return nil
}

func (m *memStore) eventCount(id types.ID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.events {
		if e.ItineraryID == id {
			n++
		}
	}
	return n
}
