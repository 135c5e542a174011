package profile

import (
	"context"
	"sort"
	"sync"
)

// Store persists SkillMastery rows keyed by (user, skill). The store is
// passed into every call so the estimator carries no ambient state and can
// be tested with injected profiles.
type Store interface {
	// Get returns the row for (user, skill), or nil if the skill has
	// never been attempted.
	Get(ctx context.Context, userID, skillID string) (*SkillMastery, error)

	// All returns every row for a user, ordered by skill ID.
	All(ctx context.Context, userID string) ([]*SkillMastery, error)

	// Put inserts or replaces a row.
	Put(ctx context.Context, sm *SkillMastery) error
}

// MemStore is an in-memory Store for tests and embedded use.
type MemStore struct {
	mu   sync.RWMutex
	rows map[string]map[string]SkillMastery // user -> skill -> row
}

// NewMemStore creates an empty in-memory profile store.
func NewMemStore() *MemStore {
	return &MemStore{rows: make(map[string]map[string]SkillMastery)}
}

func (m *MemStore) Get(_ context.Context, userID, skillID string) (*SkillMastery, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if row, ok := m.rows[userID][skillID]; ok {
		out := row
		return &out, nil
	}
	return nil, nil
}

func (m *MemStore) All(_ context.Context, userID string) ([]*SkillMastery, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user := m.rows[userID]
	ids := make([]string, 0, len(user))
	for id := range user {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*SkillMastery, 0, len(ids))
	for _, id := range ids {
		row := user[id]
		out = append(out, &row)
	}
	return out, nil
}

func (m *MemStore) Put(_ context.Context, sm *SkillMastery) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rows[sm.UserID] == nil {
		m.rows[sm.UserID] = make(map[string]SkillMastery)
	}
	m.rows[sm.UserID][sm.SkillID] = *sm
	return nil
}
