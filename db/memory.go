package db

import (
	"context"
	"sync"

	"debatecoach/models"
)

// MemoryStore keeps status checks in process memory. It backs the status
// endpoints when no MongoDB URI is configured.
type MemoryStore struct {
	mu     sync.RWMutex
	checks []models.StatusCheck
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) InsertStatusCheck(_ context.Context, check models.StatusCheck) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checks = append(m.checks, check)
	return nil
}

func (m *MemoryStore) ListStatusChecks(_ context.Context, limit int) ([]models.StatusCheck, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.checks)
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]models.StatusCheck, n)
	copy(out, m.checks[:n])
	return out, nil
}
