package consent

import (
	"context"
	"sync"
)

// InMemoryRepository is a thread-safe, in-memory consent store keyed by
// patient ID. Last writer for a given patient wins.
type InMemoryRepository struct {
	mu        sync.RWMutex
	byPatient map[string]*Consent
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byPatient: make(map[string]*Consent)}
}

func (r *InMemoryRepository) GetByPatient(_ context.Context, patientID string) (*Consent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byPatient[patientID]
	if !ok {
		return nil, ErrNotFound
	}
	copy := *c
	return &copy, nil
}

func (r *InMemoryRepository) Put(_ context.Context, c *Consent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *c
	r.byPatient[c.PatientID] = &stored
	return nil
}
