package careplan

import (
	"context"
	"sync"
)

// InMemoryRepository is a thread-safe, in-memory care plan store keyed by
// patient ID.
type InMemoryRepository struct {
	mu        sync.RWMutex
	byPatient map[string]*CarePlan
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byPatient: make(map[string]*CarePlan)}
}

func (r *InMemoryRepository) GetByPatient(_ context.Context, patientID string) (*CarePlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cp, ok := r.byPatient[patientID]
	if !ok {
		return nil, ErrNotFound
	}
	return copyPlan(cp), nil
}

func (r *InMemoryRepository) Put(_ context.Context, cp *CarePlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPatient[cp.PatientID] = copyPlan(cp)
	return nil
}

// copyPlan clones a plan so callers never share slices with the store.
// Empty slices stay empty (not nil) so they serialize as [] rather than null.
func copyPlan(cp *CarePlan) *CarePlan {
	out := *cp
	out.Goals = copyStrings(cp.Goals)
	out.Needs = copyStrings(cp.Needs)
	out.SelfManagementActivities = copyStrings(cp.SelfManagementActivities)
	if cp.RevisionHistory != nil {
		out.RevisionHistory = make([]CarePlanRevision, len(cp.RevisionHistory))
		copy(out.RevisionHistory, cp.RevisionHistory)
	}
	return &out
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
