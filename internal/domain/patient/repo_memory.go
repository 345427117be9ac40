package patient

import (
	"context"
	"sync"
)

// InMemoryRepository is a thread-safe, in-memory roster. Patients are kept in
// enrollment order for deterministic listing.
type InMemoryRepository struct {
	mu       sync.RWMutex
	patients map[string]*Patient
	order    []string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{patients: make(map[string]*Patient)}
}

// SeedRoster returns a repository pre-loaded with the demo roster.
func SeedRoster() *InMemoryRepository {
	r := NewInMemoryRepository()
	for _, p := range demoRoster() {
		r.Put(p)
	}
	return r
}

func demoRoster() []*Patient {
	return []*Patient{
		{
			PatientID:         "p1",
			Name:              "Alex Johnson",
			DateOfBirth:       "1980-04-12",
			MedicareNumber:    "1234-567-890",
			RiskLevel:         RiskLevel2,
			ChronicConditions: []string{"Hypertension", "Type 2 Diabetes"},
			ConsentStatus:     true,
		},
		{
			PatientID:         "p2",
			Name:              "Maria Chen",
			DateOfBirth:       "1972-09-03",
			MedicareNumber:    "9876-543-210",
			RiskLevel:         RiskLevel1,
			ChronicConditions: []string{"Asthma"},
			ConsentStatus:     false,
		},
		{
			PatientID:         "p3",
			Name:              "Samir Patel",
			DateOfBirth:       "1959-11-21",
			MedicareNumber:    "1357-246-802",
			RiskLevel:         RiskLevel3,
			ChronicConditions: []string{"CHF", "CKD", "Type 2 Diabetes"},
			ConsentStatus:     true,
		},
	}
}

// Put inserts or replaces a patient. Last writer for a given ID wins.
func (r *InMemoryRepository) Put(p *Patient) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.patients[p.PatientID]; !exists {
		r.order = append(r.order, p.PatientID)
	}
	stored := *p
	r.patients[p.PatientID] = &stored
}

func (r *InMemoryRepository) GetByID(_ context.Context, patientID string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patients[patientID]
	if !ok {
		return nil, ErrNotFound
	}
	copy := *p
	return &copy, nil
}

func (r *InMemoryRepository) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.order)
	if offset >= total {
		return []*Patient{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}

	result := make([]*Patient, 0, end-offset)
	for _, id := range r.order[offset:end] {
		copy := *r.patients[id]
		result = append(result, &copy)
	}
	return result, total, nil
}

func (r *InMemoryRepository) All(_ context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Patient, 0, len(r.order))
	for _, id := range r.order {
		copy := *r.patients[id]
		result = append(result, &copy)
	}
	return result, nil
}
