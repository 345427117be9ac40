package reporting

import (
	"context"
	"sync"
	"time"
)

// InMemoryCommunicationRepository is a thread-safe, in-memory communication
// log keyed by patient ID.
type InMemoryCommunicationRepository struct {
	mu        sync.RWMutex
	byPatient map[string][]CommunicationEntry
}

func NewInMemoryCommunicationRepository() *InMemoryCommunicationRepository {
	return &InMemoryCommunicationRepository{byPatient: make(map[string][]CommunicationEntry)}
}

// SeedCommunications returns a repository pre-loaded with the demo log for p1.
func SeedCommunications() *InMemoryCommunicationRepository {
	r := NewInMemoryCommunicationRepository()
	ctx := context.Background()
	r.Add(ctx, "p1", CommunicationEntry{
		Date:    time.Date(2025, 1, 18, 15, 35, 0, 0, time.UTC),
		Channel: ChannelSMS,
		Note:    "Sent discharge follow-up reminder",
	})
	r.Add(ctx, "p1", CommunicationEntry{
		Date:    time.Date(2025, 1, 19, 18, 10, 0, 0, time.UTC),
		Channel: ChannelCall,
		Note:    "Nurse navigator reviewed medications",
	})
	r.Add(ctx, "p1", CommunicationEntry{
		Date:    time.Date(2025, 1, 25, 12, 0, 0, 0, time.UTC),
		Channel: ChannelEmail,
		Note:    "Shared self-management education packet",
	})
	return r
}

func (r *InMemoryCommunicationRepository) Add(_ context.Context, patientID string, entry CommunicationEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byPatient[patientID] = append(r.byPatient[patientID], entry)
	return nil
}

func (r *InMemoryCommunicationRepository) ListByPatient(_ context.Context, patientID string) ([]CommunicationEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.byPatient[patientID]
	out := make([]CommunicationEntry, len(entries))
	copy(out, entries)
	return out, nil
}
