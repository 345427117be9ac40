package reporting

import "context"

// CommunicationRepository stores per-patient communication log entries.
type CommunicationRepository interface {
	Add(ctx context.Context, patientID string, entry CommunicationEntry) error
	// ListByPatient returns entries in insertion order. A patient with no
	// entries yields an empty list, not an error.
	ListByPatient(ctx context.Context, patientID string) ([]CommunicationEntry, error)
}
