package consent

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no consent record exists for the patient.
var ErrNotFound = errors.New("consent not found")

type Repository interface {
	GetByPatient(ctx context.Context, patientID string) (*Consent, error)
	// Put inserts or replaces the record for the consent's patient.
	Put(ctx context.Context, c *Consent) error
}
