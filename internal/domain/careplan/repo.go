package careplan

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no care plan exists for the patient.
var ErrNotFound = errors.New("care plan not found")

type Repository interface {
	GetByPatient(ctx context.Context, patientID string) (*CarePlan, error)
	// Put inserts or replaces the plan for its patient.
	Put(ctx context.Context, cp *CarePlan) error
}
