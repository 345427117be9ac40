package patient

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no patient exists for the requested ID.
var ErrNotFound = errors.New("patient not found")

type Repository interface {
	GetByID(ctx context.Context, patientID string) (*Patient, error)
	List(ctx context.Context, limit, offset int) ([]*Patient, int, error)
	// All returns the full roster in enrollment order. Used by outreach,
	// which must see every roster entry including duplicates.
	All(ctx context.Context) ([]*Patient, error)
}
