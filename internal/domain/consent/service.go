package consent

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, patientID string) (*Consent, error) {
	return s.repo.GetByPatient(ctx, patientID)
}

// Record captures consent for a patient, overwriting any prior record.
// Method defaults to written; the capture timestamp is server-assigned.
func (s *Service) Record(ctx context.Context, patientID string, method Method) (*Consent, error) {
	if method == "" {
		method = MethodWritten
	}
	if method != MethodWritten && method != MethodVerbal {
		return nil, fmt.Errorf("invalid consent method: %s", method)
	}

	c := &Consent{
		ConsentID:   uuid.New().String(),
		PatientID:   patientID,
		ConsentDate: time.Now().UTC(),
		Method:      method,
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Status reports whether a consent record is on file for the patient.
// Satisfies the patient package's ConsentSource.
func (s *Service) Status(ctx context.Context, patientID string) bool {
	_, err := s.repo.GetByPatient(ctx, patientID)
	return err == nil
}
