package reporting

import (
	"context"
	"errors"

	"github.com/apcm/apcm/internal/domain/careplan"
	"github.com/apcm/apcm/internal/domain/consent"
)

// ConsentSource reads a patient's consent record.
type ConsentSource interface {
	Get(ctx context.Context, patientID string) (*consent.Consent, error)
}

// PlanSource reads a patient's care plan.
type PlanSource interface {
	Get(ctx context.Context, patientID string) (*careplan.CarePlan, error)
}

// Service denormalizes consent, care plan, and communication data into a
// single audit report.
type Service struct {
	consents ConsentSource
	plans    PlanSource
	comms    CommunicationRepository
}

func NewService(consents ConsentSource, plans PlanSource, comms CommunicationRepository) *Service {
	return &Service{consents: consents, plans: plans, comms: comms}
}

// Generate builds the Markdown audit report for a patient. Missing consent or
// plan records render their "no ... on file" markers rather than failing.
func (s *Service) Generate(ctx context.Context, patientID string) (string, error) {
	consentRecord, err := s.consents.Get(ctx, patientID)
	if err != nil && !errors.Is(err, consent.ErrNotFound) {
		return "", err
	}

	plan, err := s.plans.Get(ctx, patientID)
	if err != nil && !errors.Is(err, careplan.ErrNotFound) {
		return "", err
	}

	comms, err := s.comms.ListByPatient(ctx, patientID)
	if err != nil {
		return "", err
	}

	return BuildReport(patientID, consentRecord, plan, comms), nil
}

func (s *Service) LogCommunication(ctx context.Context, patientID string, entry CommunicationEntry) error {
	return s.comms.Add(ctx, patientID, entry)
}

func (s *Service) Communications(ctx context.Context, patientID string) ([]CommunicationEntry, error) {
	return s.comms.ListByPatient(ctx, patientID)
}
