package patient

import (
	"context"
)

// ConsentSource reports whether a patient has an active consent on file.
// Implemented by the consent service; nil means the stored projection is used.
type ConsentSource interface {
	Status(ctx context.Context, patientID string) bool
}

type Service struct {
	repo     Repository
	consents ConsentSource
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetConsentSource attaches an optional live consent projection.
func (s *Service) SetConsentSource(cs ConsentSource) {
	s.consents = cs
}

func (s *Service) Get(ctx context.Context, patientID string) (*Patient, error) {
	p, err := s.repo.GetByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	s.project(ctx, p)
	return p, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	patients, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	for _, p := range patients {
		s.project(ctx, p)
	}
	return patients, total, nil
}

func (s *Service) Roster(ctx context.Context) ([]*Patient, error) {
	return s.repo.All(ctx)
}

// project overlays the live consent status when a consent source is attached.
func (s *Service) project(ctx context.Context, p *Patient) {
	if s.consents == nil {
		return
	}
	if s.consents.Status(ctx, p.PatientID) {
		p.ConsentStatus = true
	}
}
