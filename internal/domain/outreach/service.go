package outreach

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/apcm/apcm/internal/domain/patient"
)

// Roster supplies the patient roster scanned on each event.
type Roster interface {
	Roster(ctx context.Context) ([]*patient.Patient, error)
}

type Service struct {
	roster Roster
	logger zerolog.Logger
}

func NewService(roster Roster, logger zerolog.Logger) *Service {
	return &Service{roster: roster, logger: logger}
}

// IdentifyFollowUps selects roster patients needing follow-up for the event:
// the patient ID must match, and either the event is a discharge or the
// patient is Level 3. Duplicate roster IDs all match; neither the event nor
// the roster is mutated.
func IdentifyFollowUps(event ADTEvent, roster []*patient.Patient) []*patient.Patient {
	var matched []*patient.Patient
	for _, p := range roster {
		if p.PatientID != event.PatientID {
			continue
		}
		if event.EventType == EventDischarge || p.RiskLevel == patient.RiskLevel3 {
			matched = append(matched, p)
		}
	}
	return matched
}

// Trigger runs follow-up identification against the live roster and logs an
// outreach intent per match. No real notification is sent; this is advisory.
func (s *Service) Trigger(ctx context.Context, event ADTEvent) (Result, error) {
	roster, err := s.roster.Roster(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("load roster: %w", err)
	}

	matched := IdentifyFollowUps(event, roster)
	for _, p := range matched {
		s.logger.Info().
			Str("patient_id", p.PatientID).
			Str("event_type", string(event.EventType)).
			Msgf("would send SMS/email to %s for %s follow-up", p.Name, event.EventType)
	}

	return Result{MatchedPatients: len(matched)}, nil
}
