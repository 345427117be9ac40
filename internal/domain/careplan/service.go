package careplan

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultActor is recorded on a revision when the caller does not identify
// themselves.
const DefaultActor = "system"

// defaultSummary is the last resort of the revision summary fallback chain.
const defaultSummary = "Plan updated"

// CreateRequest is the payload for creating a patient's care plan.
type CreateRequest struct {
	PlanID                   string   `json:"planId"`
	Goals                    []string `json:"goals"`
	Needs                    []string `json:"needs"`
	SelfManagementActivities []string `json:"selfManagementActivities"`
}

// RevisionInput is a client-supplied revision entry. Only its summary is
// honored; version and timestamps are always server-assigned.
type RevisionInput struct {
	Summary string `json:"summary"`
}

// UpdateRequest is the payload for updating a plan. Nil slices mean the field
// was omitted and the existing value is kept; present slices replace wholesale.
type UpdateRequest struct {
	Goals                    []string        `json:"goals"`
	Needs                    []string        `json:"needs"`
	SelfManagementActivities []string        `json:"selfManagementActivities"`
	UpdatedBy                string          `json:"updatedBy"`
	Summary                  string          `json:"summary"`
	RevisionHistory          []RevisionInput `json:"revisionHistory"`
}

type Service struct {
	repo Repository

	// mu serializes update read-modify-write cycles so revision versions
	// cannot collide between concurrent requests for the same patient.
	mu sync.Mutex
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, patientID string) (*CarePlan, error) {
	return s.repo.GetByPatient(ctx, patientID)
}

// Create stores a fresh plan for the patient with zero revisions. A plan ID is
// generated when the client does not supply one. Creating over an existing
// plan replaces it wholesale, matching the store's last-write-wins contract.
func (s *Service) Create(ctx context.Context, patientID string, req CreateRequest) (*CarePlan, error) {
	planID := req.PlanID
	if planID == "" {
		planID = uuid.New().String()
	}

	cp := &CarePlan{
		PlanID:                   planID,
		PatientID:                patientID,
		Goals:                    orEmpty(req.Goals),
		Needs:                    orEmpty(req.Needs),
		SelfManagementActivities: orEmpty(req.SelfManagementActivities),
		RevisionHistory:          []CarePlanRevision{},
	}
	if err := s.repo.Put(ctx, cp); err != nil {
		return nil, err
	}
	return cp, nil
}

// Update merges the provided fields over the existing plan and appends exactly
// one revision with a server-assigned timestamp and the next version number.
// Returns ErrNotFound when the patient has no plan.
func (s *Service) Update(ctx context.Context, patientID string, req UpdateRequest) (*CarePlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	updatedBy := req.UpdatedBy
	if updatedBy == "" {
		updatedBy = DefaultActor
	}

	revision := CarePlanRevision{
		Version:   existing.LastVersion() + 1,
		UpdatedAt: time.Now().UTC(),
		UpdatedBy: updatedBy,
		Summary:   resolveSummary(req),
	}

	if req.Goals != nil {
		existing.Goals = req.Goals
	}
	if req.Needs != nil {
		existing.Needs = req.Needs
	}
	if req.SelfManagementActivities != nil {
		existing.SelfManagementActivities = req.SelfManagementActivities
	}
	existing.RevisionHistory = append(existing.RevisionHistory, revision)

	if err := s.repo.Put(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// resolveSummary picks the revision summary: an embedded revision-history
// entry wins over the top-level summary field, which wins over the default.
// The three-way precedence is carried over from the original intake workflow
// verbatim; see DESIGN.md before changing it.
func resolveSummary(req UpdateRequest) string {
	if len(req.RevisionHistory) > 0 && req.RevisionHistory[0].Summary != "" {
		return req.RevisionHistory[0].Summary
	}
	if req.Summary != "" {
		return req.Summary
	}
	return defaultSummary
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
