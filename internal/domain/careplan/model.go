package careplan

import "time"

// CarePlanRevision is one immutable, versioned snapshot-of-change recorded
// against a care plan. Versions are strictly increasing per plan, starting at 1.
type CarePlanRevision struct {
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
	Summary   string    `json:"summary"`
}

// CarePlan is a patient's APCM care plan. The plan ID is stable for the
// patient's lifetime once created; revisionHistory is append-only.
type CarePlan struct {
	PlanID                   string             `json:"planId"`
	PatientID                string             `json:"patientId"`
	Goals                    []string           `json:"goals"`
	Needs                    []string           `json:"needs"`
	SelfManagementActivities []string           `json:"selfManagementActivities"`
	RevisionHistory          []CarePlanRevision `json:"revisionHistory"`
}

// LastVersion returns the highest revision version, or 0 for a plan that has
// never been updated.
func (cp *CarePlan) LastVersion() int {
	if len(cp.RevisionHistory) == 0 {
		return 0
	}
	return cp.RevisionHistory[len(cp.RevisionHistory)-1].Version
}
