package consent

import "time"

// Method is how consent was captured.
type Method string

const (
	MethodWritten Method = "written"
	MethodVerbal  Method = "verbal"
)

// Consent is a patient's consent attestation. At most one record exists per
// patient; a new capture overwrites the prior record (no history retained).
type Consent struct {
	ConsentID   string    `json:"consentId"`
	PatientID   string    `json:"patientId"`
	ConsentDate time.Time `json:"consentDate"`
	Method      Method    `json:"method"`
}
