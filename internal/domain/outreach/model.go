package outreach

// EventType is the kind of hospital workflow event.
type EventType string

const (
	EventAdmission EventType = "admission"
	EventDischarge EventType = "discharge"
	EventTransfer  EventType = "transfer"
)

// ADTEvent is an inbound Admission/Discharge/Transfer notification. Events
// are transient: consumed once, never persisted.
type ADTEvent struct {
	PatientID     string    `json:"patientId"`
	EventType     EventType `json:"eventType"`
	DischargeDate string    `json:"dischargeDate,omitempty"`
	Facility      string    `json:"facility,omitempty"`
}

// Result summarises an outreach pass over the roster.
type Result struct {
	MatchedPatients int `json:"matchedPatients"`
}
