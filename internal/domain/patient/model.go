package patient

// RiskLevel is one of three ordered APCM risk tiers.
type RiskLevel string

const (
	RiskLevel1 RiskLevel = "Level 1"
	RiskLevel2 RiskLevel = "Level 2"
	RiskLevel3 RiskLevel = "Level 3"
)

// Patient is an enrolled APCM patient. Identity fields are immutable after
// enrollment; riskLevel and consentStatus are mutable projections.
type Patient struct {
	PatientID         string    `json:"patientId"`
	Name              string    `json:"name"`
	DateOfBirth       string    `json:"dateOfBirth"`
	MedicareNumber    string    `json:"medicareNumber"`
	RiskLevel         RiskLevel `json:"riskLevel"`
	ChronicConditions []string  `json:"chronicConditions"`
	ConsentStatus     bool      `json:"consentStatus"`
}
