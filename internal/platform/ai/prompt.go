package ai

import (
	"encoding/json"
	"strings"
)

const systemPrompt = "Generate an APCM-compliant initial care plan. Keep to short bullets, clinical accuracy, and clear action items."

// buildUserPrompt renders the intake form as pretty-printed JSON below the
// drafting instructions so the model sees field names exactly as submitted.
func buildUserPrompt(form map[string]interface{}) (string, error) {
	encoded, err := json.MarshalIndent(form, "", "  ")
	if err != nil {
		return "", err
	}
	lines := []string{
		"You are an APCM care coordinator drafting an initial care plan.",
		"Use concise bullet points and keep it patient-friendly.",
		"Highlight: conditions, meds/polypharmacy, adherence, functional status, SDOH barriers, risk/safety, two goals with targets/barriers/interventions, follow-ups, consent status.",
		"",
		"Form data (JSON): " + string(encoded),
	}
	return strings.Join(lines, "\n"), nil
}
