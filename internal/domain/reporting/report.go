package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/apcm/apcm/internal/domain/careplan"
	"github.com/apcm/apcm/internal/domain/consent"
)

// BuildReport assembles the APCM audit report for a patient as plain Markdown.
// consentRecord and plan may be nil (nothing on file). Free-text fields pass
// through verbatim: no Markdown escaping happens here, so a renderer that
// converts this to HTML must sanitize at its own boundary.
func BuildReport(patientID string, consentRecord *consent.Consent, plan *careplan.CarePlan, comms []CommunicationEntry) string {
	lines := []string{
		"# APCM Audit Report: " + patientID,
		"",
		"## Consent",
	}

	if consentRecord != nil {
		lines = append(lines, fmt.Sprintf("- Status: On file (%s) on %s",
			consentRecord.Method, consentRecord.ConsentDate.Format(time.RFC3339)))
	} else {
		lines = append(lines, "- Status: No consent on file")
	}

	lines = append(lines, "", "## Care Plan")
	if plan != nil {
		lines = append(lines, "- Plan ID: "+plan.PlanID)
		lines = append(lines, "- Goals:")
		lines = append(lines, indent(plan.Goals)...)
		lines = append(lines, "- Needs:")
		lines = append(lines, indent(plan.Needs)...)
		lines = append(lines, "- Self-management:")
		lines = append(lines, indent(plan.SelfManagementActivities)...)
		lines = append(lines, "- Revision history:")
		for _, rev := range plan.RevisionHistory {
			lines = append(lines, fmt.Sprintf("  - v%d on %s by %s: %s",
				rev.Version, rev.UpdatedAt.Format(time.RFC3339), rev.UpdatedBy, rev.Summary))
		}
	} else {
		lines = append(lines, "- No care plan on file.")
	}

	lines = append(lines, "", "## Communication Log")
	for _, comm := range comms {
		lines = append(lines, fmt.Sprintf("- %s [%s] %s",
			comm.Date.Format(time.RFC3339), strings.ToUpper(string(comm.Channel)), comm.Note))
	}

	return strings.Join(lines, "\n")
}

func indent(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = "  - " + item
	}
	return out
}
