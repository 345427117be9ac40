package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/apcm/apcm/internal/domain/careplan"
	"github.com/apcm/apcm/internal/domain/consent"
)

func TestBuildReportFull(t *testing.T) {
	consentRec := &consent.Consent{
		ConsentID:   "c-1",
		PatientID:   "p1",
		ConsentDate: time.Date(2025, 1, 16, 10, 0, 0, 0, time.UTC),
		Method:      consent.MethodVerbal,
	}
	plan := &careplan.CarePlan{
		PlanID:                   "plan-1",
		PatientID:                "p1",
		Goals:                    []string{"Reduce HbA1c below 8%"},
		Needs:                    []string{"Medication reconciliation"},
		SelfManagementActivities: []string{"Daily glucose log"},
		RevisionHistory: []careplan.CarePlanRevision{
			{Version: 1, UpdatedAt: time.Date(2025, 1, 17, 9, 0, 0, 0, time.UTC), UpdatedBy: "nurse-1", Summary: "Initial plan"},
		},
	}
	comms := []CommunicationEntry{
		{Date: time.Date(2025, 1, 18, 15, 35, 0, 0, time.UTC), Channel: ChannelSMS, Note: "Sent reminder"},
	}

	report := BuildReport("p1", consentRec, plan, comms)

	for _, want := range []string{
		"# APCM Audit Report: p1",
		"## Consent",
		"- Status: On file (verbal) on 2025-01-16T10:00:00Z",
		"## Care Plan",
		"- Plan ID: plan-1",
		"- Goals:",
		"  - Reduce HbA1c below 8%",
		"- Needs:",
		"  - Medication reconciliation",
		"- Self-management:",
		"  - Daily glucose log",
		"- Revision history:",
		"  - v1 on 2025-01-17T09:00:00Z by nurse-1: Initial plan",
		"## Communication Log",
		"- 2025-01-18T15:35:00Z [SMS] Sent reminder",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\nreport:\n%s", want, report)
		}
	}
}

func TestBuildReportNothingOnFile(t *testing.T) {
	report := BuildReport("ghost", nil, nil, nil)

	if !strings.HasPrefix(report, "# APCM Audit Report: ghost") {
		t.Errorf("report header wrong:\n%s", report)
	}
	if !strings.Contains(report, "- Status: No consent on file") {
		t.Errorf("missing no-consent marker:\n%s", report)
	}
	if !strings.Contains(report, "- No care plan on file.") {
		t.Errorf("missing no-plan marker:\n%s", report)
	}
	// All three sections render even when empty.
	for _, section := range []string{"## Consent", "## Care Plan", "## Communication Log"} {
		if !strings.Contains(report, section) {
			t.Errorf("missing section %q:\n%s", section, report)
		}
	}
}

func TestBuildReportSectionOrder(t *testing.T) {
	report := BuildReport("p1", nil, nil, nil)

	iConsent := strings.Index(report, "## Consent")
	iPlan := strings.Index(report, "## Care Plan")
	iComms := strings.Index(report, "## Communication Log")
	if !(iConsent < iPlan && iPlan < iComms) {
		t.Errorf("sections out of order: consent=%d plan=%d comms=%d", iConsent, iPlan, iComms)
	}
}

func TestBuildReportChannelUppercased(t *testing.T) {
	comms := []CommunicationEntry{
		{Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Channel: ChannelEmail, Note: "n"},
		{Date: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC), Channel: ChannelCall, Note: "n"},
	}
	report := BuildReport("p1", nil, nil, comms)
	if !strings.Contains(report, "[EMAIL]") || !strings.Contains(report, "[CALL]") {
		t.Errorf("channels not uppercased:\n%s", report)
	}
}
