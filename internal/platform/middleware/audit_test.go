package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func runAudit(t *testing.T, path string, method string, recorders ...AuditRecorder) (*bytes.Buffer, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("request_id", "rid-audit")

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}
	if err := Audit(logger, recorders...)(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return &buf, rec
}

func TestAudit_LogsPatientAccess(t *testing.T) {
	buf, _ := runAudit(t, "/api/v1/care-plans/p1", http.MethodGet)

	out := buf.String()
	for _, want := range []string{
		`"type":"compliance_audit"`,
		`"resource":"care-plans"`,
		`"patient_id":"p1"`,
		`"action":"read"`,
		`"request_id":"rid-audit"`,
		`"patient_access"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("audit log missing %s: %s", want, out)
		}
	}
}

func TestAudit_ActionFromMethod(t *testing.T) {
	cases := map[string]string{
		http.MethodGet:    "read",
		http.MethodPost:   "create",
		http.MethodPut:    "update",
		http.MethodDelete: "delete",
	}
	for method, action := range cases {
		buf, _ := runAudit(t, "/api/v1/consents/p2", method)
		if !strings.Contains(buf.String(), `"action":"`+action+`"`) {
			t.Errorf("%s: expected action %s in %s", method, action, buf.String())
		}
	}
}

func TestAudit_SkipsNonAPIPaths(t *testing.T) {
	buf, _ := runAudit(t, "/health", http.MethodGet)
	if buf.Len() != 0 {
		t.Errorf("health check should not be audited: %s", buf.String())
	}
}

func TestAudit_CallsRecorder(t *testing.T) {
	var got AuditEntry
	recorder := AuditRecorderFunc(func(entry AuditEntry) error {
		got = entry
		return nil
	})

	runAudit(t, "/api/v1/patients/p3", http.MethodGet, recorder)

	if got.Resource != "patients" || got.PatientID != "p3" || got.Action != "read" {
		t.Errorf("unexpected entry: %+v", got)
	}
	if got.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", got.StatusCode)
	}
}

func TestAudit_RecorderFailureDoesNotFailRequest(t *testing.T) {
	recorder := AuditRecorderFunc(func(AuditEntry) error {
		return errors.New("store down")
	})

	buf, rec := runAudit(t, "/api/v1/patients", http.MethodGet, recorder)

	if rec.Code != http.StatusOK {
		t.Errorf("request should succeed despite recorder failure, got %d", rec.Code)
	}
	if !strings.Contains(buf.String(), "failed to record audit entry") {
		t.Errorf("recorder failure not logged: %s", buf.String())
	}
}

func TestExtractPatientID_QueryFallback(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients?patient=p9", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if got := extractPatientID(c); got != "p9" {
		t.Errorf("extractPatientID = %q, want p9", got)
	}
}
