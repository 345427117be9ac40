package careplan

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(newTestService())
	e := echo.New()
	return h, e
}

func call(e *echo.Echo, method, body string, patientID string) (*httptest.ResponseRecorder, echo.Context) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, "/", nil)
	} else {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues(patientID)
	return rec, c
}

func TestHandler_CreateCarePlan(t *testing.T) {
	h, e := newTestHandler()
	rec, c := call(e, http.MethodPost, `{"goals":["walk daily"]}`, "p1")
	if err := h.CreateCarePlan(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	var resp struct {
		CarePlan CarePlan `json:"carePlan"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.CarePlan.PatientID != "p1" {
		t.Errorf("expected patient p1, got %q", resp.CarePlan.PatientID)
	}
	if len(resp.CarePlan.Goals) != 1 {
		t.Errorf("expected 1 goal, got %d", len(resp.CarePlan.Goals))
	}
}

func TestHandler_GetCarePlan_NotFound(t *testing.T) {
	h, e := newTestHandler()
	rec, c := call(e, http.MethodGet, "", "p9")
	if err := h.GetCarePlan(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	var resp map[string]string
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["error"] != "Care plan not found" {
		t.Errorf("unexpected error message: %q", resp["error"])
	}
}

func TestHandler_UpdateCarePlan_NotFound(t *testing.T) {
	h, e := newTestHandler()
	rec, c := call(e, http.MethodPut, `{"summary":"x"}`, "p9")
	if err := h.UpdateCarePlan(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandler_CreateUpdateGetFlow(t *testing.T) {
	h, e := newTestHandler()

	_, c := call(e, http.MethodPost, `{"planId":"cp-001","goals":["g1"]}`, "p1")
	if err := h.CreateCarePlan(c); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec, c := call(e, http.MethodPut, `{"needs":["n1"],"updatedBy":"NP Taylor"}`, "p1")
	if err := h.UpdateCarePlan(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	rec, c = call(e, http.MethodGet, "", "p1")
	if err := h.GetCarePlan(c); err != nil {
		t.Fatalf("get: %v", err)
	}
	var resp struct {
		CarePlan CarePlan `json:"carePlan"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.CarePlan.PlanID != "cp-001" {
		t.Errorf("expected cp-001, got %q", resp.CarePlan.PlanID)
	}
	if len(resp.CarePlan.RevisionHistory) != 1 {
		t.Fatalf("expected 1 revision, got %d", len(resp.CarePlan.RevisionHistory))
	}
	if resp.CarePlan.RevisionHistory[0].Version != 1 {
		t.Errorf("expected version 1, got %d", resp.CarePlan.RevisionHistory[0].Version)
	}
	if resp.CarePlan.RevisionHistory[0].UpdatedBy != "NP Taylor" {
		t.Errorf("expected NP Taylor, got %q", resp.CarePlan.RevisionHistory[0].UpdatedBy)
	}
}

func TestHandler_CreateCarePlan_MalformedBody(t *testing.T) {
	h, e := newTestHandler()
	rec, c := call(e, http.MethodPost, `{broken`, "p1")
	if err := h.CreateCarePlan(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
