package consent

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler(NewService(NewInMemoryRepository()))
	e := echo.New()
	return h, e
}

func TestHandler_GetConsent_Absent(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("p1")
	if err := h.GetConsent(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["consentStatus"] != false {
		t.Errorf("expected consentStatus false, got %v", resp["consentStatus"])
	}
	if _, ok := resp["consent"]; ok {
		t.Error("expected no consent payload when absent")
	}
}

func TestHandler_RecordThenGet(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"method":"verbal"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("p1")
	if err := h.RecordConsent(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("p1")
	if err := h.GetConsent(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var resp struct {
		ConsentStatus bool    `json:"consentStatus"`
		Consent       Consent `json:"consent"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if !resp.ConsentStatus {
		t.Error("expected consentStatus true after recording")
	}
	if resp.Consent.Method != MethodVerbal {
		t.Errorf("expected verbal method, got %q", resp.Consent.Method)
	}
}

func TestHandler_RecordConsent_InvalidMethod(t *testing.T) {
	h, e := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"method":"fax"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("patientId")
	c.SetParamValues("p1")
	if err := h.RecordConsent(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
