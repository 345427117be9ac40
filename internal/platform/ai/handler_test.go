package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

type stubGenerator struct {
	plan    string
	err     error
	gotForm map[string]interface{}
}

func (s *stubGenerator) GenerateCarePlan(_ context.Context, form map[string]interface{}) (string, error) {
	s.gotForm = form
	return s.plan, s.err
}

func postDraft(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/ai-care-plan", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Draft(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestDraft(t *testing.T) {
	gen := &stubGenerator{plan: "- Follow up in 7 days"}
	rec := postDraft(t, NewHandler(gen), `{"form":{"patientName":"Eleanor"}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp["plan"] != "- Follow up in 7 days" {
		t.Errorf("plan = %q", resp["plan"])
	}
	if gen.gotForm["patientName"] != "Eleanor" {
		t.Errorf("form not forwarded: %+v", gen.gotForm)
	}
}

func TestDraftNotConfigured(t *testing.T) {
	for name, h := range map[string]*Handler{
		"nil generator":     NewHandler(nil),
		"unconfigured stub": NewHandler(&stubGenerator{err: ErrNotConfigured}),
	} {
		rec := postDraft(t, h, `{"form":{}}`)
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: status = %d, want 503", name, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "OPENAI_API_KEY not set") {
			t.Errorf("%s: body = %s", name, rec.Body.String())
		}
	}
}

func TestDraftUpstreamFailure(t *testing.T) {
	rec := postDraft(t, NewHandler(&stubGenerator{err: errors.New("timeout")}), `{"form":{}}`)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unable to generate care plan") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestDraftMalformedBody(t *testing.T) {
	rec := postDraft(t, NewHandler(&stubGenerator{}), `{"form":`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
