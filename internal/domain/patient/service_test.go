package patient

import (
	"context"
	"testing"
)

type stubConsentSource struct{ active map[string]bool }

func (s *stubConsentSource) Status(_ context.Context, patientID string) bool {
	return s.active[patientID]
}

func TestService_ConsentProjection(t *testing.T) {
	svc := NewService(SeedRoster())
	svc.SetConsentSource(&stubConsentSource{active: map[string]bool{"p2": true}})

	// p2 is seeded without consent, the live source overrides it.
	p, err := svc.Get(context.Background(), "p2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.ConsentStatus {
		t.Error("expected live consent projection for p2")
	}
}

func TestService_NoConsentSource(t *testing.T) {
	svc := NewService(SeedRoster())
	p, err := svc.Get(context.Background(), "p2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ConsentStatus {
		t.Error("expected stored consent status without a source")
	}
}

func TestService_List(t *testing.T) {
	svc := NewService(SeedRoster())
	items, total, err := svc.List(context.Background(), 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(items) != 3 {
		t.Errorf("expected full roster, got total %d len %d", total, len(items))
	}
}
