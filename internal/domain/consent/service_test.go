package consent

import (
	"context"
	"testing"
)

func TestRecord_DefaultsToWritten(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	c, err := svc.Record(context.Background(), "p1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Method != MethodWritten {
		t.Errorf("expected written default, got %q", c.Method)
	}
	if c.ConsentID == "" {
		t.Error("expected generated consent ID")
	}
	if c.ConsentDate.IsZero() {
		t.Error("expected server-assigned consent date")
	}
}

func TestRecord_InvalidMethod(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	if _, err := svc.Record(context.Background(), "p1", "telepathic"); err == nil {
		t.Fatal("expected error for invalid method")
	}
}

func TestRecord_OverwritesPrior(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	first, _ := svc.Record(context.Background(), "p1", MethodWritten)
	second, _ := svc.Record(context.Background(), "p1", MethodVerbal)

	got, err := svc.Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ConsentID != second.ConsentID {
		t.Errorf("expected second record to win, got %q", got.ConsentID)
	}
	if got.ConsentID == first.ConsentID {
		t.Error("expected a fresh consent ID on overwrite")
	}
	if got.Method != MethodVerbal {
		t.Errorf("expected verbal after overwrite, got %q", got.Method)
	}
}

func TestGet_NeverRecorded(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	if _, err := svc.Get(context.Background(), "p9"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStatus(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	if svc.Status(context.Background(), "p1") {
		t.Error("expected no consent before recording")
	}
	svc.Record(context.Background(), "p1", MethodWritten)
	if !svc.Status(context.Background(), "p1") {
		t.Error("expected consent after recording")
	}
}
