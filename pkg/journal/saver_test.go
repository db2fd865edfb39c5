package journal

import (
	"testing"
	"time"

	"tableflip.dev/planner/pkg/plan"
)

func TestDrawingSaverDebounces(t *testing.T) {
	m := newMemStore()
	s := NewDrawingSaver(m)
	s.delay = 30 * time.Millisecond

	s.Update(testDay, plan.StrokeDocument{Data: []byte("v1")})
	s.Update(testDay, plan.StrokeDocument{Data: []byte("v2")})
	s.Update(testDay, plan.StrokeDocument{Data: []byte("v3")})

	if got := m.LoadDrawing("2024-06-15"); !got.Empty() {
		t.Fatalf("saved before the delay elapsed: %q", got.Data)
	}

	time.Sleep(150 * time.Millisecond)

	got := m.LoadDrawing("2024-06-15")
	if string(got.Data) != "v3" {
		t.Fatalf("expected only the latest update to be written, got %q", got.Data)
	}
}

func TestDrawingSaverFlushWritesImmediately(t *testing.T) {
	m := newMemStore()
	s := NewDrawingSaver(m)
	s.delay = time.Hour // never fires on its own

	s.Update(testDay, plan.StrokeDocument{Data: []byte("ink")})
	if err := s.Flush(testDay); err != nil {
		t.Fatalf("flush: %v", err)
	}

	if got := m.LoadDrawing("2024-06-15"); string(got.Data) != "ink" {
		t.Fatalf("flush did not write pending drawing, got %q", got.Data)
	}

	// Nothing pending anymore; a second flush is a no-op.
	if err := s.Flush(testDay); err != nil {
		t.Fatalf("second flush: %v", err)
	}
}

func TestDrawingSaverFlushIsPerDay(t *testing.T) {
	m := newMemStore()
	s := NewDrawingSaver(m)
	s.delay = time.Hour

	other := testDay.AddDate(0, 0, 1)
	s.Update(testDay, plan.StrokeDocument{Data: []byte("today")})
	s.Update(other, plan.StrokeDocument{Data: []byte("tomorrow")})

	if err := s.Flush(testDay); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := m.LoadDrawing("2024-06-15"); string(got.Data) != "today" {
		t.Fatalf("flushed day not written: %q", got.Data)
	}
	if got := m.LoadDrawing("2024-06-16"); !got.Empty() {
		t.Fatalf("flush wrote an unrelated day: %q", got.Data)
	}
}

func TestDrawingSaverCloseFlushesEverything(t *testing.T) {
	m := newMemStore()
	s := NewDrawingSaver(m)
	s.delay = time.Hour

	s.Update(testDay, plan.StrokeDocument{Data: []byte("a")})
	s.Update(testDay.AddDate(0, 0, 1), plan.StrokeDocument{Data: []byte("b")})

	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := m.LoadDrawing("2024-06-15"); string(got.Data) != "a" {
		t.Fatalf("close dropped a pending save: %q", got.Data)
	}
	if got := m.LoadDrawing("2024-06-16"); string(got.Data) != "b" {
		t.Fatalf("close dropped a pending save: %q", got.Data)
	}
}

func TestDrawingSaverReportsWriteFailures(t *testing.T) {
	m := newMemStore()
	m.failWrites = true

	s := NewDrawingSaver(m)
	s.delay = 10 * time.Millisecond

	errs := make(chan string, 1)
	s.OnError = func(dateKey string, err error) {
		if err != nil {
			errs <- dateKey
		}
	}

	s.Update(testDay, plan.StrokeDocument{Data: []byte("ink")})

	select {
	case dk := <-errs:
		if dk != "2024-06-15" {
			t.Fatalf("error reported for wrong day: %s", dk)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("write failure was swallowed")
	}

	// Flush surfaces failures directly.
	s.Update(testDay, plan.StrokeDocument{Data: []byte("more")})
	if err := s.Flush(testDay); err == nil {
		t.Fatal("expected flush to return the write error")
	}
}
