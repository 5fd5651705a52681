package capture

import (
	"errors"
	"fmt"
	"testing"
)

func TestSession_FullWalkCompletes(t *testing.T) {
	session := NewSession("test-session")
	angles := Angles()

	for i, angle := range angles {
		if session.Completed() {
			t.Fatalf("Session completed early at step %d", i)
		}

		current := session.CurrentStep()
		if current == nil || current.ID != angle.ID {
			t.Fatalf("Expected current step %q at index %d, got %+v", angle.ID, i, current)
		}

		captured, err := session.CapturePhoto(fmt.Sprintf("file:///photos/%s.jpg", angle.ID))
		if err != nil {
			t.Fatalf("CapturePhoto failed at step %d: %v", i, err)
		}

		if i < len(angles)-1 {
			if captured != nil {
				t.Fatalf("Expected no completion mapping before last step, got %v at step %d", captured, i)
			}
		} else {
			if captured == nil {
				t.Fatal("Expected completion mapping after last step, got nil")
			}
			if len(captured) != len(angles) {
				t.Errorf("Expected %d entries in completion mapping, got %d", len(angles), len(captured))
			}
			for _, a := range angles {
				if _, ok := captured[a.ID]; !ok {
					t.Errorf("Completion mapping missing entry for step %q", a.ID)
				}
			}
		}
	}

	if !session.Completed() {
		t.Error("Expected session to be completed after last capture")
	}

	// Completion happens exactly once; every further transition is rejected
	if _, err := session.CapturePhoto("file:///photos/extra.jpg"); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("Expected ErrSessionComplete for capture after completion, got %v", err)
	}
	if _, err := session.FinishEarly(); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("Expected ErrSessionComplete for finish after completion, got %v", err)
	}
	if err := session.RetryCurrentStep(); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("Expected ErrSessionComplete for retry after completion, got %v", err)
	}
	if err := session.GoToPreviousStep(); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("Expected ErrSessionComplete for previous after completion, got %v", err)
	}
}

func TestSession_RetryCurrentStepClearsPhoto(t *testing.T) {
	session := NewSession("")
	firstID := Angles()[0].ID

	// Capture the first step, then walk back to it and retry
	if _, err := session.CapturePhoto("file:///photos/first.jpg"); err != nil {
		t.Fatalf("CapturePhoto failed: %v", err)
	}
	if err := session.GoToPreviousStep(); err != nil {
		t.Fatalf("GoToPreviousStep failed: %v", err)
	}

	if err := session.RetryCurrentStep(); err != nil {
		t.Fatalf("RetryCurrentStep failed: %v", err)
	}

	if _, ok := session.Captured()[firstID]; ok {
		t.Errorf("Expected no captured photo for step %q after retry", firstID)
	}

	// Retry with nothing captured is a no-op
	if err := session.RetryCurrentStep(); err != nil {
		t.Fatalf("RetryCurrentStep on empty step failed: %v", err)
	}
}

func TestSession_GoToPreviousStepAtStart(t *testing.T) {
	session := NewSession("")

	if err := session.GoToPreviousStep(); err != nil {
		t.Fatalf("GoToPreviousStep failed: %v", err)
	}

	if session.StepIndex() != 0 {
		t.Errorf("Expected step index 0 after previous at start, got %d", session.StepIndex())
	}
	if len(session.Captured()) != 0 {
		t.Errorf("Expected captured photos unchanged, got %v", session.Captured())
	}
}

func TestSession_RecaptureOverwrites(t *testing.T) {
	session := NewSession("")
	firstID := Angles()[0].ID

	if _, err := session.CapturePhoto("file:///photos/old.jpg"); err != nil {
		t.Fatalf("CapturePhoto failed: %v", err)
	}
	if err := session.GoToPreviousStep(); err != nil {
		t.Fatalf("GoToPreviousStep failed: %v", err)
	}
	if _, err := session.CapturePhoto("file:///photos/new.jpg"); err != nil {
		t.Fatalf("CapturePhoto failed: %v", err)
	}

	captured := session.Captured()
	if captured[firstID] != "file:///photos/new.jpg" {
		t.Errorf("Expected re-capture to overwrite, got %q", captured[firstID])
	}
	if len(captured) != 1 {
		t.Errorf("Expected exactly 1 entry after re-capture, got %d", len(captured))
	}
}

func TestSession_FinishEarlyPartial(t *testing.T) {
	session := NewSession("")
	angles := Angles()

	// Capture two of six steps, then finish
	for i := 0; i < 2; i++ {
		if _, err := session.CapturePhoto(fmt.Sprintf("file:///photos/%d.jpg", i)); err != nil {
			t.Fatalf("CapturePhoto failed: %v", err)
		}
	}

	captured, err := session.FinishEarly()
	if err != nil {
		t.Fatalf("FinishEarly failed: %v", err)
	}

	if len(captured) != 2 {
		t.Fatalf("Expected 2 entries in completion mapping, got %d", len(captured))
	}
	for _, a := range angles[:2] {
		if _, ok := captured[a.ID]; !ok {
			t.Errorf("Completion mapping missing entry for step %q", a.ID)
		}
	}
	for _, a := range angles[2:] {
		if _, ok := captured[a.ID]; ok {
			t.Errorf("Completion mapping has entry for unvisited step %q", a.ID)
		}
	}

	if !session.Completed() {
		t.Error("Expected session completed after FinishEarly")
	}
}

func TestSession_FinishEarlyWithNoPhotos(t *testing.T) {
	session := NewSession("")

	captured, err := session.FinishEarly()
	if err != nil {
		t.Fatalf("FinishEarly failed: %v", err)
	}
	if len(captured) != 0 {
		t.Errorf("Expected empty completion mapping, got %v", captured)
	}
}

func TestSession_EmptyLocationRejected(t *testing.T) {
	session := NewSession("")

	if _, err := session.CapturePhoto(""); !errors.Is(err, ErrEmptyPhotoLocation) {
		t.Fatalf("Expected ErrEmptyPhotoLocation, got %v", err)
	}

	if session.StepIndex() != 0 {
		t.Errorf("Expected step index unchanged, got %d", session.StepIndex())
	}
	if len(session.Captured()) != 0 {
		t.Errorf("Expected no captured photos, got %v", session.Captured())
	}
}

func TestSession_CompletionMappingIsACopy(t *testing.T) {
	session := NewSession("")

	if _, err := session.CapturePhoto("file:///photos/a.jpg"); err != nil {
		t.Fatalf("CapturePhoto failed: %v", err)
	}

	captured, err := session.FinishEarly()
	if err != nil {
		t.Fatalf("FinishEarly failed: %v", err)
	}

	captured["injected"] = "file:///photos/evil.jpg"
	if len(session.Captured()) != 1 {
		t.Error("Mutating the returned mapping leaked into the session")
	}
}
