package capture

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session tracks one run of the guided capture flow. It walks the fixed
// angle sequence, records a photo location per step, and completes either
// after the last step or when the user finishes early. Once completed it
// rejects every further transition.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu        sync.Mutex
	steps     []AngleStep
	stepIndex int
	captured  map[string]string
	completed bool
}

// NewSession creates a session positioned at the first angle step
func NewSession(id string) *Session {
	if id == "" {
		id = uuid.New().String()
	}

	return &Session{
		ID:        id,
		CreatedAt: time.Now(),
		steps:     Angles(),
		captured:  make(map[string]string),
	}
}

// CapturePhoto records a photo location for the current step and advances
// the sequence. Re-capturing a step that already has a photo overwrites
// the earlier location. On the last step the session completes and the
// full mapping is returned; before that the returned mapping is nil.
func (s *Session) CapturePhoto(location string) (map[string]string, error) {
	if location == "" {
		return nil, ErrEmptyPhotoLocation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return nil, ErrSessionComplete
	}

	s.captured[s.steps[s.stepIndex].ID] = location

	if s.stepIndex == len(s.steps)-1 {
		s.completed = true
		return copyCaptured(s.captured), nil
	}

	s.stepIndex++
	return nil, nil
}

// RetryCurrentStep removes the current step's photo, if any, without
// moving the sequence
func (s *Session) RetryCurrentStep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return ErrSessionComplete
	}

	delete(s.captured, s.steps[s.stepIndex].ID)
	return nil
}

// GoToPreviousStep steps the sequence back one angle. At the first step it
// is a no-op. Captured photos are untouched.
func (s *Session) GoToPreviousStep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return ErrSessionComplete
	}

	if s.stepIndex > 0 {
		s.stepIndex--
	}
	return nil
}

// FinishEarly completes the session at its current step and returns the
// possibly partial photo mapping
func (s *Session) FinishEarly() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return nil, ErrSessionComplete
	}

	s.completed = true
	return copyCaptured(s.captured), nil
}

// CurrentStep returns the angle step the session is waiting on, or nil
// once the session has completed
func (s *Session) CurrentStep() *AngleStep {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return nil
	}

	step := s.steps[s.stepIndex]
	return &step
}

// StepIndex returns the current position in the angle sequence
func (s *Session) StepIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepIndex
}

// TotalSteps returns the length of the angle sequence
func (s *Session) TotalSteps() int {
	return len(s.steps)
}

// IsLastStep reports whether the session is positioned on the final angle
func (s *Session) IsLastStep() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stepIndex == len(s.steps)-1
}

// Completed reports whether the session has finished
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Captured returns a copy of the step-id-to-location mapping recorded so
// far
func (s *Session) Captured() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyCaptured(s.captured)
}

func copyCaptured(captured map[string]string) map[string]string {
	out := make(map[string]string, len(captured))
	for id, location := range captured {
		out[id] = location
	}
	return out
}
