package capture

import (
	"fmt"
	"io"

	"bilfoto-backend/internal/logging"

	"go.uber.org/zap"
)

// Service drives capture sessions. It owns the session registry and hands
// each uploaded frame to the photo store before the session itself is
// touched, so a failed store never moves the flow forward.
type Service struct {
	manager *Manager
	photos  PhotoStore
}

func NewService(photos PhotoStore) *Service {
	return &Service{
		manager: NewManager(),
		photos:  photos,
	}
}

// StartSession opens a new guided capture session at the first angle
func (s *Service) StartSession() *Session {
	session := s.manager.Create()
	logging.Logger.Info("capture session started",
		zap.String("session_id", session.ID),
		zap.Int("total_steps", session.TotalSteps()))
	return session
}

// GetSession looks up a session by ID
func (s *Service) GetSession(id string) (*Session, error) {
	session, exists := s.manager.Get(id)
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// CapturePhoto stores an uploaded frame and records its location under the
// session's current step. When the frame cannot be stored the session is
// left exactly as it was.
func (s *Service) CapturePhoto(sessionID string, frame io.Reader, mimeType string) (*CapturePhotoResponse, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Completed() {
		return nil, ErrSessionComplete
	}

	location, err := s.photos.SavePhoto(frame, mimeType)
	if err != nil {
		logging.Logger.Error("failed to store captured frame",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	captured, err := session.CapturePhoto(location)
	if err != nil {
		return nil, err
	}

	resp := &CapturePhotoResponse{
		SessionID: sessionID,
		Location:  location,
	}

	if captured != nil {
		resp.Completed = true
		resp.Captured = captured
		logging.Logger.Info("capture session completed",
			zap.String("session_id", sessionID),
			zap.Int("photos", len(captured)))
	} else {
		resp.Next = session.CurrentStep()
	}

	return resp, nil
}

// RetryCurrentStep discards the current step's photo so the user can shoot
// it again
func (s *Service) RetryCurrentStep(sessionID string) (*Session, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.RetryCurrentStep(); err != nil {
		return nil, err
	}
	return session, nil
}

// GoToPreviousStep moves the session back one angle
func (s *Service) GoToPreviousStep(sessionID string) (*Session, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	if err := session.GoToPreviousStep(); err != nil {
		return nil, err
	}
	return session, nil
}

// FinishEarly completes the session with whatever has been captured
func (s *Service) FinishEarly(sessionID string) (map[string]string, error) {
	session, err := s.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	captured, err := session.FinishEarly()
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("capture session finished early",
		zap.String("session_id", sessionID),
		zap.Int("photos", len(captured)),
		zap.Int("total_steps", session.TotalSteps()))

	return captured, nil
}

// CancelSession drops a session without completing it
func (s *Service) CancelSession(sessionID string) error {
	if _, err := s.GetSession(sessionID); err != nil {
		return err
	}

	s.manager.Delete(sessionID)
	return nil
}

// Status assembles the externally visible state of a session
func (s *Service) Status(session *Session) *SessionStatusResponse {
	return &SessionStatusResponse{
		SessionID:  session.ID,
		StepIndex:  session.StepIndex(),
		TotalSteps: session.TotalSteps(),
		Current:    session.CurrentStep(),
		IsLastStep: session.IsLastStep(),
		Captured:   session.Captured(),
		Completed:  session.Completed(),
	}
}
