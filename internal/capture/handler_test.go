package capture

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestServer(t *testing.T) (*httptest.Server, *Service) {
	t.Helper()

	service := NewService(&mockPhotoStore{})
	e := echo.New()
	NewHandler(service).RegisterRoutes(e)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server, service
}

func postPhoto(t *testing.T, url string) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="photo"; filename="frame.jpg"`}
	header["Content-Type"] = []string{"image/jpeg"}
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("CreatePart failed: %v", err)
	}
	if _, err := part.Write([]byte("frame-bytes")); err != nil {
		t.Fatalf("Failed to write part: %v", err)
	}
	writer.Close()

	resp, err := http.Post(url, writer.FormDataContentType(), body)
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func TestHandler_GuidedCaptureFlow(t *testing.T) {
	server, _ := newTestServer(t)

	// Open a session
	resp, err := http.Post(server.URL+"/capture/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", resp.StatusCode)
	}

	var created CreateSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(created.Steps) != 6 {
		t.Fatalf("Expected 6 angle steps, got %d", len(created.Steps))
	}
	if created.Current == nil || created.Current.ID != "front" {
		t.Fatalf("Expected first step 'front', got %+v", created.Current)
	}

	base := server.URL + "/capture/sessions/" + created.SessionID

	// Capture two frames
	for i := 0; i < 2; i++ {
		photoResp := postPhoto(t, base+"/photo")
		if photoResp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200 for photo upload, got %d", photoResp.StatusCode)
		}
		photoResp.Body.Close()
	}

	// Step back, then retry the (already captured) second angle
	for _, action := range []string{"/previous", "/retry"} {
		actionResp, err := http.Post(base+action, "application/json", nil)
		if err != nil {
			t.Fatalf("POST %s failed: %v", action, err)
		}
		actionResp.Body.Close()
		if actionResp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200 for %s, got %d", action, actionResp.StatusCode)
		}
	}

	// Finish early: only the first angle still has a photo
	finishResp, err := http.Post(base+"/finish", "application/json", nil)
	if err != nil {
		t.Fatalf("Failed to finish session: %v", err)
	}
	defer finishResp.Body.Close()

	var completed CompleteSessionResponse
	if err := json.NewDecoder(finishResp.Body).Decode(&completed); err != nil {
		t.Fatalf("Failed to decode finish response: %v", err)
	}
	if len(completed.Captured) != 1 {
		t.Errorf("Expected 1 captured photo after retry, got %d", len(completed.Captured))
	}
	if _, ok := completed.Captured["front"]; !ok {
		t.Errorf("Expected 'front' in completion mapping, got %v", completed.Captured)
	}

	// Completed sessions reject further transitions
	conflictResp, err := http.Post(base+"/finish", "application/json", nil)
	if err != nil {
		t.Fatalf("POST finish failed: %v", err)
	}
	conflictResp.Body.Close()
	if conflictResp.StatusCode != http.StatusConflict {
		t.Errorf("Expected status 409 finishing a completed session, got %d", conflictResp.StatusCode)
	}
}

func TestHandler_CapturePhotoValidation(t *testing.T) {
	server, service := newTestServer(t)
	session := service.StartSession()

	// Missing file
	resp, err := http.Post(server.URL+"/capture/sessions/"+session.ID+"/photo", "application/json", nil)
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400 without photo file, got %d", resp.StatusCode)
	}

	// Unknown session
	resp2 := postPhoto(t, server.URL+"/capture/sessions/missing/photo")
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown session, got %d", resp2.StatusCode)
	}
}
