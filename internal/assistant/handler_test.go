package assistant

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

// setupHandlerTest initializes a router, mock service, and handler for testing
func setupHandlerTest(t *testing.T) (*chi.Mux, *MockService, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockService := NewMockService(ctrl)

	handler := NewHandler(mockService)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)

	return r, mockService, ctrl
}

func TestHandleChat_Success(t *testing.T) {
	r, mockService, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	reqBody := ChatRequest{Message: "Hello"}
	reply := &ChatReply{Response: "Hi there", Model: "echo"}

	mockService.EXPECT().
		Reply(gomock.Any(), "Hello").
		Return(reply, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/api/chat", bytes.NewBuffer(bodyBytes))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}

	var respBody ChatReply
	if err := json.NewDecoder(rr.Body).Decode(&respBody); err != nil {
		t.Fatalf("Could not decode response: %v", err)
	}
	if respBody.Response != "Hi there" || respBody.Model != "echo" {
		t.Errorf("Unexpected reply: %+v", respBody)
	}
}

func TestHandleChat_EmptyMessage(t *testing.T) {
	r, mockService, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	// The service shouldn't be called for an empty message.
	mockService.EXPECT().Reply(gomock.Any(), gomock.Any()).Times(0)

	for _, body := range []string{`{"message": ""}`, `{"message": "   "}`, `{}`} {
		req := httptest.NewRequest("POST", "/api/chat", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("body %s: Expected status %d, got %d", body, http.StatusBadRequest, rr.Code)
		}
		var errBody map[string]string
		json.NewDecoder(rr.Body).Decode(&errBody)
		if errBody["error"] != "No message provided" {
			t.Errorf("body %s: Expected error 'No message provided', got %q", body, errBody["error"])
		}
	}
}

func TestHandleChat_InvalidPayload(t *testing.T) {
	r, mockService, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockService.EXPECT().Reply(gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest("POST", "/api/chat", bytes.NewBufferString("not json"))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestHandleChat_ServiceError(t *testing.T) {
	r, mockService, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	// Set up mock to return an error
	mockService.EXPECT().
		Reply(gomock.Any(), "Hello").
		Return(nil, fmt.Errorf("model is down")).
		Times(1)

	bodyBytes, _ := json.Marshal(ChatRequest{Message: "Hello"})
	req := httptest.NewRequest("POST", "/api/chat", bytes.NewBuffer(bodyBytes))
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}

	// Check for the error message
	var errBody map[string]string
	json.NewDecoder(rr.Body).Decode(&errBody)
	if errBody["error"] != "model is down" {
		t.Errorf("Expected error '%s', got '%s'", "model is down", errBody["error"])
	}
}

func TestHandleChat_WrongMethod(t *testing.T) {
	r, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	req := httptest.NewRequest("GET", "/api/chat", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status %d, got %d", http.StatusMethodNotAllowed, rr.Code)
	}
}
