package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/interfaces"
	"github.com/CenturyFinanceLtd/gradus-assist/internal/models"
)

type stubChatService struct {
	response *interfaces.ChatResponse
	err      error
	lastReq  *interfaces.ChatRequest
}

func (s *stubChatService) HandleChatMessage(_ context.Context, req *interfaces.ChatRequest) (*interfaces.ChatResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func TestChatHandler_Success(t *testing.T) {
	svc := &stubChatService{response: &interfaces.ChatResponse{
		Reply:    "Gradus offers three pathways.",
		Contexts: []models.ContextItem{{ID: "flagship-programs", Title: "Flagship programs"}},
		Provider: "claude",
		Model:    "claude-sonnet-4-20250514",
	}}
	handler := NewChatHandler(svc, arbor.NewLogger())

	body := `{"message":"what programs does Gradus offer?","history":[{"role":"user","content":"hi"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ChatHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp interfaces.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "claude", resp.Provider)
	assert.Equal(t, "Gradus offers three pathways.", resp.Reply)
	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "what programs does Gradus offer?", svc.lastReq.Message)
}

func TestChatHandler_EmptyMessage(t *testing.T) {
	svc := &stubChatService{err: interfaces.ErrEmptyMessage}
	handler := NewChatHandler(svc, arbor.NewLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":""}`))
	rec := httptest.NewRecorder()

	handler.ChatHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Message field is required")
}

func TestChatHandler_InvalidBody(t *testing.T) {
	handler := NewChatHandler(&stubChatService{}, arbor.NewLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.ChatHandler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandler_MethodNotAllowed(t *testing.T) {
	handler := NewChatHandler(&stubChatService{}, arbor.NewLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rec := httptest.NewRecorder()

	handler.ChatHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestChatHandler_PageDescriptorStringHeadings(t *testing.T) {
	svc := &stubChatService{response: &interfaces.ChatResponse{Reply: "ok", Provider: "claude"}}
	handler := NewChatHandler(svc, arbor.NewLogger())

	// The widget sends headings either as an array or a pipe-joined string
	body := `{"message":"what is this page","page":{"title":"Pricing","headings":"Plans | Enterprise","path":"/pricing"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.ChatHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.lastReq.Page)
	assert.Equal(t, models.StringList{"Plans", "Enterprise"}, svc.lastReq.Page.Headings)
}
