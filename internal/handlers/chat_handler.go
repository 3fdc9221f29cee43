package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/CenturyFinanceLtd/gradus-assist/internal/interfaces"
)

// ChatHandler handles chat-related HTTP requests
type ChatHandler struct {
	chatService interfaces.ChatService
	logger      arbor.ILogger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService interfaces.ChatService, logger arbor.ILogger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// ChatHandler handles POST /api/chat requests
func (h *ChatHandler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "POST") {
		return
	}

	requestID := uuid.New().String()

	var req interfaces.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("Failed to decode chat request")
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	h.logger.Info().
		Str("request_id", requestID).
		Int("message_length", len(req.Message)).
		Int("history_length", len(req.History)).
		Bool("has_page", req.Page != nil).
		Msg("Processing chat request")

	response, err := h.chatService.HandleChatMessage(r.Context(), &req)
	if err != nil {
		if errors.Is(err, interfaces.ErrEmptyMessage) {
			WriteError(w, http.StatusBadRequest, "Message field is required")
			return
		}
		h.logger.Error().Err(err).Str("request_id", requestID).Msg("Failed to generate chat response")
		WriteError(w, http.StatusInternalServerError, "Failed to generate response")
		return
	}

	h.logger.Info().
		Str("request_id", requestID).
		Str("provider", response.Provider).
		Int("context_count", len(response.Contexts)).
		Msg("Chat response generated")

	WriteJSON(w, http.StatusOK, response)
}
