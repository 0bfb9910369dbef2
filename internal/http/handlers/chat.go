package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"clinicbot/internal/chat"
	"clinicbot/pkg/logging"
)

// ChatHandler handles HTTP requests for the chat conversation.
type ChatHandler struct {
	svc    *chat.Service
	logger *logging.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(svc *chat.Service, logger *logging.Logger) *ChatHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChatHandler{svc: svc, logger: logger}
}

// MessageRequest is the body for POST /chat/message.
type MessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// MessageResponse wraps a chat turn with the session it belongs to.
type MessageResponse struct {
	SessionID string `json:"session_id"`
	chat.Turn
}

// PostMessage handles POST /chat/message requests. A missing session ID
// starts a new session.
func (h *ChatHandler) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode chat request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		req.SessionID = uuid.NewString()
	}

	turn := h.svc.HandleMessage(r.Context(), req.SessionID, req.Message)

	h.logger.Info("chat turn handled", "session_id", req.SessionID, "intent", turn.Intent)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MessageResponse{SessionID: req.SessionID, Turn: turn})
}

// HistoryResponse is the response for GET /chat/{sessionID}/history.
type HistoryResponse struct {
	SessionID string         `json:"session_id"`
	Messages  []chat.Message `json:"messages"`
	Count     int            `json:"count"`
}

// GetHistory handles GET /chat/{sessionID}/history requests.
func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "missing session_id", http.StatusBadRequest)
		return
	}

	messages := h.svc.History(r.Context(), sessionID)
	if messages == nil {
		messages = []chat.Message{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HistoryResponse{
		SessionID: sessionID,
		Messages:  messages,
		Count:     len(messages),
	})
}
