package bot

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	svc   Service
	store *SessionStore
}

func NewHandler(svc Service, store *SessionStore) *Handler {
	return &Handler{svc: svc, store: store}
}

// HandleWebhook — inbound message event from the gateway.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SenderID   string `json:"sender_id"`
		SenderName string `json:"sender_name"`
		Text       string `json:"text"`
		ChatType   string `json:"chat_type"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if payload.SenderID == "" || payload.Text == "" {
		http.Error(w, "missing sender_id or text", http.StatusBadRequest)
		return
	}

	chat := ChatDirect
	if payload.ChatType == string(ChatGroup) {
		chat = ChatGroup
	}

	msg := &Message{
		SenderID:   payload.SenderID,
		SenderName: payload.SenderName,
		Text:       payload.Text,
		Chat:       chat,
	}

	if err := h.svc.HandleIncoming(r.Context(), msg); err != nil {
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}

	// The gateway only wants an ACK.
	w.WriteHeader(http.StatusOK)
}

// HandleSessions — diagnostics snapshot of all active sessions.
func (h *Handler) HandleSessions(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.store.ListAll())
}
