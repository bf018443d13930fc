package bot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type stubService struct {
	got *Message
	err error
}

func (s *stubService) HandleIncoming(_ context.Context, msg *Message) error {
	s.got = msg
	return s.err
}

func TestWebhookAcceptsMessage(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, NewSessionStore())

	body := `{"sender_id":"5511999@c.us","sender_name":"Maria Silva","text":"menu","chat_type":"direct"}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/message", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleWebhook(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if svc.got == nil {
		t.Fatal("service was not called")
	}
	if svc.got.SenderID != "5511999@c.us" || svc.got.Text != "menu" || svc.got.Chat != ChatDirect {
		t.Fatalf("unexpected message: %+v", svc.got)
	}
}

func TestWebhookPassesGroupFlagThrough(t *testing.T) {
	svc := &stubService{}
	h := NewHandler(svc, NewSessionStore())

	body := `{"sender_id":"g1","text":"menu","chat_type":"group"}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/message", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleWebhook(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if svc.got == nil || svc.got.Chat != ChatGroup {
		t.Fatalf("group flag lost: %+v", svc.got)
	}
}

func TestWebhookRejectsInvalidJSON(t *testing.T) {
	h := NewHandler(&stubService{}, NewSessionStore())

	req := httptest.NewRequest(http.MethodPost, "/webhook/message", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()

	h.HandleWebhook(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestWebhookRejectsMissingFields(t *testing.T) {
	h := NewHandler(&stubService{}, NewSessionStore())

	for _, body := range []string{
		`{"text":"menu"}`,
		`{"sender_id":"c1"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/webhook/message", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.HandleWebhook(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: unexpected status %d", body, rec.Code)
		}
	}
}

func TestWebhookReportsProcessingError(t *testing.T) {
	svc := &stubService{err: context.DeadlineExceeded}
	h := NewHandler(svc, NewSessionStore())

	body := `{"sender_id":"c1","text":"menu"}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/message", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.HandleWebhook(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestSessionsEndpointListsActiveSessions(t *testing.T) {
	store := NewSessionStore()
	store.Put(&Session{CustomerID: "c1", Stage: StagePayment, Fulfillment: FulfillmentPickup})
	h := NewHandler(&stubService{}, store)

	req := httptest.NewRequest(http.MethodGet, "/sessions", nil)
	rec := httptest.NewRecorder()

	h.HandleSessions(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var sessions []Session
	if err := json.Unmarshal(rec.Body.Bytes(), &sessions); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(sessions) != 1 || sessions[0].CustomerID != "c1" || sessions[0].Stage != StagePayment {
		t.Fatalf("unexpected snapshot: %+v", sessions)
	}
}
