package bot

import (
	"sync"
	"time"
)

type Stage string

const (
	StageFulfillment Stage = "awaiting_fulfillment"
	StageAddress     Stage = "awaiting_address"
	StagePayment     Stage = "awaiting_payment"
	StageChange      Stage = "awaiting_change"
)

type Fulfillment string

const (
	FulfillmentPickup   Fulfillment = "pickup"
	FulfillmentDelivery Fulfillment = "delivery"
)

type Payment string

const (
	PaymentPix  Payment = "pix"
	PaymentCard Payment = "card"
	PaymentCash Payment = "cash"
)

// Session — one customer's order conversation in progress. A session exists
// only while the order has been started but not completed.
type Session struct {
	CustomerID   string      `json:"customer_id"`
	CustomerName string      `json:"customer_name,omitempty"`
	Stage        Stage       `json:"stage"`
	Fulfillment  Fulfillment `json:"fulfillment,omitempty"`
	Address      string      `json:"address,omitempty"`
	Payment      Payment     `json:"payment,omitempty"`
	ChangeFor    string      `json:"change_for,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

// SessionStore keeps active sessions in memory, keyed by customer ID.
// last-writer-wins per key; the service serializes turns per customer.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

func (s *SessionStore) Get(customerID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[customerID]
	if !ok {
		return nil, false
	}
	copied := *sess
	return &copied, true
}

func (s *SessionStore) Put(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *sess
	s.sessions[sess.CustomerID] = &copied
}

func (s *SessionStore) Delete(customerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, customerID)
}

// ListAll returns a snapshot of every active session, for diagnostics.
func (s *SessionStore) ListAll() []Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, *sess)
	}
	return out
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
