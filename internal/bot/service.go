package bot

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type service struct {
	store      *SessionStore
	classifier *Classifier
	hours      *HoursGate
	dispatcher *Dispatcher
	orders     OrderRepo
	menuFile   string
	baseDelay  time.Duration

	mu    sync.Mutex
	turns map[string]*sync.Mutex
}

func NewService(
	store *SessionStore,
	classifier *Classifier,
	hours *HoursGate,
	dispatcher *Dispatcher,
	orders OrderRepo,
	menuFile string,
	baseDelay time.Duration,
) Service {
	return &service{
		store:      store,
		classifier: classifier,
		hours:      hours,
		dispatcher: dispatcher,
		orders:     orders,
		menuFile:   menuFile,
		baseDelay:  baseDelay,
		turns:      make(map[string]*sync.Mutex),
	}
}

// HandleIncoming runs one conversation turn for the sender. Turns for the
// same customer are serialized; distinct customers proceed concurrently.
func (s *service) HandleIncoming(ctx context.Context, msg *Message) error {
	if msg.Chat == ChatGroup {
		return nil
	}

	unlock := s.lockCustomer(msg.SenderID)
	defer unlock()

	log.Printf("[bot] customer=%s text=%q", msg.SenderID, msg.Text)

	// A start trigger always opens a fresh conversation, even mid-order.
	if s.classifier.IsStartTrigger(msg.Text) {
		return s.startOrder(ctx, msg)
	}

	sess, ok := s.store.Get(msg.SenderID)
	if !ok {
		// No order in progress and not a trigger: silently dropped.
		return nil
	}

	return s.advance(ctx, sess, msg)
}

func (s *service) startOrder(ctx context.Context, msg *Message) error {
	if !s.hours.IsOpen() {
		log.Printf("[bot] customer=%s start outside opening hours", msg.SenderID)
		return s.dispatcher.SendSequence(ctx, msg.SenderID,
			closedNotice(s.hours.OpenHour(), s.hours.CloseHour()))
	}

	s.store.Put(&Session{
		CustomerID:   msg.SenderID,
		CustomerName: msg.SenderName,
		Stage:        StageFulfillment,
		CreatedAt:    time.Now(),
	})

	return s.dispatcher.SendSequence(ctx, msg.SenderID,
		greetingSequence(msg.SenderName, s.menuFile, s.baseDelay))
}

func (s *service) advance(ctx context.Context, sess *Session, msg *Message) error {
	replies, completed := transition(sess, msg.Text, s.baseDelay)

	if completed {
		s.store.Delete(sess.CustomerID)
		// A discarded broken session has no payment and is not an order.
		if sess.Payment != "" {
			s.archive(ctx, sess)
		}
	} else {
		s.store.Put(sess)
	}

	return s.dispatcher.SendSequence(ctx, sess.CustomerID, replies)
}

// transition applies one inbound reply to the session and returns the
// outbound sequence for the turn. It mutates sess but performs no I/O; the
// caller persists the session and dispatches the replies. An unrecognized
// reply re-prompts and leaves the session untouched.
func transition(sess *Session, text string, d time.Duration) (replies []Reply, completed bool) {
	switch sess.Stage {
	case StageFulfillment:
		choice, ok := ParseFulfillment(text)
		if !ok {
			return textReply(textRetryFulfillment, 0), false
		}
		sess.Fulfillment = choice
		if choice == FulfillmentDelivery {
			sess.Stage = StageAddress
			return textReply(textAskAddress, d), false
		}
		sess.Stage = StagePayment
		return textReply(textAskPayment, d), false

	case StageAddress:
		sess.Address = strings.TrimSpace(text)
		sess.Stage = StagePayment
		return textReply(textAddressSaved, d), false

	case StagePayment:
		method, ok := ParsePayment(text)
		if !ok {
			return textReply(textRetryPayment, 0), false
		}
		sess.Payment = method
		if method == PaymentCash {
			sess.Stage = StageChange
			return textReply(textAskChange, d), false
		}
		return textReply(textConfirm, d), true

	case StageChange:
		sess.ChangeFor = strings.TrimSpace(text)
		return changeConfirmation(sess.ChangeFor, d), true
	}

	// Unknown stage — drop the session rather than loop forever on it.
	log.Printf("[bot] customer=%s unknown stage %q, discarding session", sess.CustomerID, sess.Stage)
	return nil, true
}

// archive records the completed order. Failures are logged only; the
// customer's confirmation never depends on the archive.
func (s *service) archive(ctx context.Context, sess *Session) {
	order := &Order{
		ID:          uuid.NewString(),
		CustomerID:  sess.CustomerID,
		Fulfillment: sess.Fulfillment,
		Address:     sess.Address,
		Payment:     sess.Payment,
		ChangeFor:   sess.ChangeFor,
		CompletedAt: time.Now(),
	}

	if err := s.orders.SaveOrder(ctx, order); err != nil {
		log.Printf("[bot] order archive failed customer=%s: %v", sess.CustomerID, err)
		return
	}

	log.Printf("[bot] order completed customer=%s fulfillment=%s payment=%s",
		sess.CustomerID, sess.Fulfillment, sess.Payment)
}

func (s *service) lockCustomer(customerID string) func() {
	s.mu.Lock()
	m, ok := s.turns[customerID]
	if !ok {
		m = &sync.Mutex{}
		s.turns[customerID] = m
	}
	s.mu.Unlock()

	m.Lock()
	return m.Unlock
}
