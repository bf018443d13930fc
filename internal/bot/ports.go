package bot

import (
	"context"
	"time"
)

type ChatType string

const (
	ChatDirect ChatType = "direct"
	ChatGroup  ChatType = "group"
)

// Message — inbound event delivered by the gateway webhook.
type Message struct {
	SenderID   string
	SenderName string
	Text       string
	Chat       ChatType
}

// Order — record of a completed conversation, archived for the kitchen.
type Order struct {
	ID          string
	CustomerID  string
	Fulfillment Fulfillment
	Address     string
	Payment     Payment
	ChangeFor   string
	CompletedAt time.Time
}

// Outbound — the messaging collaborator the bot replies through.
type Outbound interface {
	SendText(ctx context.Context, to string, text string) error
	SendFile(ctx context.Context, to string, file string, caption string) error
}

// OrderRepo — persistence for completed orders.
type OrderRepo interface {
	SaveOrder(ctx context.Context, o *Order) error
}

// Service — orchestration of the ordering conversation.
type Service interface {
	HandleIncoming(ctx context.Context, msg *Message) error
}
