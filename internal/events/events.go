// Package events publishes fire-and-forget domain events for the notification service.
package events

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

const (
	BidAccepted      = "bid.accepted"
	BidExpired       = "bid.expired"
	PaymentSettled   = "payment.settled"
	AccountSuspended = "account.suspended"
)

type Event struct {
	Type        string     `json:"type"`
	RequestID   string     `json:"request_id,omitempty"`
	BidID       string     `json:"bid_id,omitempty"`
	BuyerID     int        `json:"buyer_id,omitempty"`
	SellerID    int        `json:"seller_id,omitempty"`
	ReceiptCode string     `json:"receipt_id,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	At          time.Time  `json:"at"`
}

// Notifier never blocks the caller on delivery and never reports failures.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// Publisher is the subset of *nats.Conn used for delivery.
type Publisher interface {
	Publish(subj string, data []byte) error
}

type NATSNotifier struct {
	pub    Publisher
	prefix string
}

func NewNATSNotifier(pub Publisher, prefix string) *NATSNotifier {
	return &NATSNotifier{
		pub:    pub,
		prefix: prefix,
	}
}

func (n *NATSNotifier) Notify(_ context.Context, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("can't encode event", zap.String("type", event.Type), zap.Error(err))
		return
	}
	subject := n.prefix + event.Type
	if err := n.pub.Publish(subject, data); err != nil {
		zap.L().Warn("can't publish event", zap.String("subject", subject), zap.Error(err))
	}
}

// LogNotifier is used when no broker is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, event Event) {
	zap.L().Info("event",
		zap.String("type", event.Type),
		zap.String("bidID", event.BidID),
		zap.String("requestID", event.RequestID),
		zap.String("receiptID", event.ReceiptCode),
	)
}
