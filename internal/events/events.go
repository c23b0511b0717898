// Package events publishes order and payment notifications for other
// services (kitchen display, accounting). Delivery is best effort.
package events

import (
	"context"
	"time"
)

const (
	OrderPlacedKey     = "order.placed"
	PaymentRecordedKey = "payment.recorded"
)

type OrderItem struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

type OrderPlaced struct {
	OrderID    int64       `json:"order_id"`
	CustomerID int64       `json:"customer_id"`
	OrderType  string      `json:"order_type"`
	Subtotal   string      `json:"subtotal"`
	Tax        string      `json:"tax"`
	Total      string      `json:"total"`
	Items      []OrderItem `json:"items"`
	CreatedBy  string      `json:"created_by"`
	CreatedAt  time.Time   `json:"created_at"`
}

// PaymentRecorded never carries the full card number.
type PaymentRecorded struct {
	PaymentID  int64  `json:"payment_id"`
	CustomerID int64  `json:"customer_id"`
	CardLast4  string `json:"card_last4"`
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlaced) error
	PublishPaymentRecorded(ctx context.Context, event PaymentRecorded) error
	Close() error
}

// Noop is used when no broker is configured.
type Noop struct{}

func (Noop) PublishOrderPlaced(context.Context, OrderPlaced) error         { return nil }
func (Noop) PublishPaymentRecorded(context.Context, PaymentRecorded) error { return nil }
func (Noop) Close() error                                                  { return nil }
