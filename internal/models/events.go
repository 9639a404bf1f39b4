package models

import "time"

// Event types
const (
	EventTypeQuoteGenerated     = "QUOTE_GENERATED_EVENT"
	EventTypeQuoteStatusChanged = "QUOTE_STATUS_CHANGED_EVENT"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// QuoteGeneratedEvent published when a quote is generated from a cart
type QuoteGeneratedEvent struct {
	BaseEvent
	QuoteID  string          `json:"quote_id"`
	UserID   string          `json:"user_id"`
	Subtotal float64         `json:"subtotal"`
	Total    float64         `json:"total"`
	Items    []QuoteItemData `json:"items"`
}

// QuoteStatusChangedEvent published on any quote status transition
// (PAID, CANCELLED, EXPIRED)
type QuoteStatusChangedEvent struct {
	BaseEvent
	QuoteID       string `json:"quote_id"`
	UserID        string `json:"user_id"`
	OldStatus     string `json:"old_status"`
	NewStatus     string `json:"new_status"`
	PaymentMode   string `json:"payment_mode,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// QuoteItemData represents line data carried in events
type QuoteItemData struct {
	PartCode  string  `json:"part_code"`
	Units     int     `json:"units"`
	UnitPrice float64 `json:"unit_price"`
	Amount    float64 `json:"amount"`
}
