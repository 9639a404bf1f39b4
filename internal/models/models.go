package models

import "time"

// CartItem represents a line in a user's cart. Price is the computed unit
// price at the time the item was added; SelectedLength is set for per-unit
// priced products cut to a chosen length.
type CartItem struct {
	ID                string              `json:"id"`
	Name              string              `json:"name"`
	Price             float64             `json:"price"`
	Quantity          int                 `json:"quantity"`
	SKU               string              `json:"sku"`
	Brand             string              `json:"brand"`
	Image             string              `json:"image"`
	SelectedLength    *float64            `json:"selected_length,omitempty"`
	LengthUnit        string              `json:"length_unit,omitempty"`
	MutableProperties []QuoteLineProperty `json:"mutable_properties,omitempty"`
	AddedAt           int64               `json:"added_at"`
}

// QuoteLineProperty records a configured mutable property (e.g. length) on a
// quoted line, serialized the way the order document expects it.
type QuoteLineProperty struct {
	PropertyName  string `json:"propertyName"`
	PropertyValue string `json:"propertyValue"`
	Unit          string `json:"unit"`
}

// Quote represents a persisted quotation generated from a cart.
type Quote struct {
	ID                     string    `db:"id" json:"id"`
	UserID                 string    `db:"user_id" json:"user_id"`
	Status                 string    `db:"status" json:"status"`
	PaymentMode            string    `db:"payment_mode" json:"payment_mode,omitempty"`
	TransactionID          string    `db:"transaction_id" json:"transaction_id,omitempty"`
	ShipmentVendor         string    `db:"shipment_vendor" json:"shipment_vendor,omitempty"`
	ShipmentIdentifierType string    `db:"shipment_identifier_type" json:"shipment_identifier_type,omitempty"`
	ShipmentIdentifier     string    `db:"shipment_identifier" json:"shipment_identifier,omitempty"`
	ShipmentStatus         string    `db:"shipment_status" json:"shipment_status"`
	Subtotal               float64   `db:"subtotal" json:"subtotal"`
	Shipping               float64   `db:"shipping" json:"shipping"`
	Total                  float64   `db:"total" json:"total"`
	CreatedTime            int64     `db:"created_time" json:"created_time"`
	ValidUpto              int64     `db:"valid_upto" json:"valid_upto"`
	CreatedAt              time.Time `db:"created_at" json:"created_at"`
	UpdatedAt              time.Time `db:"updated_at" json:"updated_at"`
}

// QuoteItem represents a quoted line item.
type QuoteItem struct {
	ID             int64    `db:"id" json:"id"`
	QuoteID        string   `db:"quote_id" json:"quote_id"`
	PartCode       string   `db:"part_code" json:"part_code"`
	Name           string   `db:"name" json:"name"`
	Brand          string   `db:"brand" json:"brand"`
	Units          int      `db:"units" json:"units"`
	UnitPrice      float64  `db:"unit_price" json:"unit_price"`
	Amount         float64  `db:"amount" json:"amount"`
	SelectedLength *float64 `db:"selected_length" json:"selected_length,omitempty"`
	LengthUnit     string   `db:"length_unit" json:"length_unit,omitempty"`
}

// Quote statuses
const (
	QuoteStatusGenerated = "QUOTE_GENERATED"
	QuoteStatusPaid      = "PAID"
	QuoteStatusCancelled = "CANCELLED"
	QuoteStatusExpired   = "EXPIRED"
)

// Shipment statuses
const (
	ShipmentStatusNotStarted = "NOT_STARTED"
	ShipmentStatusInTransit  = "IN_TRANSIT"
	ShipmentStatusDelivered  = "DELIVERED"
)

// ProcessedEvent for idempotency
type ProcessedEvent struct {
	EventID     string    `db:"event_id"`
	EventType   string    `db:"event_type"`
	ProcessedAt time.Time `db:"processed_at"`
}
