package store

import (
	"context"
	"database/sql"
	"fmt"

	"catalog-service/internal/models"
)

// CreateQuote persists a new quote
func (s *Store) CreateQuote(ctx context.Context, quote *models.Quote) error {
	query := `
		INSERT INTO quotes (
			id, user_id, status, payment_mode, transaction_id,
			shipment_vendor, shipment_identifier_type, shipment_identifier, shipment_status,
			subtotal, shipping, total, created_time, valid_upto
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`

	return s.db.GetContext(ctx, quote, query,
		quote.ID, quote.UserID, quote.Status, quote.PaymentMode, quote.TransactionID,
		quote.ShipmentVendor, quote.ShipmentIdentifierType, quote.ShipmentIdentifier, quote.ShipmentStatus,
		quote.Subtotal, quote.Shipping, quote.Total, quote.CreatedTime, quote.ValidUpto)
}

// GetQuoteByID retrieves a quote by ID
func (s *Store) GetQuoteByID(ctx context.Context, id string) (*models.Quote, error) {
	var quote models.Quote
	err := s.db.GetContext(ctx, &quote, "SELECT * FROM quotes WHERE id = $1", id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("quote not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// GetQuotesByUserID retrieves quotes for a user, optionally filtered by status
func (s *Store) GetQuotesByUserID(ctx context.Context, userID, status string) ([]models.Quote, error) {
	var quotes []models.Quote
	if status != "" {
		err := s.db.SelectContext(ctx, &quotes,
			"SELECT * FROM quotes WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC",
			userID, status)
		return quotes, err
	}
	err := s.db.SelectContext(ctx, &quotes,
		"SELECT * FROM quotes WHERE user_id = $1 ORDER BY created_at DESC", userID)
	return quotes, err
}

// UpdateQuoteStatus updates a quote's status and payment fields
func (s *Store) UpdateQuoteStatus(ctx context.Context, quoteID, status, paymentMode, transactionID string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE quotes SET status = $1, payment_mode = $2, transaction_id = $3, updated_at = NOW() WHERE id = $4",
		status, paymentMode, transactionID, quoteID)
	return err
}

// UpdateQuoteShipment updates shipment tracking fields on a quote
func (s *Store) UpdateQuoteShipment(ctx context.Context, quoteID, vendor, identifierType, identifier, status string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE quotes
		 SET shipment_vendor = $1, shipment_identifier_type = $2,
		     shipment_identifier = $3, shipment_status = $4, updated_at = NOW()
		 WHERE id = $5`,
		vendor, identifierType, identifier, status, quoteID)
	return err
}

// ExpireQuotes marks all generated quotes past their validity as expired and
// returns them for event publication
func (s *Store) ExpireQuotes(ctx context.Context, now int64) ([]models.Quote, error) {
	var quotes []models.Quote
	err := s.db.SelectContext(ctx, &quotes,
		`UPDATE quotes SET status = $1, updated_at = NOW()
		 WHERE status = $2 AND valid_upto < $3
		 RETURNING *`,
		models.QuoteStatusExpired, models.QuoteStatusGenerated, now)
	return quotes, err
}

// CreateQuoteItem persists a quoted line item
func (s *Store) CreateQuoteItem(ctx context.Context, item *models.QuoteItem) error {
	query := `
		INSERT INTO quote_items (quote_id, part_code, name, brand, units, unit_price, amount, selected_length, length_unit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	return s.db.GetContext(ctx, &item.ID, query,
		item.QuoteID, item.PartCode, item.Name, item.Brand,
		item.Units, item.UnitPrice, item.Amount, item.SelectedLength, item.LengthUnit)
}

// GetQuoteItemsByQuoteID retrieves all line items for a quote
func (s *Store) GetQuoteItemsByQuoteID(ctx context.Context, quoteID string) ([]models.QuoteItem, error) {
	var items []models.QuoteItem
	err := s.db.SelectContext(ctx, &items,
		"SELECT * FROM quote_items WHERE quote_id = $1 ORDER BY id", quoteID)
	return items, err
}
