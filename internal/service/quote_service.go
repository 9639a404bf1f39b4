package service

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/broker"
	"catalog-service/internal/models"
	"catalog-service/internal/redisclient"
	"catalog-service/internal/store"
	"catalog-service/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuoteService turns carts into persisted quotations and drives their
// lifecycle
type QuoteService struct {
	store          *store.Store
	redis          *redisclient.Client
	cart           *CartService
	eventPublisher *broker.EventPublisher
	validityDays   int
	shippingFee    float64
	logger         *zap.Logger
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	store *store.Store,
	redis *redisclient.Client,
	cart *CartService,
	eventPublisher *broker.EventPublisher,
	validityDays int,
	shippingFee float64,
) *QuoteService {
	return &QuoteService{
		store:          store,
		redis:          redis,
		cart:           cart,
		eventPublisher: eventPublisher,
		validityDays:   validityDays,
		shippingFee:    shippingFee,
		logger:         util.GetLogger(),
	}
}

// GenerateQuote snapshots the user's cart into a quote, persists it, publishes
// the generated event and clears the cart. A per-user lock prevents two
// concurrent generations from double-quoting the same cart.
func (s *QuoteService) GenerateQuote(ctx context.Context, userID string) (*models.Quote, []models.QuoteItem, error) {
	ctx, span := util.StartSpan(ctx, "QuoteService.GenerateQuote")
	defer span.End()

	locked, err := s.redis.AcquireLock(ctx, "quote:"+userID, 30*time.Second)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to acquire quote lock: %w", err)
	}
	if !locked {
		util.QuotesFailedTotal.WithLabelValues("concurrent").Inc()
		return nil, nil, fmt.Errorf("quote generation already in progress for user %s", userID)
	}
	defer func() {
		if err := s.redis.ReleaseLock(context.Background(), "quote:"+userID); err != nil {
			s.logger.Error("Failed to release quote lock", zap.String("user_id", userID), zap.Error(err))
		}
	}()

	cartItems, err := s.cart.GetCart(ctx, userID)
	if err != nil {
		util.QuotesFailedTotal.WithLabelValues("cart_error").Inc()
		return nil, nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(cartItems) == 0 {
		util.QuotesFailedTotal.WithLabelValues("empty_cart").Inc()
		return nil, nil, fmt.Errorf("cart is empty")
	}

	now := time.Now()
	subtotal := s.cart.CartTotal(cartItems)
	total := roundMoney(subtotal + s.shippingFee)

	quote := &models.Quote{
		ID:             uuid.New().String(),
		UserID:         userID,
		Status:         models.QuoteStatusGenerated,
		ShipmentStatus: models.ShipmentStatusNotStarted,
		Subtotal:       subtotal,
		Shipping:       s.shippingFee,
		Total:          total,
		CreatedTime:    now.UnixMilli(),
		ValidUpto:      now.AddDate(0, 0, s.validityDays).UnixMilli(),
	}

	if err := s.store.CreateQuote(ctx, quote); err != nil {
		util.QuotesFailedTotal.WithLabelValues("db_error").Inc()
		return nil, nil, fmt.Errorf("failed to create quote: %w", err)
	}

	quoteItems := make([]models.QuoteItem, 0, len(cartItems))
	eventItems := make([]models.QuoteItemData, 0, len(cartItems))
	for _, line := range cartItems {
		item := models.QuoteItem{
			QuoteID:        quote.ID,
			PartCode:       line.SKU,
			Name:           line.Name,
			Brand:          line.Brand,
			Units:          line.Quantity,
			UnitPrice:      line.Price,
			Amount:         roundMoney(line.Price * float64(line.Quantity)),
			SelectedLength: line.SelectedLength,
			LengthUnit:     line.LengthUnit,
		}

		if err := s.store.CreateQuoteItem(ctx, &item); err != nil {
			util.QuotesFailedTotal.WithLabelValues("db_error").Inc()
			return nil, nil, fmt.Errorf("failed to create quote item: %w", err)
		}

		quoteItems = append(quoteItems, item)
		eventItems = append(eventItems, models.QuoteItemData{
			PartCode:  item.PartCode,
			Units:     item.Units,
			UnitPrice: item.UnitPrice,
			Amount:    item.Amount,
		})
	}

	util.QuotesGeneratedTotal.Inc()
	s.logger.Info("Quote generated",
		zap.String("quote_id", quote.ID),
		zap.String("user_id", userID),
		zap.Float64("total", quote.Total))

	event := &models.QuoteGeneratedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeQuoteGenerated,
			Timestamp: now,
		},
		QuoteID:  quote.ID,
		UserID:   userID,
		Subtotal: quote.Subtotal,
		Total:    quote.Total,
		Items:    eventItems,
	}

	if err := s.eventPublisher.PublishQuoteGenerated(ctx, event); err != nil {
		s.logger.Error("Failed to publish QuoteGenerated event", zap.Error(err))
	}

	if err := s.cart.ClearCart(ctx, userID); err != nil {
		s.logger.Error("Failed to clear cart after quote generation",
			zap.String("user_id", userID), zap.Error(err))
	}

	return quote, quoteItems, nil
}

// GetQuote returns a quote with its line items
func (s *QuoteService) GetQuote(ctx context.Context, quoteID string) (*models.Quote, []models.QuoteItem, error) {
	quote, err := s.store.GetQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.store.GetQuoteItemsByQuoteID(ctx, quoteID)
	if err != nil {
		return nil, nil, err
	}

	return quote, items, nil
}

// ListQuotes returns a user's quotes, newest first, optionally filtered by
// status
func (s *QuoteService) ListQuotes(ctx context.Context, userID, status string) ([]models.Quote, error) {
	return s.store.GetQuotesByUserID(ctx, userID, status)
}

// UpdateStatus transitions a quote out of QUOTE_GENERATED. Only PAID,
// CANCELLED and EXPIRED are reachable, and only from QUOTE_GENERATED.
func (s *QuoteService) UpdateStatus(ctx context.Context, quoteID, newStatus, paymentMode, transactionID string) (*models.Quote, error) {
	quote, err := s.store.GetQuoteByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}

	if err := validateTransition(quote.Status, newStatus); err != nil {
		return nil, err
	}

	if err := s.store.UpdateQuoteStatus(ctx, quoteID, newStatus, paymentMode, transactionID); err != nil {
		return nil, fmt.Errorf("failed to update quote status: %w", err)
	}

	util.QuoteStatusTotal.WithLabelValues(newStatus).Inc()
	s.logger.Info("Quote status updated",
		zap.String("quote_id", quoteID),
		zap.String("old_status", quote.Status),
		zap.String("new_status", newStatus))

	event := &models.QuoteStatusChangedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeQuoteStatusChanged,
			Timestamp: time.Now(),
		},
		QuoteID:       quoteID,
		UserID:        quote.UserID,
		OldStatus:     quote.Status,
		NewStatus:     newStatus,
		PaymentMode:   paymentMode,
		TransactionID: transactionID,
	}
	if err := s.eventPublisher.PublishQuoteStatusChanged(ctx, event); err != nil {
		s.logger.Error("Failed to publish QuoteStatusChanged event", zap.Error(err))
	}

	return s.store.GetQuoteByID(ctx, quoteID)
}

// ExpireQuotes moves all generated quotes past their validity to EXPIRED and
// publishes one status event per quote
func (s *QuoteService) ExpireQuotes(ctx context.Context) (int, error) {
	expired, err := s.store.ExpireQuotes(ctx, time.Now().UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to expire quotes: %w", err)
	}

	for _, quote := range expired {
		util.QuotesExpiredTotal.Inc()
		util.QuoteStatusTotal.WithLabelValues(models.QuoteStatusExpired).Inc()

		event := &models.QuoteStatusChangedEvent{
			BaseEvent: models.BaseEvent{
				EventID:   uuid.New().String(),
				EventType: models.EventTypeQuoteStatusChanged,
				Timestamp: time.Now(),
			},
			QuoteID:   quote.ID,
			UserID:    quote.UserID,
			OldStatus: models.QuoteStatusGenerated,
			NewStatus: models.QuoteStatusExpired,
		}
		if err := s.eventPublisher.PublishQuoteStatusChanged(ctx, event); err != nil {
			s.logger.Error("Failed to publish expiry event",
				zap.String("quote_id", quote.ID), zap.Error(err))
		}
	}

	if len(expired) > 0 {
		s.logger.Info("Expired quotes", zap.Int("count", len(expired)))
	}
	return len(expired), nil
}

func validateTransition(current, next string) error {
	switch next {
	case models.QuoteStatusPaid, models.QuoteStatusCancelled, models.QuoteStatusExpired:
	default:
		return fmt.Errorf("invalid quote status: %s", next)
	}

	if current != models.QuoteStatusGenerated {
		return fmt.Errorf("cannot transition quote from %s to %s", current, next)
	}
	return nil
}
