package worker

import (
	"context"
	"log"
	"time"

	"catalog-service/internal/broker"
	"catalog-service/internal/models"
	"catalog-service/internal/service"
	"catalog-service/internal/store"
	"catalog-service/internal/util"

	"go.uber.org/zap"
)

// QuoteWorker consumes quote lifecycle events for downstream bookkeeping.
// Events are deduplicated through the processed_events table so redelivery
// is harmless.
type QuoteWorker struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	store        *store.Store
	logger       *zap.Logger
}

// NewQuoteWorker creates a new quote worker
func NewQuoteWorker(consumer *broker.Consumer, st *store.Store) *QuoteWorker {
	w := &QuoteWorker{
		consumer: consumer,
		store:    st,
		logger:   util.GetLogger(),
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnQuoteGenerated(w.handleQuoteGenerated)
	eventHandler.OnQuoteStatusChanged(w.handleQuoteStatusChanged)
	w.eventHandler = eventHandler

	return w
}

// Start starts the worker
func (w *QuoteWorker) Start(ctx context.Context) error {
	log.Println("Starting quote worker...")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the worker
func (w *QuoteWorker) Stop() error {
	log.Println("Stopping quote worker...")
	return w.consumer.Close()
}

func (w *QuoteWorker) handleQuoteGenerated(ctx context.Context, event *models.QuoteGeneratedEvent) error {
	processed, err := w.store.IsEventProcessed(ctx, event.EventID)
	if err != nil {
		return err
	}
	if processed {
		w.logger.Debug("Skipping already processed event", zap.String("event_id", event.EventID))
		return nil
	}

	w.logger.Info("Quote generated event received",
		zap.String("quote_id", event.QuoteID),
		zap.String("user_id", event.UserID),
		zap.Float64("total", event.Total),
		zap.Int("items", len(event.Items)))

	return w.store.MarkEventProcessed(ctx, event.EventID, event.EventType)
}

func (w *QuoteWorker) handleQuoteStatusChanged(ctx context.Context, event *models.QuoteStatusChangedEvent) error {
	processed, err := w.store.IsEventProcessed(ctx, event.EventID)
	if err != nil {
		return err
	}
	if processed {
		return nil
	}

	w.logger.Info("Quote status changed event received",
		zap.String("quote_id", event.QuoteID),
		zap.String("old_status", event.OldStatus),
		zap.String("new_status", event.NewStatus))

	return w.store.MarkEventProcessed(ctx, event.EventID, event.EventType)
}

// ExpiryWorker periodically sweeps generated quotes past their validity
type ExpiryWorker struct {
	quoteService *service.QuoteService
	interval     time.Duration
	logger       *zap.Logger
}

// NewExpiryWorker creates a new expiry worker
func NewExpiryWorker(quoteService *service.QuoteService, interval time.Duration) *ExpiryWorker {
	return &ExpiryWorker{
		quoteService: quoteService,
		interval:     interval,
		logger:       util.GetLogger(),
	}
}

// Start runs the expiry sweep until the context is cancelled
func (ew *ExpiryWorker) Start(ctx context.Context) error {
	log.Printf("Starting expiry worker: interval=%s", ew.interval)

	ticker := time.NewTicker(ew.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Expiry worker context cancelled, stopping...")
			return ctx.Err()
		case <-ticker.C:
			count, err := ew.quoteService.ExpireQuotes(ctx)
			if err != nil {
				ew.logger.Error("Expiry sweep failed", zap.Error(err))
				continue
			}
			if count > 0 {
				ew.logger.Info("Expiry sweep completed", zap.Int("expired", count))
			}
		}
	}
}
