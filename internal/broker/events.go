package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"catalog-service/internal/models"

	"github.com/segmentio/kafka-go"
)

// EventPublisher handles publishing domain events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishQuoteGenerated publishes QuoteGenerated event
func (ep *EventPublisher) PublishQuoteGenerated(ctx context.Context, event *models.QuoteGeneratedEvent) error {
	key := fmt.Sprintf("quote-%s", event.QuoteID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishQuoteStatusChanged publishes QuoteStatusChanged event
func (ep *EventPublisher) PublishQuoteStatusChanged(ctx context.Context, event *models.QuoteStatusChangedEvent) error {
	key := fmt.Sprintf("quote-%s", event.QuoteID)
	return ep.producer.PublishEvent(ctx, key, event)
}

// EventHandler handles incoming events
type EventHandler struct {
	onQuoteGenerated     func(context.Context, *models.QuoteGeneratedEvent) error
	onQuoteStatusChanged func(context.Context, *models.QuoteStatusChangedEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnQuoteGenerated registers a handler for QuoteGenerated events
func (eh *EventHandler) OnQuoteGenerated(handler func(context.Context, *models.QuoteGeneratedEvent) error) {
	eh.onQuoteGenerated = handler
}

// OnQuoteStatusChanged registers a handler for QuoteStatusChanged events
func (eh *EventHandler) OnQuoteStatusChanged(handler func(context.Context, *models.QuoteStatusChangedEvent) error) {
	eh.onQuoteStatusChanged = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	log.Printf("Handling event: type=%s, id=%s", baseEvent.EventType, baseEvent.EventID)

	switch baseEvent.EventType {
	case models.EventTypeQuoteGenerated:
		if eh.onQuoteGenerated != nil {
			var event models.QuoteGeneratedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal QuoteGenerated event: %w", err)
			}
			return eh.onQuoteGenerated(ctx, &event)
		}

	case models.EventTypeQuoteStatusChanged:
		if eh.onQuoteStatusChanged != nil {
			var event models.QuoteStatusChangedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal QuoteStatusChanged event: %w", err)
			}
			return eh.onQuoteStatusChanged(ctx, &event)
		}

	default:
		log.Printf("Unhandled event type: %s", baseEvent.EventType)
	}

	return nil
}
