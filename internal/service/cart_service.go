package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"catalog-service/internal/models"
	"catalog-service/internal/redisclient"
	"catalog-service/internal/util"

	"go.uber.org/zap"
)

// CartService manages per-user carts held in Redis
type CartService struct {
	catalog *CatalogService
	redis   *redisclient.Client
	logger  *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(catalogService *CatalogService, redis *redisclient.Client) *CartService {
	return &CartService{
		catalog: catalogService,
		redis:   redis,
		logger:  util.GetLogger(),
	}
}

// AddToCartRequest represents a request to add a product to the cart
type AddToCartRequest struct {
	ProductID      string   `json:"product_id" binding:"required"`
	Quantity       int      `json:"quantity" binding:"required,min=1"`
	SelectedLength *float64 `json:"selected_length,omitempty"`
}

// AddToCart adds a product line to the user's cart. For per-unit priced
// products the line price is recomputed from the selected length; adding an
// already-present product replaces its line.
func (s *CartService) AddToCart(ctx context.Context, userID string, req *AddToCartRequest) (*models.CartItem, error) {
	view, err := s.catalog.GetProduct(req.ProductID)
	if err != nil {
		return nil, err
	}

	price := view.Price
	var selectedLength *float64
	var lengthUnit string
	var lineProperties []models.QuoteLineProperty

	// Selected lengths only apply to per-unit priced products
	if req.SelectedLength != nil && view.PricePerUnit != nil {
		length := *req.SelectedLength
		if length <= 0 {
			return nil, fmt.Errorf("selected length must be positive")
		}
		price = roundMoney(*view.PricePerUnit * length)
		selectedLength = req.SelectedLength

		for _, prop := range view.MutableProperties {
			if prop.Name != "length" {
				continue
			}
			lengthUnit = prop.Unit
			lineProperties = append(lineProperties, models.QuoteLineProperty{
				PropertyName:  prop.Name,
				PropertyValue: strconv.FormatFloat(length, 'f', -1, 64),
				Unit:          prop.Unit,
			})
		}
	}

	item := &models.CartItem{
		ID:                view.ID,
		Name:              view.Name,
		Price:             price,
		Quantity:          req.Quantity,
		SKU:               view.SKU,
		Brand:             view.Brand,
		Image:             view.Image,
		SelectedLength:    selectedLength,
		LengthUnit:        lengthUnit,
		MutableProperties: lineProperties,
		AddedAt:           time.Now().UnixMilli(),
	}

	if err := s.putItem(ctx, userID, item); err != nil {
		return nil, err
	}

	util.CartOperationsTotal.WithLabelValues("add").Inc()
	s.logger.Info("Cart item added",
		zap.String("user_id", userID),
		zap.String("product_id", item.ID),
		zap.Int("quantity", item.Quantity))

	return item, nil
}

// UpdateQuantity sets the quantity of a cart line. A quantity of zero or less
// removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		if err := s.RemoveFromCart(ctx, userID, productID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	payload, found, err := s.redis.GetCartItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("cart item not found: %s", productID)
	}

	var item models.CartItem
	if err := json.Unmarshal(payload, &item); err != nil {
		return nil, fmt.Errorf("failed to decode cart item: %w", err)
	}

	item.Quantity = quantity
	if err := s.putItem(ctx, userID, &item); err != nil {
		return nil, err
	}

	util.CartOperationsTotal.WithLabelValues("update").Inc()
	return &item, nil
}

// RemoveFromCart deletes a cart line
func (s *CartService) RemoveFromCart(ctx context.Context, userID, productID string) error {
	if err := s.redis.RemoveCartItem(ctx, userID, productID); err != nil {
		return err
	}
	util.CartOperationsTotal.WithLabelValues("remove").Inc()
	return nil
}

// ClearCart deletes every line in the user's cart
func (s *CartService) ClearCart(ctx context.Context, userID string) error {
	if err := s.redis.ClearCart(ctx, userID); err != nil {
		return err
	}
	util.CartOperationsTotal.WithLabelValues("clear").Inc()
	return nil
}

// GetCart returns the user's cart lines ordered by when they were added
func (s *CartService) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	payloads, err := s.redis.GetCartItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]models.CartItem, 0, len(payloads))
	for productID, payload := range payloads {
		var item models.CartItem
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			s.logger.Warn("Skipping undecodable cart item",
				zap.String("user_id", userID),
				zap.String("product_id", productID),
				zap.Error(err))
			continue
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].AddedAt < items[j].AddedAt })
	return items, nil
}

// CartTotal sums price times quantity across the cart
func (s *CartService) CartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return roundMoney(total)
}

func (s *CartService) putItem(ctx context.Context, userID string, item *models.CartItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to encode cart item: %w", err)
	}
	return s.redis.SetCartItem(ctx, userID, item.ID, payload)
}

func roundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
