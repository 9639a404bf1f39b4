package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"catalog-service/internal/service"
	"catalog-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	catalogService *service.CatalogService
	cartService    *service.CartService
	quoteService   *service.QuoteService
	featuredCount  int
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalogService *service.CatalogService,
	cartService *service.CartService,
	quoteService *service.QuoteService,
	featuredCount int,
) *Handler {
	return &Handler{
		catalogService: catalogService,
		cartService:    cartService,
		quoteService:   quoteService,
		featuredCount:  featuredCount,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.listProducts)
		v1.GET("/products/featured", h.featuredProducts)
		v1.GET("/products/:id", h.getProduct)
		v1.GET("/categories", h.listCategories)
		v1.GET("/brands", h.listBrands)
		v1.GET("/parts/facets", h.partFacets)

		v1.GET("/cart", h.getCart)
		v1.POST("/cart/items", h.addToCart)
		v1.PATCH("/cart/items/:id", h.updateCartItem)
		v1.DELETE("/cart/items/:id", h.removeCartItem)
		v1.DELETE("/cart", h.clearCart)

		v1.POST("/quotes", h.generateQuote)
		v1.GET("/quotes", h.listQuotes)
		v1.GET("/quotes/:id", h.getQuote)
		v1.GET("/quotes/:id/pdf", h.getQuotePDF)
		v1.PATCH("/quotes/:id/status", h.updateQuoteStatus)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// listProducts handles product listing with category/part scope, facet
// constraints, text search and sorting. Selections and filters arrive as
// JSON-encoded objects in query parameters.
func (h *Handler) listProducts(c *gin.Context) {
	query := service.ProductQuery{
		Category:   c.Query("category"),
		Part:       c.Query("part"),
		Selections: parseJSONMap(c.Query("selections")),
		Filters:    parseJSONMap(c.Query("filters")),
		Search:     c.Query("search"),
		SortBy:     c.Query("sort"),
	}

	products := h.catalogService.ListProducts(query)
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// featuredProducts handles the storefront landing selection
func (h *Handler) featuredProducts(c *gin.Context) {
	limit := h.featuredCount
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	products := h.catalogService.FeaturedProducts(limit)
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// getProduct handles get product by part code
func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Product not found",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, product)
}

// listCategories handles category navigation
func (h *Handler) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.catalogService.Categories()})
}

// listBrands handles the distinct brand listing
func (h *Handler) listBrands(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"brands": h.catalogService.Brands()})
}

// partFacets handles facet configuration for one part
func (h *Handler) partFacets(c *gin.Context) {
	category := c.Query("category")
	part := c.Query("part")
	if category == "" || part == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "category and part query parameters are required",
		})
		return
	}

	facets, err := h.catalogService.PartFacets(category, part)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Part not found",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, facets)
}

// getCart handles cart retrieval
func (h *Handler) getCart(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	items, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load cart",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": h.cartService.CartTotal(items),
	})
}

// addToCart handles adding a product to the cart
func (h *Handler) addToCart(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req service.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	item, err := h.cartService.AddToCart(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Failed to add to cart",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// updateCartItem handles cart line quantity changes
func (h *Handler) updateCartItem(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	item, err := h.cartService.UpdateQuantity(c.Request.Context(), userID, c.Param("id"), req.Quantity)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Failed to update cart item",
			"details": err.Error(),
		})
		return
	}

	if item == nil {
		c.JSON(http.StatusOK, gin.H{"removed": true})
		return
	}
	c.JSON(http.StatusOK, item)
}

// removeCartItem handles cart line removal
func (h *Handler) removeCartItem(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.cartService.RemoveFromCart(c.Request.Context(), userID, c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to remove cart item",
			"details": err.Error(),
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// clearCart handles clearing the entire cart
func (h *Handler) clearCart(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	if err := h.cartService.ClearCart(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to clear cart",
			"details": err.Error(),
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// generateQuote handles quote generation from the current cart
func (h *Handler) generateQuote(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	quote, items, err := h.quoteService.GenerateQuote(c.Request.Context(), userID)
	if err != nil {
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "cart is empty") {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{
			"error":   "Failed to generate quote",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"quote": quote,
		"items": items,
	})
}

// listQuotes handles listing a user's quotes
func (h *Handler) listQuotes(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	quotes, err := h.quoteService.ListQuotes(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to list quotes",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quotes": quotes})
}

// getQuote handles get quote by ID
func (h *Handler) getQuote(c *gin.Context) {
	quote, items, err := h.quoteService.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Quote not found",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quote": quote,
		"items": items,
	})
}

// getQuotePDF handles rendering a quote as a PDF document
func (h *Handler) getQuotePDF(c *gin.Context) {
	quote, items, err := h.quoteService.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Quote not found",
			"details": err.Error(),
		})
		return
	}

	pdf, err := service.RenderQuotePDF(quote, items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to render quote",
			"details": err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=quotation-%s.pdf", quote.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// updateQuoteStatus handles quote status transitions
func (h *Handler) updateQuoteStatus(c *gin.Context) {
	var req struct {
		Status        string `json:"status" binding:"required"`
		PaymentMode   string `json:"payment_mode"`
		TransactionID string `json:"transaction_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	quote, err := h.quoteService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.PaymentMode, req.TransactionID)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Failed to update quote status",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// userID resolves the caller from the X-User-ID header; responds 401 when
// absent
func (h *Handler) userID(c *gin.Context) (string, bool) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "X-User-ID header is required",
		})
		return "", false
	}
	return userID, true
}

// parseJSONMap decodes a JSON object from a query parameter; malformed input
// degrades to no constraints
func parseJSONMap(raw string) map[string]string {
	if raw == "" {
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil
	}
	return m
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
