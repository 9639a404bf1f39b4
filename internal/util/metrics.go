package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CatalogProductsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "catalog_products_loaded",
		Help: "Number of sellable products in the loaded catalog",
	})

	ProductQueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "product_queries_total",
		Help: "Total number of product list queries",
	})

	ProductQueryResults = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "product_query_results",
		Help:    "Number of products returned per query",
		Buckets: prometheus.ExponentialBuckets(1, 4, 6),
	})

	CartOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_operations_total",
		Help: "Total number of cart operations",
	}, []string{"operation"})

	QuotesGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quotes_generated_total",
		Help: "Total number of quotes generated",
	})

	QuotesFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quotes_failed_total",
		Help: "Total number of failed quote generations",
	}, []string{"reason"})

	QuotesExpiredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "quotes_expired_total",
		Help: "Total number of quotes expired past their validity",
	})

	QuoteStatusTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_status_total",
		Help: "Total number of quote status transitions",
	}, []string{"status"})

	QuotePDFRenderLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "quote_pdf_render_latency_seconds",
		Help:    "Latency of quotation PDF rendering",
		Buckets: prometheus.DefBuckets,
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
