package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all itinerary analysis API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *ItineraryHandler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Itinerary endpoints
	itineraries := api.Group("/itineraries")
	itineraries.GET("", h.ListItineraries)
	itineraries.GET("/diff", h.DiffItineraries)

	// Document-level structural diff
	api.GET("/documents/diff", h.DiffDocuments)

	// Direct travel-time calculation
	api.GET("/travel-time", h.TravelTime)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *ItineraryHandler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	// API v1 group with middleware
	api := e.Group("/api/v1", middleware...)

	itineraries := api.Group("/itineraries")
	itineraries.GET("", h.ListItineraries)
	itineraries.GET("/diff", h.DiffItineraries)

	api.GET("/documents/diff", h.DiffDocuments)
	api.GET("/travel-time", h.TravelTime)
}
