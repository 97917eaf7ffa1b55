package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/adapter/http/response"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/usecase"
)

// Datasets names the two documents the API operates on.
type Datasets struct {
	// RoundTrip is the dataset with both onward and return legs
	RoundTrip string

	// OneWay is the dataset with onward legs only
	OneWay string
}

// ItineraryHandler handles HTTP requests for the itinerary analysis endpoints.
type ItineraryHandler struct {
	useCase  usecase.ItineraryUseCase
	datasets Datasets
}

// NewItineraryHandler creates a new ItineraryHandler with the given use case
// and dataset names.
func NewItineraryHandler(uc usecase.ItineraryUseCase, datasets Datasets) *ItineraryHandler {
	return &ItineraryHandler{
		useCase:  uc,
		datasets: datasets,
	}
}

// ListItineraries handles GET /api/v1/itineraries
//
// @Summary List ranked itineraries
// @Description Extracts, enriches, and ranks the itineraries of one dataset under the given ordering policy
// @Tags itineraries
// @Produce json
// @Param need_return query string false "true for round trips, false for one-way" default(true)
// @Param action query string false "ranking policy: cheap, expensive, fast, slow, optimal" default(cheap)
// @Success 200 {object} domain.RankedListing
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 422 {object} response.ErrorDetail "Unprocessable document"
// @Failure 503 {object} response.ErrorDetail "Dataset unavailable"
// @Router /api/v1/itineraries [get]
func (h *ItineraryHandler) ListItineraries(c echo.Context) error {
	req := ParseListItinerariesRequest(c)
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	dataset := h.datasets.OneWay
	if req.IncludeReturn() {
		dataset = h.datasets.RoundTrip
	}

	result, err := h.useCase.ListRankedItineraries(
		c.Request().Context(), dataset, req.IncludeReturn(), domain.SortPolicy(req.Action))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.AnalysisResult(c, result)
}

// DiffItineraries handles GET /api/v1/itineraries/diff
//
// @Summary Diff two itinerary datasets
// @Description Indexes both datasets by outbound ticket key and classifies tickets as changed, new, or wrong-origin
// @Tags itineraries
// @Produce json
// @Param option query string false "1 diffs round-trip against one-way, 2 the reverse" default(1)
// @Success 200 {object} domain.DiffResult
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Dataset unavailable"
// @Router /api/v1/itineraries/diff [get]
func (h *ItineraryHandler) DiffItineraries(c echo.Context) error {
	req := ParseDiffItinerariesRequest(c)
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	baseline, candidate := h.datasets.RoundTrip, h.datasets.OneWay
	if req.Option == "2" {
		baseline, candidate = candidate, baseline
	}

	result, err := h.useCase.DiffItineraries(c.Request().Context(), baseline, candidate)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.AnalysisResult(c, result)
}

// DiffDocuments handles GET /api/v1/documents/diff
//
// @Summary Diff document tags and attributes
// @Description Computes the coarse structural difference between the two datasets: tags present only in the first, attribute sets present on exactly one side
// @Tags documents
// @Produce json
// @Success 200 {object} domain.TagAttributeDiff
// @Failure 503 {object} response.ErrorDetail "Dataset unavailable"
// @Router /api/v1/documents/diff [get]
func (h *ItineraryHandler) DiffDocuments(c echo.Context) error {
	result, err := h.useCase.DiffTagsAndAttributes(
		c.Request().Context(), h.datasets.RoundTrip, h.datasets.OneWay)
	if err != nil {
		return h.handleError(c, err)
	}
	return response.AnalysisResult(c, result)
}

// TravelTime handles GET /api/v1/travel-time
//
// @Summary Compute travel time
// @Description Computes the elapsed time between two ISO-8601 timestamps as a label and a second count
// @Tags travel-time
// @Produce json
// @Param departure query string true "departure timestamp"
// @Param arrival query string true "arrival timestamp"
// @Success 200 {object} domain.TravelTime
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/travel-time [get]
func (h *ItineraryHandler) TravelTime(c echo.Context) error {
	req := ParseTravelTimeRequest(c)
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.ComputeTravelTime(req.Departure, req.Arrival)
	if err != nil {
		// Timestamps come straight from the query string here, so a parse
		// failure is the caller's fault, not the document's.
		if errors.Is(err, domain.ErrInvalidTimestamp) {
			return response.ValidationErrorWithMessage(c, err.Error())
		}
		return h.handleError(c, err)
	}
	return response.AnalysisResult(c, result)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ItineraryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ItineraryHandler) handleError(c echo.Context, err error) error {
	// Check for a dataset that could not be resolved or opened
	if errors.Is(err, domain.ErrDatasetUnavailable) {
		return response.DatasetUnavailable(c)
	}

	// Check for document content the pipeline rejected
	if errors.Is(err, domain.ErrMalformedDocument) ||
		errors.Is(err, domain.ErrMissingPrice) ||
		errors.Is(err, domain.ErrInvalidPriceFormat) ||
		errors.Is(err, domain.ErrInvalidTimestamp) {
		return response.UnprocessableDocument(c, err.Error())
	}

	// Check for invalid request parameters surfaced by the core
	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	// Default to internal server error
	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *ItineraryHandler) Health(c echo.Context) error {
	return response.Health(c)
}
