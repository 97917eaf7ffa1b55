// Package integration provides helpers and integration tests for the
// itinerary analysis service. Integration tests verify that components work
// together correctly, from the HTTP handlers through the use case down to a
// real file-backed document source.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/itinerary-insights/itinerary-analysis-service/internal/adapter/http"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/adapter/source"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/infrastructure/timeutil"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/usecase"
	"github.com/itinerary-insights/itinerary-analysis-service/test/testutil"
)

// Dataset names of the fixture documents under test/testdata.
const (
	RoundTripDataset = "roundtrip.xml"
	OneWayDataset    = "oneway.xml"
	MalformedDataset = "malformed.xml"

	// AllowedOrigin is the canonical origin of the fixture documents.
	AllowedOrigin = "DXB"
)

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ItineraryHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.ItineraryUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewItineraryHandler(uc, httpAdapter.Datasets{
		RoundTrip: RoundTripDataset,
		OneWay:    OneWayDataset,
	})
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request against the test server.
func (ts *TestServer) Get(path string) Response {
	httpReq := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// ItinerariesRequest makes a ranked-listing request with the given raw query.
func (ts *TestServer) ItinerariesRequest(query string) Response {
	path := "/api/v1/itineraries"
	if query != "" {
		path += "?" + query
	}
	return ts.Get(path)
}

// ItineraryDiffRequest makes a ticket diff request with the given raw query.
func (ts *TestServer) ItineraryDiffRequest(query string) Response {
	path := "/api/v1/itineraries/diff"
	if query != "" {
		path += "?" + query
	}
	return ts.Get(path)
}

// DocumentDiffRequest makes a structural document diff request.
func (ts *TestServer) DocumentDiffRequest() Response {
	return ts.Get("/api/v1/documents/diff")
}

// TravelTimeRequest makes a travel-time request for the given timestamps.
func (ts *TestServer) TravelTimeRequest(departure, arrival string) Response {
	return ts.Get("/api/v1/travel-time?departure=" + departure + "&arrival=" + arrival)
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health")
}

// ParseRankedListing parses the response body as a RankedListing.
func (r *Response) ParseRankedListing() (*domain.RankedListing, error) {
	var listing domain.RankedListing
	if err := json.Unmarshal(r.Body, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// ParseDiffResult parses the response body as a DiffResult.
func (r *Response) ParseDiffResult() (*domain.DiffResult, error) {
	var result domain.DiffResult
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseTagDiff parses the response body as a TagAttributeDiff.
func (r *Response) ParseTagDiff() (*domain.TagAttributeDiff, error) {
	var result domain.TagAttributeDiff
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseTravelTime parses the response body as a TravelTime.
func (r *Response) ParseTravelTime() (*domain.TravelTime, error) {
	var result domain.TravelTime
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// FixedClock returns a mock clock pinned shortly after the fixture
// documents' response time.
func FixedClock() *timeutil.MockClock {
	return timeutil.NewMockClock(time.Date(2018, 10, 27, 9, 30, 0, 0, time.UTC))
}

// CreateUseCase creates a use case over the given document source with the
// fixture origin and a silent logger.
func CreateUseCase(src usecase.DocumentSource) usecase.ItineraryUseCase {
	return usecase.NewItineraryUseCase(src, usecase.Config{
		AllowedOrigin: AllowedOrigin,
		Clock:         FixedClock(),
		Logger:        zerolog.Nop(),
	})
}

// CreateFileBackedUseCase creates a use case over the real fixture files
// under test/testdata, behind the LRU caching source.
func CreateFileBackedUseCase(t *testing.T) usecase.ItineraryUseCase {
	t.Helper()

	fileSource := source.NewFileSource(testutil.TestDataDir(t))
	cachingSource, err := source.NewCachingSource(fileSource, 4, zerolog.Nop())
	require.NoError(t, err)

	return CreateUseCase(cachingSource)
}
