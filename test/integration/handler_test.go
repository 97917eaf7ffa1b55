package integration

import (
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/adapter/source"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
)

// TestHandler_ListItineraries_Defaults tests the ranked listing endpoint
// with default parameters over the real fixture files.
func TestHandler_ListItineraries_Defaults(t *testing.T) {
	// Arrange
	ts := NewTestServer(CreateFileBackedUseCase(t))

	// Act
	resp := ts.ItinerariesRequest("")

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	listing, err := resp.ParseRankedListing()
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyCheap, listing.Policy)
	assert.True(t, listing.IncludeReturn)
	assert.Equal(t, RoundTripDataset, listing.Metadata.Dataset)
	assert.Equal(t, 3, listing.Metadata.TotalResults)

	// Member order of the JSON object carries the ranking
	assert.Equal(t, []string{"1", "0", "2"}, listing.Itineraries.Keys())

	rec, ok := listing.Itineraries.Get("1")
	require.True(t, ok)
	assert.Equal(t, 546.80, rec[domain.KeyTotalAmount])
	assert.Equal(t, "19ч 15м", rec[domain.KeyOnwardTimeInfo])
	assert.Equal(t, float64(69300), rec[domain.KeyOnwardTotalTime])
	assert.Equal(t, false, rec[domain.KeyOnwardIsDirect])
}

// TestHandler_ListItineraries_OneWay tests dataset selection via need_return
// and a non-default policy.
func TestHandler_ListItineraries_OneWay(t *testing.T) {
	ts := NewTestServer(CreateFileBackedUseCase(t))

	resp := ts.ItinerariesRequest("need_return=false&action=fast")

	assert.Equal(t, http.StatusOK, resp.Code)

	listing, err := resp.ParseRankedListing()
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyFast, listing.Policy)
	assert.False(t, listing.IncludeReturn)
	assert.Equal(t, OneWayDataset, listing.Metadata.Dataset)
	assert.Equal(t, []string{"0", "2", "1"}, listing.Itineraries.Keys())

	// One-way records have no return trio
	rec, ok := listing.Itineraries.Get("0")
	require.True(t, ok)
	assert.Nil(t, rec[domain.KeyReturnTotalTime])
}

// TestHandler_ListItineraries_UnknownPolicyDegrades tests that an unknown
// action quietly falls back to the cheap ordering.
func TestHandler_ListItineraries_UnknownPolicyDegrades(t *testing.T) {
	ts := NewTestServer(CreateFileBackedUseCase(t))

	resp := ts.ItinerariesRequest("action=bogus")

	assert.Equal(t, http.StatusOK, resp.Code)

	listing, err := resp.ParseRankedListing()
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyCheap, listing.Policy)
	assert.Equal(t, []string{"1", "0", "2"}, listing.Itineraries.Keys())
}

// TestHandler_ListItineraries_InvalidNeedReturn tests the validation error
// response shape.
func TestHandler_ListItineraries_InvalidNeedReturn(t *testing.T) {
	ts := NewTestServer(CreateFileBackedUseCase(t))

	resp := ts.ItinerariesRequest("need_return=yes")

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	assert.Equal(t, false, errResp["success"])

	errorObj, ok := errResp["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "validation_error", errorObj["code"])
}

// TestHandler_ListItineraries_DatasetUnavailable tests the 503 response
// when the data directory holds no datasets.
func TestHandler_ListItineraries_DatasetUnavailable(t *testing.T) {
	fileSource := source.NewFileSource(t.TempDir())
	cachingSource, err := source.NewCachingSource(fileSource, 4, zerolog.Nop())
	require.NoError(t, err)
	ts := NewTestServer(CreateUseCase(cachingSource))

	resp := ts.ItinerariesRequest("")

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)

	errResp, err := resp.ParseError()
	require.NoError(t, err)
	errorObj, ok := errResp["error"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "dataset_unavailable", errorObj["code"])
}

// TestHandler_DiffItineraries tests the ticket diff endpoint end to end.
func TestHandler_DiffItineraries(t *testing.T) {
	ts := NewTestServer(CreateFileBackedUseCase(t))

	resp := ts.ItineraryDiffRequest("")

	assert.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParseDiffResult()
	require.NoError(t, err)
	require.Len(t, result.Differences, 2)
	require.Len(t, result.NewTickets, 1)
	assert.Empty(t, result.WrongTickets)

	// The connecting ticket survives the JSON round trip as a sequence
	aiEntry := result.Differences[1]
	assert.False(t, aiEntry.Ticket.IsDirect())
	assert.Equal(t, 2, aiEntry.Ticket.Len())
	require.Len(t, aiEntry.Difference, 2)
	assert.NotEmpty(t, aiEntry.Difference[1])

	assert.Equal(t, "518", flightNumber(result.NewTickets[0].First()))
}

// TestHandler_DiffItineraries_Swapped tests diffing in the reverse
// direction via the option parameter.
func TestHandler_DiffItineraries_Swapped(t *testing.T) {
	ts := NewTestServer(CreateFileBackedUseCase(t))

	resp := ts.ItineraryDiffRequest("option=2")

	assert.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParseDiffResult()
	require.NoError(t, err)
	assert.Len(t, result.Differences, 2)
	require.Len(t, result.NewTickets, 1)
	assert.Equal(t, "1521", flightNumber(result.NewTickets[0].First()))
}

// TestHandler_DiffItineraries_InvalidOption tests option validation.
func TestHandler_DiffItineraries_InvalidOption(t *testing.T) {
	ts := NewTestServer(CreateFileBackedUseCase(t))

	resp := ts.ItineraryDiffRequest("option=3")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// TestHandler_DiffDocuments tests the structural diff endpoint.
func TestHandler_DiffDocuments(t *testing.T) {
	ts := NewTestServer(CreateFileBackedUseCase(t))

	resp := ts.DocumentDiffRequest()

	assert.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParseTagDiff()
	require.NoError(t, err)
	assert.Equal(t, []string{"ReturnPricedItinerary"}, result.Tags)

	carriers := result.Attributes["Carrier"]
	require.Len(t, carriers, 2)
	assert.Equal(t, map[string]string{"id": "TG"}, carriers[0])
	assert.Equal(t, map[string]string{"id": "FZ"}, carriers[1])
}

// TestHandler_TravelTime tests the direct travel-time endpoint.
func TestHandler_TravelTime(t *testing.T) {
	ts := NewTestServer(CreateFileBackedUseCase(t))

	resp := ts.TravelTimeRequest("2018-10-27T0305", "2018-10-28T0425")

	assert.Equal(t, http.StatusOK, resp.Code)

	result, err := resp.ParseTravelTime()
	require.NoError(t, err)
	assert.Equal(t, "1д 1ч 20м", result.TimeInfo)
	assert.Equal(t, 91200, result.TotalSeconds)
}

// TestHandler_TravelTime_Validation tests missing and malformed timestamps.
func TestHandler_TravelTime_Validation(t *testing.T) {
	ts := NewTestServer(CreateFileBackedUseCase(t))

	// Missing arrival
	resp := ts.Get("/api/v1/travel-time?departure=2018-10-27T0305")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// Unparseable departure
	resp = ts.TravelTimeRequest("yesterday", "2018-10-27T1225")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

// TestHandler_Health tests the health check endpoint.
func TestHandler_Health(t *testing.T) {
	ts := NewTestServer(CreateFileBackedUseCase(t))

	resp := ts.HealthRequest()

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(resp.Body))
}
