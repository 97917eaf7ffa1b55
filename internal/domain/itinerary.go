package domain

// Tag names of the airfare-search document schema.
const (
	// TagItineraryContainer is the element holding one priced itinerary.
	// The documents also nest an element of the same name inside each
	// itinerary leg; the extractor tells them apart by their children.
	TagItineraryContainer = "Flights"

	// TagOnwardItinerary is the outbound leg of a priced itinerary.
	TagOnwardItinerary = "OnwardPricedItinerary"

	// TagReturnItinerary is the return leg of a priced itinerary.
	TagReturnItinerary = "ReturnPricedItinerary"

	// TagPricing is the pricing block of a priced itinerary.
	TagPricing = "Pricing"

	// TagFlight is a single flight segment.
	TagFlight = "Flight"

	// TagServiceCharges is one charge entry inside the pricing block.
	TagServiceCharges = "ServiceCharges"
)

// Field names of a flattened flight segment.
const (
	FieldCarrier            = "Carrier"
	FieldCarrierID          = "id"
	FieldFlightNumber       = "FlightNumber"
	FieldSource             = "Source"
	FieldDepartureTimestamp = "DepartureTimeStamp"
	FieldArrivalTimestamp   = "ArrivalTimeStamp"
)

// Attribute names of a charge entry.
const (
	ChargeAttrType     = "type"
	ChargeAttrKind     = "ChargeType"
	ChargeTypeAdult    = "SingleAdult"
	ChargeKindTotal    = "TotalAmount"
	ChargeTextKey      = "text"
)

// Keys of the derived fields attached to an itinerary record by enrichment.
// The return trio is nil when the itinerary has no return leg.
const (
	KeyTotalAmount      = "total_amount"
	KeyOnwardTotalTime  = "onward_total_time"
	KeyOnwardTimeInfo   = "onward_time_info"
	KeyOnwardIsDirect   = "onward_is_direct"
	KeyReturnTotalTime  = "return_total_time"
	KeyReturnTimeInfo   = "return_time_info"
	KeyReturnIsDirect   = "return_is_direct"
)

// TravelTime is the elapsed duration between two timestamps.
type TravelTime struct {
	// TimeInfo is the human-readable label, e.g. "6ч 35м" or "1д 1ч 15м"
	TimeInfo string `json:"time_info"`

	// TotalSeconds is the elapsed time in seconds, used for sorting.
	// Negative when arrival precedes departure; propagated as-is.
	TotalSeconds int `json:"total_seconds"`
}

// RankedListing is the result of the ranked-itineraries use case.
type RankedListing struct {
	// Policy is the ordering policy that produced the listing
	Policy SortPolicy `json:"policy"`

	// IncludeReturn reports whether return legs were requested
	IncludeReturn bool `json:"include_return"`

	// Metadata describes the pipeline execution
	Metadata ListingMetadata `json:"metadata"`

	// Itineraries maps the extraction-order identity key to each enriched
	// record, reordered under the policy with original keys preserved
	Itineraries *OrderedRecords `json:"itineraries"`
}

// ListingMetadata contains metadata about a pipeline run.
type ListingMetadata struct {
	// Dataset is the name of the source document
	Dataset string `json:"dataset"`

	// TotalResults is the number of itineraries returned
	TotalResults int `json:"total_results"`

	// ElapsedMs is the total pipeline duration in milliseconds
	ElapsedMs int64 `json:"elapsed_ms"`
}
