// Package http provides the HTTP handler layer for the itinerary analysis API.
// It handles query parsing, validation, response formatting, and error mapping.
package http

import (
	"github.com/labstack/echo/v4"
)

// Query parameter names and defaults. The defaults mirror the behavior the
// API has always had: a missing need_return asks for round trips, a missing
// action ranks by price, a missing option diffs round-trip against one-way.
const (
	paramNeedReturn = "need_return"
	paramAction     = "action"
	paramOption     = "option"
	paramDeparture  = "departure"
	paramArrival    = "arrival"

	defaultNeedReturn = "true"
	defaultAction     = "cheap"
	defaultOption     = "1"
)

// Accepted spellings of the need_return flag.
var (
	trueValues  = map[string]bool{"true": true, "True": true, "TRUE": true}
	falseValues = map[string]bool{"false": true, "False": true, "FALSE": true}
)

// ListItinerariesRequest carries the query parameters of the ranked-listing
// endpoint.
type ListItinerariesRequest struct {
	// NeedReturn selects round-trip ("true") or one-way ("false") data
	NeedReturn string

	// Action is the ranking policy; unknown values degrade to "cheap"
	Action string
}

// ParseListItinerariesRequest reads the listing query parameters, applying
// defaults for missing values.
func ParseListItinerariesRequest(c echo.Context) ListItinerariesRequest {
	req := ListItinerariesRequest{
		NeedReturn: c.QueryParam(paramNeedReturn),
		Action:     c.QueryParam(paramAction),
	}
	if req.NeedReturn == "" {
		req.NeedReturn = defaultNeedReturn
	}
	if req.Action == "" {
		req.Action = defaultAction
	}
	return req
}

// Validate checks the listing parameters. The action value is deliberately
// not validated: an unrecognized policy silently degrades to the default
// ordering instead of failing.
func (r *ListItinerariesRequest) Validate() error {
	var errs ValidationErrors
	if !trueValues[r.NeedReturn] && !falseValues[r.NeedReturn] {
		errs.Add(paramNeedReturn, "need_return must be true or false")
	}
	return errs.AsError()
}

// IncludeReturn reports whether the request asks for return legs.
func (r *ListItinerariesRequest) IncludeReturn() bool {
	return trueValues[r.NeedReturn]
}

// DiffItinerariesRequest carries the query parameters of the itinerary-diff
// endpoint.
type DiffItinerariesRequest struct {
	// Option selects the diff direction: "1" diffs round-trip against
	// one-way, "2" the reverse
	Option string
}

// ParseDiffItinerariesRequest reads the diff query parameters.
func ParseDiffItinerariesRequest(c echo.Context) DiffItinerariesRequest {
	req := DiffItinerariesRequest{Option: c.QueryParam(paramOption)}
	if req.Option == "" {
		req.Option = defaultOption
	}
	return req
}

// Validate checks the diff parameters.
func (r *DiffItinerariesRequest) Validate() error {
	var errs ValidationErrors
	if r.Option != "1" && r.Option != "2" {
		errs.Add(paramOption, `option must be "1" or "2"`)
	}
	return errs.AsError()
}

// TravelTimeRequest carries the query parameters of the travel-time endpoint.
type TravelTimeRequest struct {
	// Departure is the departure timestamp (ISO-8601)
	Departure string

	// Arrival is the arrival timestamp (ISO-8601)
	Arrival string
}

// ParseTravelTimeRequest reads the travel-time query parameters.
func ParseTravelTimeRequest(c echo.Context) TravelTimeRequest {
	return TravelTimeRequest{
		Departure: c.QueryParam(paramDeparture),
		Arrival:   c.QueryParam(paramArrival),
	}
}

// Validate checks the travel-time parameters.
func (r *TravelTimeRequest) Validate() error {
	var errs ValidationErrors
	if r.Departure == "" {
		errs.Add(paramDeparture, "departure is required")
	}
	if r.Arrival == "" {
		errs.Add(paramArrival, "arrival is required")
	}
	return errs.AsError()
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Add appends a field-level error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// AsError returns the collection as an error, or nil when empty.
func (v ValidationErrors) AsError() error {
	if len(v.Errors) == 0 {
		return nil
	}
	return &v
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// ToMap converts the errors to a field→message mapping for responses.
func (v *ValidationErrors) ToMap() map[string]string {
	out := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		out[e.Field] = e.Message
	}
	return out
}
