// Package domain contains the core business entities and rules for the
// itinerary analysis system. These entities are transport-agnostic and form
// the foundation upon which all other components are built.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the analysis pipeline.
// Callers match them with errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrMalformedDocument indicates the source bytes could not be parsed
	// as an XML tree at all. Fatal for the whole call.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrMissingPrice indicates the pricing sub-record of an itinerary has
	// no charge entry with type SingleAdult and ChargeType TotalAmount.
	ErrMissingPrice = errors.New("missing price")

	// ErrInvalidPriceFormat indicates the located charge entry carries a
	// non-numeric amount.
	ErrInvalidPriceFormat = errors.New("invalid price format")

	// ErrNoOriginSegment indicates no flight segment of a ticket departs
	// from the configured allowed origin during keying.
	ErrNoOriginSegment = errors.New("no allowed-origin segment")

	// ErrInvalidTimestamp indicates a departure or arrival timestamp is not
	// a recognized ISO-8601 value.
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrInvalidRequest indicates the caller supplied invalid parameters.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatasetUnavailable indicates a named dataset could not be resolved
	// or opened by the document source.
	ErrDatasetUnavailable = errors.New("dataset unavailable")
)

// DatasetError wraps an error from a document source with the dataset name.
type DatasetError struct {
	// Dataset is the name of the dataset that failed
	Dataset string

	// Err is the underlying error
	Err error
}

// NewDatasetError creates a DatasetError for the given dataset.
func NewDatasetError(dataset string, err error) *DatasetError {
	return &DatasetError{Dataset: dataset, Err: err}
}

// Error implements the error interface.
func (e *DatasetError) Error() string {
	return fmt.Sprintf("dataset %q: %v", e.Dataset, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As matching.
func (e *DatasetError) Unwrap() error {
	return e.Err
}
