// Package mock provides test doubles for the itinerary analysis system.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific documents).
package mock

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/usecase"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/xmltree"
)

// Source is a configurable mock implementation of usecase.DocumentSource.
// It serves in-memory XML documents keyed by dataset name and supports
// configurable delays and errors for testing failure scenarios.
type Source struct {
	documents map[string]string
	err       error
	delay     time.Duration
	callCount int
	mu        sync.Mutex
}

// NewSource creates a new mock source with no documents.
// The source is configured using the builder pattern methods.
func NewSource() *Source {
	return &Source{
		documents: make(map[string]string),
	}
}

// WithDocument configures the source to serve the given XML for a dataset.
func (s *Source) WithDocument(dataset, xmlDoc string) *Source {
	s.documents[dataset] = xmlDoc
	return s
}

// WithError configures the source to return the given error for every call.
func (s *Source) WithError(err error) *Source {
	s.err = err
	return s
}

// WithDelay configures the source to wait the given duration before responding.
// This is useful for testing context cancellation.
func (s *Source) WithDelay(d time.Duration) *Source {
	s.delay = d
	return s
}

// Open implements usecase.DocumentSource.Open.
func (s *Source) Open(ctx context.Context, dataset string) (io.ReadCloser, error) {
	doc, err := s.document(ctx, dataset)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(strings.NewReader(doc)), nil
}

// OpenTree implements usecase.DocumentSource.OpenTree.
func (s *Source) OpenTree(ctx context.Context, dataset string) (*xmltree.Node, error) {
	doc, err := s.document(ctx, dataset)
	if err != nil {
		return nil, err
	}
	return xmltree.Parse(strings.NewReader(doc))
}

// document applies the configured delay and error, then resolves the dataset.
func (s *Source) document(ctx context.Context, dataset string) (string, error) {
	s.mu.Lock()
	s.callCount++
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.delay):
		}
	}

	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if s.err != nil {
		return "", s.err
	}

	doc, ok := s.documents[dataset]
	if !ok {
		return "", &domain.DatasetError{Dataset: dataset, Err: domain.ErrDatasetUnavailable}
	}
	return doc, nil
}

// CallCount returns the number of times the source was asked for a document.
func (s *Source) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callCount
}

// Reset resets the call count to zero.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callCount = 0
}

// Ensure Source implements usecase.DocumentSource at compile time.
var _ usecase.DocumentSource = (*Source)(nil)
