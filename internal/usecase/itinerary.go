package usecase

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/infrastructure/timeutil"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/xmltree"
)

// DocumentSource supplies airfare documents by dataset name.
// Document acquisition is the caller's collaborator, not part of the core
// pipeline; implementations live in the adapter layer.
type DocumentSource interface {
	// Open returns the raw document stream. Used by the streaming tag
	// collection pass, which must not materialize a tree.
	Open(ctx context.Context, dataset string) (io.ReadCloser, error)

	// OpenTree returns the parsed document tree.
	OpenTree(ctx context.Context, dataset string) (*xmltree.Node, error)
}

// ItineraryUseCase defines the analysis operations exposed to the HTTP layer.
type ItineraryUseCase interface {
	// ListRankedItineraries extracts, enriches, and ranks the itineraries
	// of one dataset under the given ordering policy.
	ListRankedItineraries(ctx context.Context, dataset string, includeReturn bool, policy domain.SortPolicy) (*domain.RankedListing, error)

	// DiffItineraries indexes two datasets by outbound ticket key and
	// classifies the baseline entries against the candidate.
	DiffItineraries(ctx context.Context, baseline, candidate string) (*domain.DiffResult, error)

	// DiffTagsAndAttributes computes the coarse tag/attribute difference
	// between two datasets.
	DiffTagsAndAttributes(ctx context.Context, datasetA, datasetB string) (*domain.TagAttributeDiff, error)

	// ComputeTravelTime computes the elapsed time between two timestamps.
	ComputeTravelTime(departure, arrival string) (domain.TravelTime, error)
}

// itineraryUseCase implements ItineraryUseCase over a DocumentSource.
// Each call builds its own result tree and shares no state with other
// calls, so concurrent invocations need no coordination.
type itineraryUseCase struct {
	source        DocumentSource
	allowedOrigin string
	clock         timeutil.Clock
	log           zerolog.Logger
}

// Config contains configuration options for the use case.
type Config struct {
	// AllowedOrigin is the airport code used for ticket keying and
	// origin-validity checks
	AllowedOrigin string

	// Clock abstracts time for metadata timing; defaults to the real clock
	Clock timeutil.Clock

	// Logger receives pipeline timing and skip events
	Logger zerolog.Logger
}

// NewItineraryUseCase creates an ItineraryUseCase with the given source and
// configuration.
func NewItineraryUseCase(source DocumentSource, cfg Config) ItineraryUseCase {
	clock := cfg.Clock
	if clock == nil {
		clock = timeutil.NewRealClock()
	}
	return &itineraryUseCase{
		source:        source,
		allowedOrigin: cfg.AllowedOrigin,
		clock:         clock,
		log:           cfg.Logger,
	}
}

// ListRankedItineraries implements the ranked-listing pipeline:
// parse → extract → enrich → rank. Any enrichment failure fails the whole
// call; partial listings are never returned.
func (uc *itineraryUseCase) ListRankedItineraries(ctx context.Context, dataset string, includeReturn bool, policy domain.SortPolicy) (*domain.RankedListing, error) {
	start := uc.clock.Now()

	root, err := uc.source.OpenTree(ctx, dataset)
	if err != nil {
		return nil, err
	}

	records := ExtractItineraries(root, RequiredTags(includeReturn))
	uc.log.Debug().
		Str("dataset", dataset).
		Int("itineraries", records.Len()).
		Dur("elapsed", uc.clock.Now().Sub(start)).
		Msg("Parsed itineraries")

	enriched := domain.NewOrderedRecords()
	for _, key := range records.Keys() {
		rec, _ := records.Get(key)
		out, err := EnrichItinerary(rec, includeReturn)
		if err != nil {
			return nil, err
		}
		enriched.Set(key, out)
	}

	normalized := domain.NormalizePolicy(string(policy))
	ranked := RankItineraries(enriched, normalized, includeReturn)

	elapsed := uc.clock.Now().Sub(start)
	uc.log.Info().
		Str("dataset", dataset).
		Str("policy", string(normalized)).
		Int("itineraries", ranked.Len()).
		Dur("elapsed", elapsed).
		Msg("Ranked itineraries")

	return &domain.RankedListing{
		Policy:        normalized,
		IncludeReturn: includeReturn,
		Metadata: domain.ListingMetadata{
			Dataset:      dataset,
			TotalResults: ranked.Len(),
			ElapsedMs:    elapsed.Milliseconds(),
		},
		Itineraries: ranked,
	}, nil
}

// DiffItineraries implements the itinerary-diff pipeline:
// index both datasets, then classify.
func (uc *itineraryUseCase) DiffItineraries(ctx context.Context, baseline, candidate string) (*domain.DiffResult, error) {
	baseRoot, err := uc.source.OpenTree(ctx, baseline)
	if err != nil {
		return nil, err
	}
	candRoot, err := uc.source.OpenTree(ctx, candidate)
	if err != nil {
		return nil, err
	}

	baseIdx := IndexOutboundTickets(baseRoot, uc.allowedOrigin, uc.log)
	candIdx := IndexOutboundTickets(candRoot, uc.allowedOrigin, uc.log)

	result := DiffTickets(baseIdx, candIdx, uc.allowedOrigin)
	uc.log.Info().
		Str("baseline", baseline).
		Str("candidate", candidate).
		Int("differences", len(result.Differences)).
		Int("new_tickets", len(result.NewTickets)).
		Int("wrong_tickets", len(result.WrongTickets)).
		Msg("Compared itinerary datasets")

	return result, nil
}

// DiffTagsAndAttributes implements the coarse structural diff with a single
// forward pass per document.
func (uc *itineraryUseCase) DiffTagsAndAttributes(ctx context.Context, datasetA, datasetB string) (*domain.TagAttributeDiff, error) {
	sumA, err := uc.collect(ctx, datasetA)
	if err != nil {
		return nil, err
	}
	sumB, err := uc.collect(ctx, datasetB)
	if err != nil {
		return nil, err
	}
	return DiffTagSummaries(sumA, sumB), nil
}

// ComputeTravelTime exposes the travel-time calculation directly.
func (uc *itineraryUseCase) ComputeTravelTime(departure, arrival string) (domain.TravelTime, error) {
	return TravelTime(departure, arrival)
}

func (uc *itineraryUseCase) collect(ctx context.Context, dataset string) (*xmltree.TagAttributeSummary, error) {
	r, err := uc.source.Open(ctx, dataset)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return xmltree.CollectTagsAndAttributes(r)
}

// Ensure itineraryUseCase implements ItineraryUseCase at compile time.
var _ ItineraryUseCase = (*itineraryUseCase)(nil)
