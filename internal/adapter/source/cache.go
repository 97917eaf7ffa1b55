package source

import (
	"context"
	"io"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/usecase"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/xmltree"
)

// CachingSource wraps a DocumentSource with an LRU cache of parsed document
// trees keyed by dataset name. The datasets are static files read on every
// request; caching the tree avoids re-reading and re-parsing them.
//
// Cached trees are shared between calls. The tree is read-only once built
// and the pipeline never mutates nodes, so sharing is safe.
type CachingSource struct {
	inner usecase.DocumentSource
	trees *lru.Cache[string, *xmltree.Node]
	log   zerolog.Logger
}

// NewCachingSource creates a caching wrapper holding up to size parsed trees.
func NewCachingSource(inner usecase.DocumentSource, size int, log zerolog.Logger) (*CachingSource, error) {
	trees, err := lru.New[string, *xmltree.Node](size)
	if err != nil {
		return nil, err
	}
	return &CachingSource{inner: inner, trees: trees, log: log}, nil
}

// Open delegates to the wrapped source. Raw streams bypass the cache: the
// streaming consumers must observe the document token by token.
func (s *CachingSource) Open(ctx context.Context, dataset string) (io.ReadCloser, error) {
	return s.inner.Open(ctx, dataset)
}

// OpenTree returns the cached tree for the dataset, parsing on first use.
func (s *CachingSource) OpenTree(ctx context.Context, dataset string) (*xmltree.Node, error) {
	if root, ok := s.trees.Get(dataset); ok {
		s.log.Debug().Str("dataset", dataset).Msg("Document tree cache hit")
		return root, nil
	}

	root, err := s.inner.OpenTree(ctx, dataset)
	if err != nil {
		return nil, err
	}
	s.trees.Add(dataset, root)
	return root, nil
}

// Ensure the source interfaces are implemented.
var (
	_ usecase.DocumentSource = (*FileSource)(nil)
	_ usecase.DocumentSource = (*CachingSource)(nil)
)
