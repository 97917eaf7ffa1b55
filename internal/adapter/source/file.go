// Package source provides document acquisition adapters: the pipeline core
// only consumes parsed trees and raw streams, it never touches the
// filesystem itself.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/xmltree"
)

// FileSource resolves dataset names to XML files inside a fixed directory.
type FileSource struct {
	dir string
}

// NewFileSource creates a FileSource over the given directory.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Open returns the raw document stream for the dataset.
// Dataset names must be bare file names; path separators are rejected.
func (s *FileSource) Open(_ context.Context, dataset string) (io.ReadCloser, error) {
	if dataset == "" || strings.ContainsAny(dataset, `/\`) {
		return nil, fmt.Errorf("%w: invalid dataset name %q", domain.ErrDatasetUnavailable, dataset)
	}
	f, err := os.Open(filepath.Join(s.dir, dataset))
	if err != nil {
		return nil, domain.NewDatasetError(dataset, fmt.Errorf("%w: %v", domain.ErrDatasetUnavailable, err))
	}
	return f, nil
}

// OpenTree reads and parses the dataset into a document tree.
func (s *FileSource) OpenTree(ctx context.Context, dataset string) (*xmltree.Node, error) {
	r, err := s.Open(ctx, dataset)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, domain.NewDatasetError(dataset, err)
	}
	return root, nil
}
