package xmltree

import (
	"encoding/xml"
	"fmt"
	"io"
	"maps"
	"sort"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
)

// wrapperElements is the number of leading top-level elements a forward scan
// skips before collecting: the document root and its result envelope.
const wrapperElements = 2

// OwningTagKey is the key under which an attribute bag records the element
// that carried it.
const OwningTagKey = "tag"

// TagAttributeSummary holds the distinct tag names and distinct attribute
// bags seen in one document.
type TagAttributeSummary struct {
	// Tags is the set of tag names seen past the wrapper elements
	Tags map[string]struct{}

	// Attributes holds each distinct attribute bag in first-seen order,
	// with the owning tag name under OwningTagKey
	Attributes []map[string]string
}

// CollectTagsAndAttributes makes a single forward pass over the document
// stream, never materializing the tree. The first two top-level wrapper
// elements are skipped; every subsequent element contributes its tag name,
// and its attribute bag when it carries one. Attribute bags deduplicate by
// exact equality with a linear scan, preserving insertion order.
func CollectTagsAndAttributes(r io.Reader) (*TagAttributeSummary, error) {
	dec := xml.NewDecoder(r)
	sum := &TagAttributeSummary{Tags: make(map[string]struct{})}

	skipped := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedDocument, err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if skipped < wrapperElements {
			skipped++
			continue
		}

		sum.Tags[start.Name.Local] = struct{}{}

		if len(start.Attr) == 0 {
			continue
		}
		bag := make(map[string]string, len(start.Attr)+1)
		for _, a := range start.Attr {
			bag[a.Name.Local] = a.Value
		}
		bag[OwningTagKey] = start.Name.Local
		if !containsBag(sum.Attributes, bag) {
			sum.Attributes = append(sum.Attributes, bag)
		}
	}

	return sum, nil
}

// SortedTags returns the tag set as a sorted slice.
func (s *TagAttributeSummary) SortedTags() []string {
	tags := make([]string, 0, len(s.Tags))
	for t := range s.Tags {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// ContainsBag reports whether an identical attribute bag was collected.
func (s *TagAttributeSummary) ContainsBag(bag map[string]string) bool {
	return containsBag(s.Attributes, bag)
}

func containsBag(bags []map[string]string, bag map[string]string) bool {
	for _, b := range bags {
		if maps.Equal(b, bag) {
			return true
		}
	}
	return false
}
