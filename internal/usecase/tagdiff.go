package usecase

import (
	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/xmltree"
)

// DiffTagSummaries computes the coarse structural difference between two
// collected documents: the tag names present in the first but not the second
// (sorted for determinism), and the symmetric difference of attribute bags
// regrouped by owning tag. The symmetric difference preserves collection
// order: the first document's unmatched bags, then the second's.
func DiffTagSummaries(a, b *xmltree.TagAttributeSummary) *domain.TagAttributeDiff {
	tags := []string{}
	for _, t := range a.SortedTags() {
		if _, ok := b.Tags[t]; !ok {
			tags = append(tags, t)
		}
	}

	var unmatched []map[string]string
	for _, bag := range a.Attributes {
		if !b.ContainsBag(bag) {
			unmatched = append(unmatched, bag)
		}
	}
	for _, bag := range b.Attributes {
		if !a.ContainsBag(bag) {
			unmatched = append(unmatched, bag)
		}
	}

	grouped := make(map[string][]map[string]string)
	for _, bag := range unmatched {
		tag := bag[xmltree.OwningTagKey]
		entry := make(map[string]string, len(bag)-1)
		for k, v := range bag {
			if k != xmltree.OwningTagKey {
				entry[k] = v
			}
		}
		grouped[tag] = append(grouped[tag], entry)
	}

	return &domain.TagAttributeDiff{Tags: tags, Attributes: grouped}
}
