package usecase

import (
	"strconv"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/xmltree"
)

// RequiredTags returns the child tags an itinerary container must carry to
// count as a real itinerary occurrence. The set is policy-driven: the return
// leg is required only when return itineraries are requested.
func RequiredTags(includeReturn bool) map[string]struct{} {
	required := map[string]struct{}{
		domain.TagOnwardItinerary: {},
		domain.TagPricing:         {},
	}
	if includeReturn {
		required[domain.TagReturnItinerary] = struct{}{}
	}
	return required
}

// ExtractItineraries walks the document depth-first and flattens every
// itinerary container whose immediate children intersect the required tag
// set. The documents nest an element of the same container tag inside each
// leg; those structurally-unrelated homonyms carry none of the required
// children and are skipped without being flattened or counted.
//
// Records are keyed by a running identity counter in extraction order.
func ExtractItineraries(root *xmltree.Node, required map[string]struct{}) *domain.OrderedRecords {
	out := domain.NewOrderedRecords()
	count := 0

	root.Walk(func(n *xmltree.Node) bool {
		if n.Tag != domain.TagItineraryContainer {
			return true
		}
		if !hasRequiredChild(n, required) {
			return true
		}
		if rec, ok := domain.AsRecord(xmltree.Flatten(n)); ok {
			out.Set(strconv.Itoa(count), rec)
			count++
		}
		return true
	})

	return out
}

func hasRequiredChild(n *xmltree.Node, required map[string]struct{}) bool {
	for _, c := range n.Children {
		if _, ok := required[c.Tag]; ok {
			return true
		}
	}
	return false
}
