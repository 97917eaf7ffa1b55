package usecase

import (
	"sort"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
)

// rankEntry carries the sort fields extracted once per enriched record.
type rankEntry struct {
	key        string
	price      float64
	onwardTime int
	returnTime *int // nil when the itinerary has no return leg
}

// RankItineraries reorders the enriched records under the given policy,
// preserving the original keys. The sort is stable: records with equal sort
// fields keep their original relative order.
//
// An unrecognized policy silently degrades to the cheap ordering; the
// permissive fallback is part of the contract.
func RankItineraries(records *domain.OrderedRecords, policy domain.SortPolicy, includeReturn bool) *domain.OrderedRecords {
	entries := make([]rankEntry, 0, records.Len())
	for _, key := range records.Keys() {
		rec, _ := records.Get(key)
		entries = append(entries, rankEntry{
			key:        key,
			price:      asFloat(rec[domain.KeyTotalAmount]),
			onwardTime: asInt(rec[domain.KeyOnwardTotalTime]),
			returnTime: asIntPtr(rec[domain.KeyReturnTotalTime]),
		})
	}

	less := lessFunc(policy, includeReturn)
	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	return records.Reordered(keys)
}

// lessFunc builds the comparator for one policy. The orderings reproduce the
// established listing behavior exactly:
//
//	cheap (and unknown): price ↑, onward ↑, return ↑
//	expensive:           price ↓, onward ↑, return ↑ with a return leg,
//	                     return ↓ without one
//	fast, optimal:       onward ↑, return ↑, price ↑
//	slow:                onward ↓, return ↓, price ↑
func lessFunc(policy domain.SortPolicy, includeReturn bool) func(a, b rankEntry) bool {
	switch policy {
	case domain.PolicyExpensive:
		return func(a, b rankEntry) bool {
			if a.price != b.price {
				return a.price > b.price
			}
			if a.onwardTime != b.onwardTime {
				return a.onwardTime < b.onwardTime
			}
			c := compareReturn(a.returnTime, b.returnTime)
			if includeReturn {
				return c < 0
			}
			return c > 0
		}
	case domain.PolicyFast, domain.PolicyOptimal:
		return func(a, b rankEntry) bool {
			if a.onwardTime != b.onwardTime {
				return a.onwardTime < b.onwardTime
			}
			if c := compareReturn(a.returnTime, b.returnTime); c != 0 {
				return c < 0
			}
			return a.price < b.price
		}
	case domain.PolicySlow:
		return func(a, b rankEntry) bool {
			if a.onwardTime != b.onwardTime {
				return a.onwardTime > b.onwardTime
			}
			if c := compareReturn(a.returnTime, b.returnTime); c != 0 {
				return c > 0
			}
			return a.price < b.price
		}
	default: // cheap and any unknown policy
		return func(a, b rankEntry) bool {
			if a.price != b.price {
				return a.price < b.price
			}
			if a.onwardTime != b.onwardTime {
				return a.onwardTime < b.onwardTime
			}
			return compareReturn(a.returnTime, b.returnTime) < 0
		}
	}
}

// compareReturn orders nullable return times: absent sorts before present,
// two absent values compare equal.
func compareReturn(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	default:
		return 0
	}
}

func asFloat(v any) float64 {
	f, _ := v.(float64)
	return f
}

func asInt(v any) int {
	i, _ := v.(int)
	return i
}

func asIntPtr(v any) *int {
	if i, ok := v.(int); ok {
		return &i
	}
	return nil
}
