package usecase

import (
	"reflect"
	"sort"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
)

// DiffTickets pairwise-compares two keyed datasets and classifies every
// baseline entry.
//
// For each baseline key, entries pair off positionally against the candidate
// entries under the same key, front to front, until one side is exhausted.
// Pairing is order-dependent, not content-matched; the arrival-order
// semantics are preserved deliberately for output compatibility. Leftover
// baseline entries classify by origin, leftover candidate entries go to
// new_tickets wholesale, and a key with no candidate counterpart contributes
// its entire baseline entry to new_tickets. Keys present only in the
// candidate dataset are not visited.
func DiffTickets(baseline, candidate *domain.TicketIndex, allowedOrigin string) *domain.DiffResult {
	res := domain.NewDiffResult()

	for _, key := range baseline.Keys() {
		base := baseline.Get(key)
		cand := candidate.Get(key)

		if len(cand) == 0 {
			res.NewTickets = append(res.NewTickets, base...)
			continue
		}

		for len(base) > 0 && len(cand) > 0 {
			b, c := base[0], cand[0]
			base, cand = base[1:], cand[1:]
			classifyPair(res, b, c, allowedOrigin)
		}

		for _, b := range base {
			if ticketOrigin(b) == allowedOrigin {
				res.NewTickets = append(res.NewTickets, b)
			} else {
				res.WrongTickets = append(res.WrongTickets, b)
			}
		}
		res.NewTickets = append(res.NewTickets, cand...)
	}

	return res
}

// classifyPair routes one positionally paired baseline/candidate ticket pair.
func classifyPair(res *domain.DiffResult, b, c domain.Ticket, allowedOrigin string) {
	// Connecting flights on both sides, both departing from the allowed
	// origin: diff segment against segment by index.
	if !b.IsDirect() && !c.IsDirect() &&
		ticketOrigin(b) == allowedOrigin && ticketOrigin(c) == allowedOrigin {
		n := b.Len()
		if c.Len() < n {
			n = c.Len()
		}
		diffs := make([][]domain.FieldDiff, 0, n)
		for i := 0; i < n; i++ {
			diffs = append(diffs, symmetricFieldDiff(c.Segments()[i], b.Segments()[i]))
		}
		res.Differences = append(res.Differences, domain.DiffEntry{
			Ticket:     b,
			NewTicket:  c,
			Difference: diffs,
		})
		return
	}

	// A baseline ticket that does not start at the allowed origin is wrong
	// by definition; its counterpart is classified on its own merits.
	if ticketOrigin(b) != allowedOrigin {
		res.WrongTickets = append(res.WrongTickets, b)
		if ticketOrigin(c) == allowedOrigin {
			res.NewTickets = append(res.NewTickets, c)
		} else {
			res.WrongTickets = append(res.WrongTickets, c)
		}
		return
	}

	// Direct flights (or a direct/connecting mix): one plain field-level
	// difference of the first segments.
	res.Differences = append(res.Differences, domain.DiffEntry{
		Ticket:     b,
		NewTicket:  c,
		Difference: [][]domain.FieldDiff{symmetricFieldDiff(c.First(), b.First())},
	})
}

// ticketOrigin returns the Source of the ticket's first segment.
func ticketOrigin(t domain.Ticket) string {
	src, _ := t.First().String(domain.FieldSource)
	return src
}

// symmetricFieldDiff collects the field name/value pairs present on exactly
// one side of a compared segment pair: the newer segment's differing pairs
// first, then the older segment's, each side in sorted field order.
func symmetricFieldDiff(newer, older domain.Record) []domain.FieldDiff {
	out := []domain.FieldDiff{}
	for _, k := range sortedKeys(newer) {
		if ov, ok := older[k]; !ok || !reflect.DeepEqual(ov, newer[k]) {
			out = append(out, domain.FieldDiff{Field: k, Value: newer[k]})
		}
	}
	for _, k := range sortedKeys(older) {
		if nv, ok := newer[k]; !ok || !reflect.DeepEqual(nv, older[k]) {
			out = append(out, domain.FieldDiff{Field: k, Value: older[k]})
		}
	}
	return out
}

func sortedKeys(rec domain.Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
