// Package usecase provides the business logic for the itinerary analysis
// pipeline: extraction, enrichment, ranking, and dataset diffing.
package usecase

import (
	"fmt"
	"time"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
)

// timestampLayouts lists the accepted ISO-8601 timestamp shapes. The airfare
// documents use the compact form without separators or seconds
// ("2018-10-27T0005"); API callers typically send RFC 3339.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02T1504Z07:00",
	"2006-01-02T1504",
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidTimestamp, value)
}

// TravelTime computes the elapsed duration between two timestamps as a
// human-readable label and a total second count used for sorting.
//
// Timestamps are parsed with their zone offsets preserved but are not
// validated for sanity: an arrival before the departure yields a negative
// second count, propagated as-is. The label splits the delta with floored
// division, so a negative delta carries a negative day count and a
// non-negative remainder of hours and minutes.
func TravelTime(departure, arrival string) (domain.TravelTime, error) {
	dep, err := parseTimestamp(departure)
	if err != nil {
		return domain.TravelTime{}, err
	}
	arr, err := parseTimestamp(arrival)
	if err != nil {
		return domain.TravelTime{}, err
	}

	total := int(arr.Sub(dep) / time.Second)
	days := floorDiv(total, secondsPerDay)
	rem := total - days*secondsPerDay // always in [0, secondsPerDay)

	label := fmt.Sprintf("%dч %dм", rem/3600, (rem/60)%60)
	if days != 0 {
		label = fmt.Sprintf("%dд %s", days, label)
	}

	return domain.TravelTime{TimeInfo: label, TotalSeconds: total}, nil
}

const secondsPerDay = 86400

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// TravelInfo computes the travel time and directness of one itinerary leg.
//
// A single segment is a direct flight timed by its own departure and
// arrival. A connecting flight is timed by the departure of the first
// segment paired with the arrival of the second segment specifically, not
// the last. That narrow definition is the established contract of the
// listing output and is kept as-is.
func TravelInfo(segments domain.SegmentSet) (domain.TravelTime, bool, error) {
	if segments.IsDirect() {
		seg := segments.First()
		dep, _ := seg.String(domain.FieldDepartureTimestamp)
		arr, _ := seg.String(domain.FieldArrivalTimestamp)
		tt, err := TravelTime(dep, arr)
		return tt, true, err
	}

	segs := segments.Segments()
	dep, _ := segs[0].String(domain.FieldDepartureTimestamp)
	second := segs[len(segs)-1]
	if len(segs) > 1 {
		second = segs[1]
	}
	arr, _ := second.String(domain.FieldArrivalTimestamp)
	tt, err := TravelTime(dep, arr)
	return tt, false, err
}
