package usecase

import (
	"fmt"
	"strconv"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
)

// EnrichItinerary attaches the derived fields to one extracted itinerary
// record: onward travel time and directness, the same trio for the return
// leg when requested and present (nil otherwise), and the total price.
//
// The input record is not mutated; a new, fully-populated record is
// returned so no partially-enriched state is ever observable.
func EnrichItinerary(rec domain.Record, includeReturn bool) (domain.Record, error) {
	out := rec.Clone()

	onwardSegs, err := legSegments(rec, domain.TagOnwardItinerary)
	if err != nil {
		return nil, err
	}
	onward, direct, err := TravelInfo(onwardSegs)
	if err != nil {
		return nil, err
	}
	out[domain.KeyOnwardTotalTime] = onward.TotalSeconds
	out[domain.KeyOnwardTimeInfo] = onward.TimeInfo
	out[domain.KeyOnwardIsDirect] = direct

	out[domain.KeyReturnTotalTime] = nil
	out[domain.KeyReturnTimeInfo] = nil
	out[domain.KeyReturnIsDirect] = nil
	if includeReturn {
		if _, ok := rec.Child(domain.TagReturnItinerary); ok {
			returnSegs, err := legSegments(rec, domain.TagReturnItinerary)
			if err != nil {
				return nil, err
			}
			ret, retDirect, err := TravelInfo(returnSegs)
			if err != nil {
				return nil, err
			}
			out[domain.KeyReturnTotalTime] = ret.TotalSeconds
			out[domain.KeyReturnTimeInfo] = ret.TimeInfo
			out[domain.KeyReturnIsDirect] = retDirect
		}
	}

	amount, err := totalAmount(rec)
	if err != nil {
		return nil, err
	}
	out[domain.KeyTotalAmount] = amount

	return out, nil
}

// legSegments digs the flight segment set out of one itinerary leg:
// leg → inner container → Flight, where Flight is a single mapping for a
// direct flight or a sequence for a connecting one.
func legSegments(rec domain.Record, legTag string) (domain.SegmentSet, error) {
	leg, ok := rec.Child(legTag)
	if !ok {
		return domain.SegmentSet{}, fmt.Errorf("%w: itinerary has no %s", domain.ErrMalformedDocument, legTag)
	}
	inner, ok := leg.Child(domain.TagItineraryContainer)
	if !ok {
		return domain.SegmentSet{}, fmt.Errorf("%w: %s has no %s", domain.ErrMalformedDocument, legTag, domain.TagItineraryContainer)
	}
	segs, ok := domain.SegmentsFrom(inner[domain.TagFlight])
	if !ok {
		return domain.SegmentSet{}, fmt.Errorf("%w: %s has no %s segments", domain.ErrMalformedDocument, legTag, domain.TagFlight)
	}
	return segs, nil
}

// totalAmount scans the pricing charge list for the first entry priced for a
// single adult with charge type TotalAmount.
func totalAmount(rec domain.Record) (float64, error) {
	pricing, ok := rec.Child(domain.TagPricing)
	if !ok {
		return 0, fmt.Errorf("%w: itinerary has no %s", domain.ErrMissingPrice, domain.TagPricing)
	}

	charges, ok := domain.SegmentsFrom(pricing[domain.TagServiceCharges])
	if !ok {
		return 0, fmt.Errorf("%w: %s has no charge entries", domain.ErrMissingPrice, domain.TagPricing)
	}

	for _, charge := range charges.Segments() {
		chargeType, _ := charge.String(domain.ChargeAttrType)
		chargeKind, _ := charge.String(domain.ChargeAttrKind)
		if chargeType != domain.ChargeTypeAdult || chargeKind != domain.ChargeKindTotal {
			continue
		}
		raw, _ := charge.String(domain.ChargeTextKey)
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", domain.ErrInvalidPriceFormat, raw)
		}
		return amount, nil
	}

	return 0, fmt.Errorf("%w: no %s/%s charge entry", domain.ErrMissingPrice, domain.ChargeTypeAdult, domain.ChargeKindTotal)
}
