package usecase

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
	"github.com/itinerary-insights/itinerary-analysis-service/internal/xmltree"
)

// IndexOutboundTickets builds the keyed dataset the differ consumes. Every
// outbound itinerary in the document contributes one ticket, keyed by
// "{carrierId}-{flightNumber}" of its origin segment: the first flight
// segment whose Source equals the allowed origin. The origin segment's
// nested carrier sub-record is hoisted into the segment's own field set
// before the key is read from it.
//
// A ticket with no allowed-origin segment is dropped with a warning; a key
// left over from a previous ticket is never reused.
func IndexOutboundTickets(root *xmltree.Node, allowedOrigin string, log zerolog.Logger) *domain.TicketIndex {
	idx := domain.NewTicketIndex()

	root.Walk(func(n *xmltree.Node) bool {
		if n.Tag != domain.TagOnwardItinerary {
			return true
		}
		flat, ok := domain.AsRecord(xmltree.Flatten(n))
		if !ok {
			return true
		}
		inner, ok := flat.Child(domain.TagItineraryContainer)
		if !ok {
			return true
		}
		segs, ok := domain.SegmentsFrom(inner[domain.TagFlight])
		if !ok {
			return true
		}

		origin, err := originSegment(segs, allowedOrigin)
		if err != nil {
			log.Warn().Err(err).Msg("Skipping ticket without allowed-origin segment")
			return true
		}

		hoistCarrier(origin)
		carrierID, _ := origin.String(domain.FieldCarrierID)
		flightNumber, _ := origin.String(domain.FieldFlightNumber)
		idx.Append(carrierID+"-"+flightNumber, segs)
		return true
	})

	return idx
}

// originSegment returns the first segment departing from the allowed origin.
func originSegment(segs domain.SegmentSet, allowedOrigin string) (domain.Record, error) {
	for _, seg := range segs.Segments() {
		if src, _ := seg.String(domain.FieldSource); src == allowedOrigin {
			return seg, nil
		}
	}
	return nil, fmt.Errorf("%w: origin %s", domain.ErrNoOriginSegment, allowedOrigin)
}

// hoistCarrier merges the nested carrier sub-record into the segment's own
// field set and removes the nested key.
func hoistCarrier(seg domain.Record) {
	carrier, ok := seg.Child(domain.FieldCarrier)
	if !ok {
		return
	}
	for k, v := range carrier {
		seg[k] = v
	}
	delete(seg, domain.FieldCarrier)
}
