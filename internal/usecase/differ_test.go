package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itinerary-insights/itinerary-analysis-service/internal/domain"
)

const allowedOrigin = "DXB"

// directTicket builds a single-segment ticket with the given fields merged
// over a DXB origin.
func directTicket(fields domain.Record) domain.Ticket {
	seg := domain.Record{
		"id":                     "EK",
		domain.FieldFlightNumber: "384",
		domain.FieldSource:       allowedOrigin,
	}
	for k, v := range fields {
		seg[k] = v
	}
	return domain.SingleSegment(seg)
}

func indexOf(t *testing.T, entries map[string][]domain.Ticket, order []string) *domain.TicketIndex {
	t.Helper()
	idx := domain.NewTicketIndex()
	for _, key := range order {
		for _, ticket := range entries[key] {
			idx.Append(key, ticket)
		}
	}
	return idx
}

func TestDiffTicketsIdenticalDatasets(t *testing.T) {
	ticket := directTicket(domain.Record{domain.FieldArrivalTimestamp: "2018-10-27T1225"})
	baseline := indexOf(t, map[string][]domain.Ticket{"EK-384": {ticket}}, []string{"EK-384"})
	candidate := indexOf(t, map[string][]domain.Ticket{"EK-384": {ticket}}, []string{"EK-384"})

	res := DiffTickets(baseline, candidate, allowedOrigin)

	require.Len(t, res.Differences, 1)
	assert.Empty(t, res.Differences[0].Difference[0])
	assert.Empty(t, res.NewTickets)
	assert.Empty(t, res.WrongTickets)
}

func TestDiffTicketsFieldChange(t *testing.T) {
	older := directTicket(domain.Record{domain.FieldArrivalTimestamp: "2018-10-27T1225"})
	newer := directTicket(domain.Record{domain.FieldArrivalTimestamp: "2018-10-27T1240"})

	baseline := indexOf(t, map[string][]domain.Ticket{"EK-384": {older}}, []string{"EK-384"})
	candidate := indexOf(t, map[string][]domain.Ticket{"EK-384": {newer}}, []string{"EK-384"})

	res := DiffTickets(baseline, candidate, allowedOrigin)

	require.Len(t, res.Differences, 1)
	entry := res.Differences[0]
	require.Len(t, entry.Difference, 1)

	// Newer side first, then older; fields sorted within each side.
	require.Len(t, entry.Difference[0], 2)
	assert.Equal(t, domain.FieldDiff{Field: domain.FieldArrivalTimestamp, Value: "2018-10-27T1240"}, entry.Difference[0][0])
	assert.Equal(t, domain.FieldDiff{Field: domain.FieldArrivalTimestamp, Value: "2018-10-27T1225"}, entry.Difference[0][1])
}

func TestDiffTicketsFieldPresentOnOneSide(t *testing.T) {
	older := directTicket(domain.Record{"WarningText": "schedule change"})
	newer := directTicket(nil)

	baseline := indexOf(t, map[string][]domain.Ticket{"EK-384": {older}}, []string{"EK-384"})
	candidate := indexOf(t, map[string][]domain.Ticket{"EK-384": {newer}}, []string{"EK-384"})

	res := DiffTickets(baseline, candidate, allowedOrigin)

	require.Len(t, res.Differences, 1)
	diffs := res.Differences[0].Difference[0]
	require.Len(t, diffs, 1)
	assert.Equal(t, "WarningText", diffs[0].Field)
	assert.Equal(t, "schedule change", diffs[0].Value)
}

func TestDiffTicketsBaselineOnlyKey(t *testing.T) {
	ticket := directTicket(nil)
	baseline := indexOf(t, map[string][]domain.Ticket{"EK-384": {ticket}}, []string{"EK-384"})
	candidate := domain.NewTicketIndex()

	res := DiffTickets(baseline, candidate, allowedOrigin)

	assert.Empty(t, res.Differences)
	require.Len(t, res.NewTickets, 1)
	assert.Empty(t, res.WrongTickets)
}

func TestDiffTicketsCandidateOnlyKeyIgnored(t *testing.T) {
	baseline := domain.NewTicketIndex()
	candidate := indexOf(t, map[string][]domain.Ticket{"EK-384": {directTicket(nil)}}, []string{"EK-384"})

	res := DiffTickets(baseline, candidate, allowedOrigin)

	assert.Empty(t, res.Differences)
	assert.Empty(t, res.NewTickets)
	assert.Empty(t, res.WrongTickets)
}

func TestDiffTicketsWrongOriginBaseline(t *testing.T) {
	wrong := domain.SingleSegment(domain.Record{
		"id":                     "TG",
		domain.FieldFlightNumber: "518",
		domain.FieldSource:       "SIN",
	})
	good := domain.SingleSegment(domain.Record{
		"id":                     "TG",
		domain.FieldFlightNumber: "518",
		domain.FieldSource:       allowedOrigin,
	})

	t.Run("paired wrong baseline with valid candidate", func(t *testing.T) {
		baseline := indexOf(t, map[string][]domain.Ticket{"TG-518": {wrong}}, []string{"TG-518"})
		candidate := indexOf(t, map[string][]domain.Ticket{"TG-518": {good}}, []string{"TG-518"})

		res := DiffTickets(baseline, candidate, allowedOrigin)

		assert.Empty(t, res.Differences)
		require.Len(t, res.WrongTickets, 1)
		require.Len(t, res.NewTickets, 1)
	})

	t.Run("paired wrong baseline with wrong candidate", func(t *testing.T) {
		baseline := indexOf(t, map[string][]domain.Ticket{"TG-518": {wrong}}, []string{"TG-518"})
		candidate := indexOf(t, map[string][]domain.Ticket{"TG-518": {wrong}}, []string{"TG-518"})

		res := DiffTickets(baseline, candidate, allowedOrigin)

		assert.Empty(t, res.Differences)
		assert.Len(t, res.WrongTickets, 2)
		assert.Empty(t, res.NewTickets)
	})

	t.Run("unpaired wrong baseline leftover", func(t *testing.T) {
		baseline := indexOf(t, map[string][]domain.Ticket{"TG-518": {good, wrong}}, []string{"TG-518"})
		candidate := indexOf(t, map[string][]domain.Ticket{"TG-518": {good}}, []string{"TG-518"})

		res := DiffTickets(baseline, candidate, allowedOrigin)

		require.Len(t, res.Differences, 1)
		require.Len(t, res.WrongTickets, 1)
		assert.Empty(t, res.NewTickets)
	})
}

func TestDiffTicketsConnectingFlights(t *testing.T) {
	older := domain.MultiSegment([]domain.Record{
		{domain.FieldSource: allowedOrigin, domain.FieldFlightNumber: "996", domain.FieldArrivalTimestamp: "2018-10-27T0445"},
		{domain.FieldSource: "DEL", domain.FieldFlightNumber: "332", domain.FieldArrivalTimestamp: "2018-10-27T1920"},
	})
	newer := domain.MultiSegment([]domain.Record{
		{domain.FieldSource: allowedOrigin, domain.FieldFlightNumber: "996", domain.FieldArrivalTimestamp: "2018-10-27T0445"},
		{domain.FieldSource: "DEL", domain.FieldFlightNumber: "332", domain.FieldArrivalTimestamp: "2018-10-27T2015"},
	})

	baseline := indexOf(t, map[string][]domain.Ticket{"AI-996": {older}}, []string{"AI-996"})
	candidate := indexOf(t, map[string][]domain.Ticket{"AI-996": {newer}}, []string{"AI-996"})

	res := DiffTickets(baseline, candidate, allowedOrigin)

	require.Len(t, res.Differences, 1)
	entry := res.Differences[0]

	// One diff list per segment index.
	require.Len(t, entry.Difference, 2)
	assert.Empty(t, entry.Difference[0])
	require.Len(t, entry.Difference[1], 2)
	assert.Equal(t, "2018-10-27T2015", entry.Difference[1][0].Value)
	assert.Equal(t, "2018-10-27T1920", entry.Difference[1][1].Value)
}

func TestDiffTicketsLeftoverCandidateGoesToNew(t *testing.T) {
	a := directTicket(domain.Record{"Class": "U"})
	b := directTicket(domain.Record{"Class": "Y"})
	c := directTicket(domain.Record{"Class": "W"})

	baseline := indexOf(t, map[string][]domain.Ticket{"EK-384": {a}}, []string{"EK-384"})
	candidate := indexOf(t, map[string][]domain.Ticket{"EK-384": {b, c}}, []string{"EK-384"})

	res := DiffTickets(baseline, candidate, allowedOrigin)

	require.Len(t, res.Differences, 1)
	require.Len(t, res.NewTickets, 1)
	class, _ := res.NewTickets[0].First().String("Class")
	assert.Equal(t, "W", class)
}

func TestDiffTicketsPositionalPairing(t *testing.T) {
	// Pairing is front to front in arrival order, not content-matched:
	// swapping the candidate order changes which tickets are compared.
	a := directTicket(domain.Record{"Class": "U"})
	b := directTicket(domain.Record{"Class": "Y"})

	baseline := indexOf(t, map[string][]domain.Ticket{"EK-384": {a, b}}, []string{"EK-384"})
	candidate := indexOf(t, map[string][]domain.Ticket{"EK-384": {b, a}}, []string{"EK-384"})

	res := DiffTickets(baseline, candidate, allowedOrigin)

	require.Len(t, res.Differences, 2)
	for _, entry := range res.Differences {
		assert.Len(t, entry.Difference[0], 2, "swapped classes must both report a diff")
	}
}
