package domain

// Ticket is one keyed itinerary entry: a direct flight or an ordered
// sequence of connecting segments.
type Ticket = SegmentSet

// TicketIndex groups tickets by their "{carrierId}-{flightNumber}" key,
// preserving first-seen key order. Multiple tickets may share a key.
type TicketIndex struct {
	keys  []string
	byKey map[string][]Ticket
}

// NewTicketIndex creates an empty ticket index.
func NewTicketIndex() *TicketIndex {
	return &TicketIndex{byKey: make(map[string][]Ticket)}
}

// Append adds a ticket under the given key, creating the key's sequence on
// first use.
func (ti *TicketIndex) Append(key string, t Ticket) {
	if _, exists := ti.byKey[key]; !exists {
		ti.keys = append(ti.keys, key)
	}
	ti.byKey[key] = append(ti.byKey[key], t)
}

// Keys returns the keys in first-seen order.
func (ti *TicketIndex) Keys() []string {
	return ti.keys
}

// Get returns the ordered ticket sequence stored under key.
func (ti *TicketIndex) Get(key string) []Ticket {
	return ti.byKey[key]
}

// Len returns the number of distinct keys.
func (ti *TicketIndex) Len() int {
	return len(ti.keys)
}

// FieldDiff is one field name/value pair that appears on exactly one side
// of a compared segment pair.
type FieldDiff struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// DiffEntry pairs a baseline ticket with its positional counterpart from the
// candidate dataset, plus their per-segment field differences. Difference
// holds one element per compared segment index; a direct-flight pair yields
// a single element.
type DiffEntry struct {
	Ticket     Ticket        `json:"ticket"`
	NewTicket  Ticket        `json:"new_ticket"`
	Difference [][]FieldDiff `json:"difference"`
}

// DiffResult classifies the tickets of two keyed datasets.
type DiffResult struct {
	// Differences holds positionally paired tickets with their field-level
	// symmetric differences
	Differences []DiffEntry `json:"differences"`

	// NewTickets holds tickets present on only one side after pairing
	NewTickets []Ticket `json:"new_tickets"`

	// WrongTickets holds tickets whose origin is not the allowed origin
	WrongTickets []Ticket `json:"wrong_tickets"`
}

// NewDiffResult creates a DiffResult with empty (non-nil) sequences so the
// JSON shape is stable even when nothing was classified.
func NewDiffResult() *DiffResult {
	return &DiffResult{
		Differences:  []DiffEntry{},
		NewTickets:   []Ticket{},
		WrongTickets: []Ticket{},
	}
}

// TagAttributeDiff is the coarse structural difference between two documents.
type TagAttributeDiff struct {
	// Tags holds tag names present in the first document but not the second
	Tags []string `json:"tags"`

	// Attributes holds the symmetric difference of attribute bags, grouped
	// by the owning tag name
	Attributes map[string][]map[string]string `json:"attributes"`
}
