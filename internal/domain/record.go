package domain

import (
	"bytes"
	"encoding/json"
)

// Record is a flattened document record: a mapping from child tag or
// attribute name to a nested value. Values are one of nil (absence),
// string (scalar), Record, or []any when a tag name recurred among siblings.
type Record map[string]any

// Clone returns a shallow copy of the record. Nested values are shared;
// the pipeline never mutates nested values after flattening.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// String returns the value under key when it is a plain string scalar.
func (r Record) String(key string) (string, bool) {
	s, ok := r[key].(string)
	return s, ok
}

// Child returns the value under key when it is a nested record.
// Flattened maps arrive as map[string]any; both forms are accepted.
func (r Record) Child(key string) (Record, bool) {
	switch v := r[key].(type) {
	case Record:
		return v, true
	case map[string]any:
		return Record(v), true
	default:
		return nil, false
	}
}

// List returns the value under key when it is an ordered sequence.
func (r Record) List(key string) ([]any, bool) {
	l, ok := r[key].([]any)
	return l, ok
}

// AsRecord converts a flattened value to a Record when possible.
func AsRecord(v any) (Record, bool) {
	switch t := v.(type) {
	case Record:
		return t, true
	case map[string]any:
		return Record(t), true
	default:
		return nil, false
	}
}

// SegmentSet is a tagged variant over the two shapes a flight field can
// take in a flattened itinerary: a single segment record, or an ordered
// sequence of segment records for connecting flights.
type SegmentSet struct {
	segments []Record
	multi    bool
}

// SingleSegment builds a SegmentSet holding exactly one segment.
func SingleSegment(seg Record) SegmentSet {
	return SegmentSet{segments: []Record{seg}}
}

// MultiSegment builds a SegmentSet holding an ordered sequence of segments.
func MultiSegment(segs []Record) SegmentSet {
	return SegmentSet{segments: segs, multi: true}
}

// SegmentsFrom converts a flattened flight value (single mapping or sequence
// of mappings) into a SegmentSet. Returns false for any other shape.
func SegmentsFrom(v any) (SegmentSet, bool) {
	if rec, ok := AsRecord(v); ok {
		return SingleSegment(rec), true
	}
	if list, ok := v.([]any); ok {
		segs := make([]Record, 0, len(list))
		for _, item := range list {
			rec, ok := AsRecord(item)
			if !ok {
				return SegmentSet{}, false
			}
			segs = append(segs, rec)
		}
		if len(segs) == 0 {
			return SegmentSet{}, false
		}
		return MultiSegment(segs), true
	}
	return SegmentSet{}, false
}

// IsDirect reports whether the set represents a direct flight.
func (s SegmentSet) IsDirect() bool {
	return !s.multi
}

// Len returns the number of segments.
func (s SegmentSet) Len() int {
	return len(s.segments)
}

// Segments returns the ordered segment records.
func (s SegmentSet) Segments() []Record {
	return s.segments
}

// First returns the first segment. Valid only for non-empty sets.
func (s SegmentSet) First() Record {
	return s.segments[0]
}

// MarshalJSON preserves the source document shape: a single segment
// serializes as an object, a connecting flight as an array.
func (s SegmentSet) MarshalJSON() ([]byte, error) {
	if !s.multi {
		return json.Marshal(s.segments[0])
	}
	return json.Marshal(s.segments)
}

// UnmarshalJSON is the inverse of MarshalJSON: an object decodes as a single
// segment, an array as a connecting sequence.
func (s *SegmentSet) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var segs []Record
		if err := json.Unmarshal(data, &segs); err != nil {
			return err
		}
		*s = MultiSegment(segs)
		return nil
	}

	var seg Record
	if err := json.Unmarshal(data, &seg); err != nil {
		return err
	}
	*s = SingleSegment(seg)
	return nil
}
