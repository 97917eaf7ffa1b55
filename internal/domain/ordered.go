package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OrderedRecords is a string-keyed collection of itinerary records that
// preserves insertion order, both for iteration and JSON serialization.
// Go maps do not keep order; the ranked listing contract requires it.
type OrderedRecords struct {
	keys   []string
	values map[string]Record
}

// NewOrderedRecords creates an empty ordered record collection.
func NewOrderedRecords() *OrderedRecords {
	return &OrderedRecords{values: make(map[string]Record)}
}

// Set stores the record under key. A repeated key overwrites the value in
// place and keeps the key's original position.
func (o *OrderedRecords) Set(key string, rec Record) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = rec
}

// Get returns the record stored under key.
func (o *OrderedRecords) Get(key string) (Record, bool) {
	rec, ok := o.values[key]
	return rec, ok
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (o *OrderedRecords) Keys() []string {
	return o.keys
}

// Len returns the number of stored records.
func (o *OrderedRecords) Len() int {
	return len(o.keys)
}

// Reordered returns a new collection holding the same records under the
// given key order. Keys absent from the collection are skipped.
func (o *OrderedRecords) Reordered(keys []string) *OrderedRecords {
	out := NewOrderedRecords()
	for _, k := range keys {
		if rec, ok := o.values[k]; ok {
			out.Set(k, rec)
		}
	}
	return out
}

// UnmarshalJSON rebuilds the collection from a JSON object, preserving the
// member order of the document.
func (o *OrderedRecords) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("ordered records: expected JSON object, got %v", tok)
	}

	o.keys = nil
	o.values = make(map[string]Record)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("ordered records: expected string key, got %v", keyTok)
		}

		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return err
		}
		o.Set(key, rec)
	}

	// Consume the closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MarshalJSON serializes the collection as a JSON object whose member order
// follows insertion order.
func (o *OrderedRecords) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		valJSON, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
