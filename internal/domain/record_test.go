package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAccessors(t *testing.T) {
	rec := Record{
		"scalar": "value",
		"nested": map[string]any{"inner": "x"},
		"record": Record{"inner": "y"},
		"list":   []any{"a", "b"},
		"absent": nil,
	}

	t.Run("String", func(t *testing.T) {
		s, ok := rec.String("scalar")
		assert.True(t, ok)
		assert.Equal(t, "value", s)

		_, ok = rec.String("nested")
		assert.False(t, ok)

		_, ok = rec.String("missing")
		assert.False(t, ok)
	})

	t.Run("Child accepts both map forms", func(t *testing.T) {
		child, ok := rec.Child("nested")
		require.True(t, ok)
		assert.Equal(t, "x", child["inner"])

		child, ok = rec.Child("record")
		require.True(t, ok)
		assert.Equal(t, "y", child["inner"])

		_, ok = rec.Child("scalar")
		assert.False(t, ok)
	})

	t.Run("List", func(t *testing.T) {
		l, ok := rec.List("list")
		require.True(t, ok)
		assert.Len(t, l, 2)

		_, ok = rec.List("scalar")
		assert.False(t, ok)
	})
}

func TestRecordClone(t *testing.T) {
	orig := Record{"a": "1", "b": "2"}
	clone := orig.Clone()

	clone["a"] = "changed"
	clone["c"] = "new"

	assert.Equal(t, "1", orig["a"])
	assert.NotContains(t, orig, "c")
}

func TestSegmentsFrom(t *testing.T) {
	tests := []struct {
		name       string
		input      any
		wantOK     bool
		wantDirect bool
		wantLen    int
	}{
		{
			name:       "single mapping is a direct flight",
			input:      map[string]any{"FlightNumber": "384"},
			wantOK:     true,
			wantDirect: true,
			wantLen:    1,
		},
		{
			name: "sequence of mappings is a connecting flight",
			input: []any{
				map[string]any{"FlightNumber": "996"},
				map[string]any{"FlightNumber": "332"},
			},
			wantOK:     true,
			wantDirect: false,
			wantLen:    2,
		},
		{
			name:   "scalar is rejected",
			input:  "not a segment",
			wantOK: false,
		},
		{
			name:   "nil is rejected",
			input:  nil,
			wantOK: false,
		},
		{
			name:   "empty sequence is rejected",
			input:  []any{},
			wantOK: false,
		},
		{
			name:   "sequence with non-mapping element is rejected",
			input:  []any{map[string]any{"a": "1"}, "scalar"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, ok := SegmentsFrom(tt.input)
			require.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantDirect, set.IsDirect())
			assert.Equal(t, tt.wantLen, set.Len())
		})
	}
}

func TestSegmentSetMarshalJSON(t *testing.T) {
	t.Run("single segment serializes as an object", func(t *testing.T) {
		set := SingleSegment(Record{"FlightNumber": "384"})
		data, err := json.Marshal(set)
		require.NoError(t, err)
		assert.JSONEq(t, `{"FlightNumber":"384"}`, string(data))
	})

	t.Run("multi segment serializes as an array", func(t *testing.T) {
		set := MultiSegment([]Record{
			{"FlightNumber": "996"},
			{"FlightNumber": "332"},
		})
		data, err := json.Marshal(set)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"FlightNumber":"996"},{"FlightNumber":"332"}]`, string(data))
	})
}

func TestSegmentSetUnmarshalJSON(t *testing.T) {
	var direct SegmentSet
	err := json.Unmarshal([]byte(`{"FlightNumber":"384"}`), &direct)
	require.NoError(t, err)
	assert.True(t, direct.IsDirect())
	require.Equal(t, 1, direct.Len())

	var connecting SegmentSet
	err = json.Unmarshal([]byte(`[{"FlightNumber":"996"},{"FlightNumber":"332"}]`), &connecting)
	require.NoError(t, err)
	assert.False(t, connecting.IsDirect())
	assert.Equal(t, 2, connecting.Len())
}
