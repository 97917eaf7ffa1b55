package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortPolicyIsValid(t *testing.T) {
	tests := []struct {
		policy SortPolicy
		want   bool
	}{
		{PolicyCheap, true},
		{PolicyExpensive, true},
		{PolicyFast, true},
		{PolicySlow, true},
		{PolicyOptimal, true},
		{SortPolicy(""), false},
		{SortPolicy("cheapest"), false},
		{SortPolicy("CHEAP"), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.IsValid())
		})
	}
}

func TestNormalizePolicy(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want SortPolicy
	}{
		{"known policy passes through", "optimal", PolicyOptimal},
		{"unknown degrades to cheap", "bogus", PolicyCheap},
		{"empty degrades to cheap", "", PolicyCheap},
		{"case sensitive", "Fast", PolicyCheap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePolicy(tt.raw))
		})
	}
}
