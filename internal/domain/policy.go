package domain

// SortPolicy names an itinerary ordering policy.
type SortPolicy string

// Available ordering policies.
const (
	// PolicyCheap orders by ascending price, then onward time, then return time.
	PolicyCheap SortPolicy = "cheap"

	// PolicyExpensive orders by descending price; ties resolve to the
	// shorter onward flight first.
	PolicyExpensive SortPolicy = "expensive"

	// PolicyFast orders by ascending onward time, then return time, then price.
	PolicyFast SortPolicy = "fast"

	// PolicySlow orders by descending onward time, then descending return
	// time, then ascending price.
	PolicySlow SortPolicy = "slow"

	// PolicyOptimal orders like PolicyFast: quick first, cheap among equals.
	PolicyOptimal SortPolicy = "optimal"
)

// IsValid reports whether the policy is one of the known orderings.
func (p SortPolicy) IsValid() bool {
	switch p {
	case PolicyCheap, PolicyExpensive, PolicyFast, PolicySlow, PolicyOptimal:
		return true
	}
	return false
}

// NormalizePolicy maps a raw policy string to a SortPolicy. Unknown values
// silently degrade to PolicyCheap; an unrecognized policy is never an error.
func NormalizePolicy(raw string) SortPolicy {
	p := SortPolicy(raw)
	if !p.IsValid() {
		return PolicyCheap
	}
	return p
}
