package domain

// Multiset maps a token to its occurrence count within one token sequence.
// It is built once per document per run and never mutated afterwards.
type Multiset map[string]int

// NewMultiset builds a multiset from a token sequence in a single counting pass.
func NewMultiset(tokens []string) Multiset {
	m := make(Multiset, len(tokens))
	for _, t := range tokens {
		m[t]++
	}
	return m
}

// Total returns the sum of all counts. It equals the length of the token
// sequence the multiset was built from.
func (m Multiset) Total() int {
	total := 0
	for _, c := range m {
		total += c
	}
	return total
}

// IntersectionCount returns the sum over shared tokens of the smaller of the
// two counts. Only the smaller map's keys are iterated.
func (m Multiset) IntersectionCount(other Multiset) int {
	small, large := m, other
	if len(large) < len(small) {
		small, large = large, small
	}
	count := 0
	for t, c := range small {
		oc, ok := large[t]
		if !ok {
			continue
		}
		if oc < c {
			count += oc
		} else {
			count += c
		}
	}
	return count
}

// UnionCount returns the sum over all tokens of the larger of the two counts,
// computed as totalA + totalB - intersection.
func (m Multiset) UnionCount(other Multiset) int {
	return m.Total() + other.Total() - m.IntersectionCount(other)
}
