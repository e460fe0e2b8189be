package extract

import "golang.org/x/exp/slices"

// Sample selects evenly spaced pairs. When size is positive and smaller than
// len(pairs) it takes every (len/size)-th pair starting at index 0 and
// truncates the selection to size; otherwise it returns all pairs. The
// result is always a new slice.
func Sample(pairs []Pair, size int) []Pair {
	if size <= 0 || len(pairs) <= size {
		return slices.Clone(pairs)
	}

	step := len(pairs) / size
	sampled := make([]Pair, 0, size)
	for i := 0; i < len(pairs) && len(sampled) < size; i += step {
		sampled = append(sampled, pairs[i])
	}
	return sampled
}
