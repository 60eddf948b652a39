// Package psort sorts flat interleaved (x, y) coordinate buffers in place.
//
// The hull and delaunay packages both need their input ordered by x (ties
// broken by y), and both need to recover the original position of each point
// afterwards. A stable sort of a separate permutation won't do: the swaps
// have to happen on the coordinate pairs themselves, with an optional index
// slice carried along through every swap so that index correlation is never
// lost.
package psort

import "sort"

type pairs struct {
	points  []float64
	indices []int
}

func (s pairs) Len() int { return len(s.points) / 2 }

func (s pairs) Less(i, j int) bool {
	xi, xj := s.points[2*i], s.points[2*j]
	if xi != xj {
		return xi < xj
	}
	return s.points[2*i+1] < s.points[2*j+1]
}

func (s pairs) Swap(i, j int) {
	s.points[2*i], s.points[2*j] = s.points[2*j], s.points[2*i]
	s.points[2*i+1], s.points[2*j+1] = s.points[2*j+1], s.points[2*i+1]
	if s.indices != nil {
		s.indices[i], s.indices[j] = s.indices[j], s.indices[i]
	}
}

// Sort the (x, y) pairs in points by x, then y. If indices is non-nil it must
// have one entry per pair, and is kept aligned with the pairs through every
// swap.
func Pairs(points []float64, indices []int) {
	sort.Sort(pairs{points, indices})
}

// Check whether the pairs are already in the order Pairs would produce.
// Callers that declare their input sorted can be verified cheaply with this.
func PairsSorted(points []float64) bool {
	return sort.IsSorted(pairs{points, nil})
}
