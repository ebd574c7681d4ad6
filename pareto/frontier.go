package pareto

import (
	"sort"
	"strings"
)

// Frontier is a dominance-filtered set of Points: no member dominates
// another, and no two members are equal. Points are kept sorted by
// ascending Matches, which on a non-dominated set also means ascending
// Gaps. The zero value is an empty frontier ready for use.
//
// A Frontier is not safe for concurrent mutation.
type Frontier struct {
	points []Point
}

// NewFrontier returns an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{}
}

// Len returns the number of points currently on the frontier.
func (f *Frontier) Len() int {
	return len(f.points)
}

// At returns the i-th point in ascending-Matches order.
func (f *Frontier) At(i int) Point {
	return f.points[i]
}

// Points returns a copy of the frontier's points in ascending-Matches
// order. Mutating the returned slice does not affect the frontier.
func (f *Frontier) Points() []Point {
	if len(f.points) == 0 {
		return nil
	}

	return append([]Point(nil), f.points...)
}

// Reset empties the frontier while retaining its storage for reuse.
func (f *Frontier) Reset() {
	f.points = f.points[:0]
}

// Clone returns an independent copy of the frontier.
func (f *Frontier) Clone() *Frontier {
	return &Frontier{points: f.Points()}
}

// Equal reports whether two frontiers hold exactly the same point set.
func (f *Frontier) Equal(other *Frontier) bool {
	if len(f.points) != len(other.points) {
		return false
	}
	for i, p := range f.points {
		if p != other.points[i] {
			return false
		}
	}

	return true
}

// Insert adds p unless an existing member dominates or equals it; members
// dominated by p are removed first. It reports whether p was added.
// Postcondition: the dominance invariant and the sort order both hold.
// Complexity: O(Len).
func (f *Frontier) Insert(p Point) bool {
	for _, q := range f.points {
		if q == p || q.Dominates(p) {
			return false
		}
	}

	// Drop every member p dominates, preserving order.
	kept := f.points[:0]
	for _, q := range f.points {
		if !p.Dominates(q) {
			kept = append(kept, q)
		}
	}

	// After filtering, no survivor shares p's match count: an equal-Matches
	// member would have dominated p or been dominated by it. Splice p in at
	// the position that keeps Matches strictly ascending.
	i := sort.Search(len(kept), func(i int) bool { return kept[i].Matches > p.Matches })
	kept = append(kept, Point{})
	copy(kept[i+1:], kept[i:])
	kept[i] = p
	f.points = kept

	return true
}

// Merge feeds every point of src through t (nil t is the identity) and
// inserts the results into f, preserving the dominance invariant. Merging
// an empty source is a no-op, which is how unreachable recurrence states
// vanish without sentinel values. Merging a frontier into itself is safe.
func (f *Frontier) Merge(src *Frontier, t Transform) {
	if src == nil || len(src.points) == 0 {
		return
	}

	pts := src.points
	if src == f {
		pts = src.Points() // snapshot: Insert rewrites f.points in place
	}
	for _, q := range pts {
		if t != nil {
			q = t(q)
		}
		f.Insert(q)
	}
}

// String renders the frontier as space-separated "(matches gaps)" pairs
// in ascending-Matches order, e.g. "{(1 0) (2 2)}".
func (f *Frontier) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range f.points {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte('(')
		sb.WriteString(p.String())
		sb.WriteByte(')')
	}
	sb.WriteByte('}')

	return sb.String()
}
