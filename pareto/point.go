package pareto

import "fmt"

// Point is one achievable objective vector: a count of matched character
// pairs and a count of inserted gap symbols. Both counts are non-negative.
type Point struct {
	// Matches is the number of aligned identical character pairs.
	Matches int

	// Gaps is the number of inserted gap symbols.
	Gaps int
}

// Dominates reports whether p dominates q: p is at least as good in both
// objectives (more-or-equal matches, fewer-or-equal gaps) and strictly
// better in at least one. A point does not dominate an equal point.
func (p Point) Dominates(q Point) bool {
	if p.Matches < q.Matches || p.Gaps > q.Gaps {
		return false
	}

	return p.Matches > q.Matches || p.Gaps < q.Gaps
}

// String renders the point as "<matches> <gaps>", the on-wire result format.
func (p Point) String() string {
	return fmt.Sprintf("%d %d", p.Matches, p.Gaps)
}

// Transform maps one objective vector to another. It parameterizes
// Frontier.Merge; a nil Transform is the identity.
type Transform func(Point) Point

// GapExtend is the gap-extension transform: inserting one gap symbol never
// changes the match count and always costs exactly one gap unit.
func GapExtend(p Point) Point {
	return Point{Matches: p.Matches, Gaps: p.Gaps + 1}
}

// MatchExtend returns the diagonal-extension transform for one aligned
// character pair: it increments Matches only when the pair is an exact
// match, and never touches Gaps. A mismatch is a free substitution — this
// asymmetry against GapExtend defines the objective space.
func MatchExtend(match bool) Transform {
	if !match {
		return nil // identity: a mismatch costs nothing in either objective
	}

	return func(p Point) Point {
		return Point{Matches: p.Matches + 1, Gaps: p.Gaps}
	}
}
