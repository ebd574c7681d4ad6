package align

import (
	"fmt"

	"github.com/katalvlaran/paretoalign/pareto"
)

// Align computes the complete Pareto frontier of (matches, gaps) score
// vectors over all global alignments of a and b. No alignment is ever
// reconstructed; only score vectors flow through the computation.
//
// Empty sequences are valid: aligning a non-empty sequence of length k
// against an empty one yields the single vector (0, k), and two empty
// sequences yield (0, 0).
//
// A nil opts selects DefaultOptions. The returned frontier is owned by
// the caller; its points come sorted by ascending Matches.
//
// Example:
//
//	front, err := align.Align([]byte("ACGT"), []byte("AGT"), nil)
//	// front.Points() == [{3 1}]
func Align(a, b []byte, opts *Options) (*pareto.Frontier, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MaxFrontierPoints < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadBound, o.MaxFrontierPoints)
	}

	m, n := len(a), len(b)
	g := newGrid(n)

	checkBound := func(f *pareto.Frontier, table string, i, j int) error {
		if o.MaxFrontierPoints > 0 && f.Len() > o.MaxFrontierPoints {
			return fmt.Errorf("%w: %s cell (%d,%d) holds %d points",
				ErrFrontierOverflow, table, i, j, f.Len())
		}

		return nil
	}

	for i := 1; i <= m; i++ {
		g.advance()

		// Column 0 base case: i characters of a against nothing but gaps.
		g.qCurr[0].Reset()
		g.qCurr[0].Insert(pareto.Point{Matches: 0, Gaps: i})

		for j := 1; j <= n; j++ {
			diag := pareto.MatchExtend(a[i-1] == b[j-1])

			// A gap in a either extends a running gap (S left) or opens
			// after any ending (Q left); both cost one gap unit.
			s := &g.s[j]
			s.Reset()
			s.Merge(&g.s[j-1], pareto.GapExtend)
			s.Merge(&g.qCurr[j-1], pareto.GapExtend)
			if err := checkBound(s, "S", i, j); err != nil {
				return nil, err
			}

			// Symmetric for a gap in b, extending vertically.
			t := &g.tCurr[j]
			t.Reset()
			t.Merge(&g.tPrev[j], pareto.GapExtend)
			t.Merge(&g.qPrev[j], pareto.GapExtend)
			if err := checkBound(t, "T", i, j); err != nil {
				return nil, err
			}

			// Full cell: dominance-filtered union of both gap endings and
			// the diagonal (match or free mismatch) ending.
			q := &g.qCurr[j]
			q.Reset()
			q.Merge(s, nil)
			q.Merge(t, nil)
			q.Merge(&g.qPrev[j-1], diag)

			if err := checkBound(q, "Q", i, j); err != nil {
				return nil, err
			}
		}
	}

	return g.qCurr[n].Clone(), nil
}
