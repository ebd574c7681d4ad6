package align

import "github.com/katalvlaran/paretoalign/pareto"

// grid owns every live frontier of the rolling DP window: two named rows
// for Q and T ("previous" and "current", swapped — never recomputed by
// parity arithmetic) and a single row for S, whose recurrence only ever
// reads the cell immediately left of the current one.
//
// Ownership is exclusive: the engine populates cells in row-major order
// and never touches a cell after its dependents have consumed it. Cell
// storage is retained across rows and reused via Reset.
type grid struct {
	qPrev, qCurr []pareto.Frontier
	tPrev, tCurr []pareto.Frontier
	s            []pareto.Frontier
}

// newGrid allocates all five rows for sequences whose second member has
// length n, and seeds row 0 into the "current" position: Q[0][j] = {(0, j)}
// (j gaps, zero matches — the only alignment of an empty prefix), while
// T row 0 and S column 0 stay empty, representing unreachable states.
func newGrid(n int) *grid {
	g := &grid{
		qPrev: make([]pareto.Frontier, n+1),
		qCurr: make([]pareto.Frontier, n+1),
		tPrev: make([]pareto.Frontier, n+1),
		tCurr: make([]pareto.Frontier, n+1),
		s:     make([]pareto.Frontier, n+1),
	}
	for j := 0; j <= n; j++ {
		g.qCurr[j].Insert(pareto.Point{Matches: 0, Gaps: j})
	}

	return g
}

// advance rolls the window one row forward: the just-completed row becomes
// "previous" and the stale buffers become "current", to be Reset cell by
// cell as the new row is filled.
func (g *grid) advance() {
	g.qPrev, g.qCurr = g.qCurr, g.qPrev
	g.tPrev, g.tCurr = g.tCurr, g.tPrev
}
