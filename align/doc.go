// Package align computes the complete Pareto frontier of (matches, gaps)
// trade-offs over all global alignments of two character sequences,
// without reconstructing any alignment (no traceback).
//
// 🚀 What does it compute?
//
//	Every global alignment of sequences a (length M) and b (length N) has
//	two scores: matched identical pairs (maximize) and inserted gap
//	symbols (minimize). A mismatch costs nothing in either objective.
//	Align returns every score vector that no other alignment beats in
//	both objectives at once — the full trade-off curve, not one optimum.
//
// Algorithm Outline (multi-objective DP, rolling rows):
//  1. Three per-cell frontier tables over prefix pairs (i, j):
//     Q[i][j] — alignments of a[:i] vs b[:j] ending in any operation;
//     S[i][j] — restricted to ending with a gap in a  ('-', b[j]);
//     T[i][j] — restricted to ending with a gap in b  (a[i], '-').
//  2. Base cases: Q[0][0]={(0,0)}, Q[0][j]={(0,j)}, Q[i][0]={(0,i)}.
//     Unreachable states (S column 0, T row 0) are empty frontiers.
//  3. For i = 1..M, j = 1..N, with match = (a[i-1] == b[j-1]):
//     S[i][j] = gap-extend( S[i][j-1] ∪ Q[i][j-1] )
//     T[i][j] = gap-extend( T[i-1][j] ∪ Q[i-1][j] )
//     Q[i][j] = filter( S[i][j] ∪ T[i][j] ∪ diag-extend(Q[i-1][j-1]) )
//     where every union is dominance-filtered (pareto.Frontier.Merge).
//  4. Answer: Q[M][N].
//
// Memory:
//
//	Only two rows of Q and T are ever live (current and previous, swapped
//	at each row start) plus a single row of S, whose recurrence reads only
//	the cell immediately to the left in the current row. Peak memory is
//	O(N · frontier size), independent of M.
//
// Complexity:
//
//	Time   = O(M·N·k²) for cell frontiers of at most k points
//	Memory = O(N·k)
//
// Errors:
//   - ErrBadBound         — Options.MaxFrontierPoints is negative.
//   - ErrFrontierOverflow — a cell frontier outgrew a positive
//     MaxFrontierPoints bound (unbounded growth is the default).
package align
