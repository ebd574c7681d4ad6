// Package pareto provides the Score Point and Pareto Frontier primitives
// used by multi-objective alignment scoring.
//
// 🚀 What is a Pareto Frontier here?
//
//	Each alignment outcome is scored by two objectives at once:
//	  • Matches — aligned identical character pairs (maximize)
//	  • Gaps    — inserted gap symbols              (minimize)
//	A Point holds one such (Matches, Gaps) vector. A Frontier holds every
//	vector that is not dominated by another: no member can be improved in
//	one objective without losing in the other.
//
// Dominance:
//
//	p dominates q  ⇔  p.Matches ≥ q.Matches AND p.Gaps ≤ q.Gaps,
//	                  with strict inequality in at least one objective.
//	Equal points are deduplicated (a point never dominates itself).
//
// Representation:
//
//	A Frontier stores its points sorted by ascending Matches. On a set of
//	mutually non-dominated points this ordering is equivalent to ascending
//	Gaps, so insertion reduces to one linear scan that drops every member
//	the candidate dominates and rejects the candidate if any member
//	dominates it. Storage grows on demand; there is no fixed capacity.
//
// Operations:
//   - Insert — add one point, preserving the dominance invariant.
//   - Merge  — feed every point of a source frontier through an optional
//     Transform (GapExtend, MatchExtend, or identity) and insert the
//     results. All three alignment recurrences are expressed with Merge.
//
// An unreachable state is modeled as an empty Frontier: merging from it
// contributes nothing. No sentinel values ever enter a frontier.
//
// Complexity: Insert is O(k) for a frontier of k points; Merge of a source
// with s points is O(s·k).
package pareto
