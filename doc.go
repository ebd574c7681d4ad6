// Package paretoalign computes the complete set of Pareto-optimal
// (matches, gaps) trade-offs over all global alignments of two character
// sequences — the full trade-off curve between maximizing matched pairs
// and minimizing inserted gap symbols, with no traceback.
//
// 🚀 What is the #Matches-#Gaps problem?
//
//	A single "optimal" alignment hides a choice: more matched characters
//	usually cost extra gap symbols, while a mismatch costs nothing in
//	either objective. Instead of collapsing both objectives into one
//	scalar, this module keeps every achievable (matches, gaps) vector
//	that no other alignment beats in both objectives at once.
//
// Everything is organized under three subpackages and one command:
//
//	pareto/ — Score Point + Pareto Frontier algebra (dominance, insert, merge)
//	align/  — the rolling-row multi-objective DP engine over tables Q, S, T
//	fasta/  — single-record FASTA loading for the command-line front end
//	cmd/paretoalign — prints the final frontier, one "<matches> <gaps>" per line
//
// Quick example:
//
//	front, err := align.Align([]byte("AT"), []byte("TA"), nil)
//	// front: {(0 0) (1 2)} — gap-free with zero matches, or one match
//	// at the price of two gap symbols; neither dominates the other.
//
// Memory stays O(N · frontier size) regardless of the first sequence's
// length: only two rows of the DP window are ever live.
//
//	go get github.com/katalvlaran/paretoalign
package paretoalign
