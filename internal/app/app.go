// Package app wires the FASTA loader and the alignment engine into the
// command-line front end. It exists so the exit behavior is testable
// without executing the binary.
package app

import (
	"fmt"
	"io"

	"github.com/katalvlaran/paretoalign/align"
	"github.com/katalvlaran/paretoalign/fasta"
)

// MaxSequenceLength bounds the accepted input sequence length. Inputs
// beyond it are rejected up front rather than silently truncated.
const MaxSequenceLength = 4000

// Run executes one alignment: args holds the two FASTA file paths.
// The resulting frontier is printed to stdout, one "<matches> <gaps>"
// line per Pareto-optimal score vector. A wrong argument count prints
// usage and returns 0 (a benign exit); any load or engine failure is
// reported on stderr and returns 1.
func Run(prog string, args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintf(stdout, "Usage: %s <seq1_file> <seq2_file>\n", prog)

		return 0
	}

	seq1, err := fasta.ReadFile(args[0], MaxSequenceLength)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}
	seq2, err := fasta.ReadFile(args[1], MaxSequenceLength)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	front, err := align.Align(seq1.Seq, seq2.Seq, nil)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	for _, p := range front.Points() {
		fmt.Fprintf(stdout, "%d %d\n", p.Matches, p.Gaps)
	}

	return 0
}
