// Command paretoalign prints every Pareto-optimal (matches, gaps) score
// vector over all global alignments of two single-record FASTA files.
package main

import (
	"os"

	"github.com/katalvlaran/paretoalign/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr))
}
