package align_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/paretoalign/align"
	"github.com/katalvlaran/paretoalign/pareto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteFrontier enumerates every global alignment of a and b by walking
// all monotone paths through the edit grid, scores each as (matches,
// gaps), and dominance-filters the outcomes. Exponential — ground truth
// for short sequences only.
func bruteFrontier(a, b []byte) *pareto.Frontier {
	f := pareto.NewFrontier()
	var walk func(i, j, matches, gaps int)
	walk = func(i, j, matches, gaps int) {
		if i == len(a) && j == len(b) {
			f.Insert(pareto.Point{Matches: matches, Gaps: gaps})

			return
		}
		if i < len(a) && j < len(b) {
			m := 0
			if a[i] == b[j] {
				m = 1
			}
			walk(i+1, j+1, matches+m, gaps)
		}
		if i < len(a) {
			walk(i+1, j, matches, gaps+1) // gap in b, consumes a[i]
		}
		if j < len(b) {
			walk(i, j+1, matches, gaps+1) // gap in a, consumes b[j]
		}
	}
	walk(0, 0, 0, 0)

	return f
}

// TestAlign_Scenarios pins the handful of alignments whose frontiers are
// known by inspection, including both degenerate empty-sequence cases.
func TestAlign_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want []pareto.Point
	}{
		{"identical single", "A", "A", []pareto.Point{{Matches: 1, Gaps: 0}}},
		{"free mismatch", "A", "C", []pareto.Point{{Matches: 0, Gaps: 0}}},
		{"match plus mismatch", "AC", "AG", []pareto.Point{{Matches: 1, Gaps: 0}}},
		{"identical run", "AAAA", "AAAA", []pareto.Point{{Matches: 4, Gaps: 0}}},
		{"empty second sequence", "ACG", "", []pareto.Point{{Matches: 0, Gaps: 3}}},
		{"empty first sequence", "", "AC", []pareto.Point{{Matches: 0, Gaps: 2}}},
		{"both empty", "", "", []pareto.Point{{Matches: 0, Gaps: 0}}},
		{"single deletion", "ACGT", "AGT", []pareto.Point{{Matches: 3, Gaps: 1}}},
		{"trade-off curve", "AT", "TA", []pareto.Point{{Matches: 0, Gaps: 0}, {Matches: 1, Gaps: 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			front, err := align.Align([]byte(tc.a), []byte(tc.b), nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, front.Points())
		})
	}
}

// TestAlign_MatchesBruteForce_Exhaustive compares the engine against
// exhaustive enumeration for every pair of sequences over a two-letter
// alphabet up to length 4 — including all empty and all-gap shapes.
func TestAlign_MatchesBruteForce_Exhaustive(t *testing.T) {
	var seqs [][]byte
	var build func(prefix []byte)
	build = func(prefix []byte) {
		seqs = append(seqs, append([]byte(nil), prefix...))
		if len(prefix) == 4 {
			return
		}
		for _, c := range []byte("AC") {
			build(append(prefix, c))
		}
	}
	build(nil)

	for _, a := range seqs {
		for _, b := range seqs {
			front, err := align.Align(a, b, nil)
			require.NoError(t, err)
			want := bruteFrontier(a, b)
			assert.True(t, want.Equal(front),
				"a=%q b=%q: engine %v, brute force %v", a, b, front, want)
		}
	}
}

// TestAlign_MatchesBruteForce_Random cross-checks random ACGT pairs with
// lengths up to 6 against the brute-force ground truth.
func TestAlign_MatchesBruteForce_Random(t *testing.T) {
	const alphabet = "ACGT"
	rng := rand.New(rand.NewSource(7))
	randSeq := func() []byte {
		s := make([]byte, rng.Intn(7))
		for i := range s {
			s[i] = alphabet[rng.Intn(len(alphabet))]
		}

		return s
	}

	for k := 0; k < 200; k++ {
		a, b := randSeq(), randSeq()
		front, err := align.Align(a, b, nil)
		require.NoError(t, err)
		want := bruteFrontier(a, b)
		assert.True(t, want.Equal(front),
			"a=%q b=%q: engine %v, brute force %v", a, b, front, want)
	}
}

// TestAlign_ScoreBounds asserts the reachable-state bounds on the final
// frontier: 0 ≤ matches ≤ min(M,N) and 0 ≤ gaps ≤ M+N.
func TestAlign_ScoreBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for k := 0; k < 100; k++ {
		a := make([]byte, rng.Intn(12))
		b := make([]byte, rng.Intn(12))
		for i := range a {
			a[i] = "ACGT"[rng.Intn(4)]
		}
		for i := range b {
			b[i] = "ACGT"[rng.Intn(4)]
		}

		front, err := align.Align(a, b, nil)
		require.NoError(t, err)
		require.Positive(t, front.Len(), "a global alignment always exists")
		for _, p := range front.Points() {
			assert.GreaterOrEqual(t, p.Matches, 0)
			assert.LessOrEqual(t, p.Matches, min(len(a), len(b)))
			assert.GreaterOrEqual(t, p.Gaps, 0)
			assert.LessOrEqual(t, p.Gaps, len(a)+len(b))
		}
	}
}

// TestAlign_Symmetric: swapping the operands must not change the
// frontier — both objectives are symmetric under exchange.
func TestAlign_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for k := 0; k < 100; k++ {
		a := make([]byte, rng.Intn(8))
		b := make([]byte, rng.Intn(8))
		for i := range a {
			a[i] = "ACGT"[rng.Intn(4)]
		}
		for i := range b {
			b[i] = "ACGT"[rng.Intn(4)]
		}

		ab, err := align.Align(a, b, nil)
		require.NoError(t, err)
		ba, err := align.Align(b, a, nil)
		require.NoError(t, err)
		assert.True(t, ab.Equal(ba), "a=%q b=%q: %v vs %v", a, b, ab, ba)
	}
}

// TestAlign_FrontierOverflow: a positive bound smaller than a cell's
// frontier must abort with ErrFrontierOverflow instead of truncating.
func TestAlign_FrontierOverflow(t *testing.T) {
	opts := align.DefaultOptions()
	opts.MaxFrontierPoints = 1

	// "AT" vs "TA" ends with the two-point frontier {(0 0) (1 2)}.
	_, err := align.Align([]byte("AT"), []byte("TA"), &opts)
	assert.ErrorIs(t, err, align.ErrFrontierOverflow)

	// A generous bound passes.
	opts.MaxFrontierPoints = 16
	front, err := align.Align([]byte("AT"), []byte("TA"), &opts)
	require.NoError(t, err)
	assert.Equal(t, 2, front.Len())
}

// TestAlign_BadBound: a negative bound is a configuration error.
func TestAlign_BadBound(t *testing.T) {
	opts := align.Options{MaxFrontierPoints: -1}
	_, err := align.Align([]byte("A"), []byte("A"), &opts)
	assert.ErrorIs(t, err, align.ErrBadBound)
}

// TestAlign_NilOptionsDefaults: nil opts must behave as DefaultOptions.
func TestAlign_NilOptionsDefaults(t *testing.T) {
	def := align.DefaultOptions()

	fromNil, err := align.Align([]byte("GATTACA"), []byte("GCATGCU"), nil)
	require.NoError(t, err)
	fromDef, err := align.Align([]byte("GATTACA"), []byte("GCATGCU"), &def)
	require.NoError(t, err)
	assert.True(t, fromNil.Equal(fromDef))
}

func min(x, y int) int {
	if x < y {
		return x
	}

	return y
}
