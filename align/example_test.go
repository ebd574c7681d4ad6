package align_test

import (
	"fmt"

	"github.com/katalvlaran/paretoalign/align"
)

// ExampleAlign demonstrates a pair with a genuine trade-off curve:
// "AT" vs "TA" can be aligned gap-free with zero matches, or with one
// match at the price of two gap symbols. Neither outcome dominates the
// other, so both are reported.
func ExampleAlign() {
	front, err := align.Align([]byte("AT"), []byte("TA"), nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range front.Points() {
		fmt.Printf("%d %d\n", p.Matches, p.Gaps)
	}
	// Output:
	// 0 0
	// 1 2
}

// ExampleAlign_singleOptimum shows the common case of a lone optimum:
// deleting one character of "ACGT" aligns the remaining three exactly.
func ExampleAlign_singleOptimum() {
	front, err := align.Align([]byte("ACGT"), []byte("AGT"), nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(front)
	// Output:
	// {(3 1)}
}
