package align

import "errors"

// Sentinel errors for alignment runs. Branch on them with errors.Is.
var (
	// ErrBadBound indicates a negative Options.MaxFrontierPoints.
	ErrBadBound = errors.New("align: MaxFrontierPoints must be non-negative")

	// ErrFrontierOverflow indicates that some DP cell needed more points
	// than the configured MaxFrontierPoints bound allows. The run is
	// aborted rather than silently truncating the frontier.
	ErrFrontierOverflow = errors.New("align: cell frontier exceeds MaxFrontierPoints")
)

// DefaultMaxFrontierPoints is the default per-cell frontier bound.
// Zero means unbounded: frontiers grow on demand.
const DefaultMaxFrontierPoints = 0

// Options configures an alignment run.
//
// Fields:
//   - MaxFrontierPoints — upper bound on the point count of any single DP
//     cell frontier. Zero (the default) disables the bound; a positive
//     value turns resource exhaustion into an explicit ErrFrontierOverflow
//     instead of unbounded growth.
//
// A nil *Options passed to Align selects DefaultOptions.
type Options struct {
	MaxFrontierPoints int
}

// DefaultOptions returns the documented default configuration.
func DefaultOptions() Options {
	return Options{MaxFrontierPoints: DefaultMaxFrontierPoints}
}
