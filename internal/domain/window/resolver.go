// Package window decides which sub-range of the source ends up in the clip.
package window

import "clipshort/internal/types"

// Resolver picks the selection window for one run. Implementations must be
// deterministic for fixed inputs and free of side effects, so a scoring
// policy can replace the fixed one without changing downstream contracts.
type Resolver interface {
	Resolve(sourceDurationSec, targetDurationSec float64) types.SelectionWindow
}

// FixedStart always selects the opening of the source. It is the current
// stand-in for real highlight detection.
type FixedStart struct{}

func (FixedStart) Resolve(sourceDurationSec, targetDurationSec float64) types.SelectionWindow {
	d := targetDurationSec
	if sourceDurationSec > 0 && sourceDurationSec < d {
		d = sourceDurationSec
	}
	return types.SelectionWindow{Start: 0, Duration: d}
}

var _ Resolver = FixedStart{}
