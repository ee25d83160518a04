package pagediff

import "github.com/tsawler/pagediff/report"

// compareOptions holds configuration for a comparison.
type compareOptions struct {
	// Page alignment tuning
	similarityThreshold float64
	lookaheadWindow     int

	// Side-by-side report geometry
	layout report.LayoutConfig
}

// defaultOptions returns the default comparison options.
func defaultOptions() compareOptions {
	return compareOptions{
		similarityThreshold: 0.6,
		lookaheadWindow:     3,
		layout:              report.DefaultLayoutConfig(),
	}
}

// clone creates a copy of compareOptions.
func (o compareOptions) clone() compareOptions {
	return compareOptions{
		similarityThreshold: o.similarityThreshold,
		lookaheadWindow:     o.lookaheadWindow,
		layout:              o.layout,
	}
}
