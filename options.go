package tawafur

import "github.com/adawood/tawafur/schedule"

// Options holds pipeline configuration.
type Options struct {
	// windowStart and windowEnd bound the free-time working day.
	windowStart schedule.Minutes
	windowEnd   schedule.Minutes

	// minGap is the shortest free-time gap worth reporting.
	minGap schedule.Minutes

	// workers is the matcher's parallelism; below 2 means sequential.
	workers int
}

// defaultOptions returns the standard configuration: the 08:00-16:00
// university day, 15-minute minimum gaps, sequential matching.
func defaultOptions() Options {
	return Options{
		windowStart: schedule.Clock(8, 0),
		windowEnd:   schedule.Clock(16, 0),
		minGap:      15,
		workers:     1,
	}
}
