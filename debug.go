package uicam

import (
	"time"

	"github.com/kataras/golog"
)

var logger = golog.Child("[uicam]")

func init() {
	logger.SetLevel("warn")
}

// tickStats holds per-tick counters. Timing is only measured when the router
// is in debug mode.
type tickStats struct {
	pointers  int
	hitTests  int
	events    int
	tickTime  time.Duration
	injected  bool
	touchSeen int
}

// SetDebugMode enables or disables debug mode. When enabled, the package
// logger drops to debug level and per-tick stats are logged.
func (r *Router) SetDebugMode(enabled bool) {
	r.debug = enabled
	if enabled {
		logger.SetLevel("debug")
	} else {
		logger.SetLevel("warn")
	}
}

// debugLog logs the stats of the tick that just ran.
func (r *Router) debugLog(stats tickStats) {
	if !r.debug {
		return
	}
	logger.Debugf("tick: %v | pointers: %d | touches: %d | hit tests: %d | events: %d | injected: %v",
		stats.tickTime, stats.pointers, stats.touchSeen, stats.hitTests, stats.events, stats.injected)
}

// Stats is a snapshot of the counters of the last tick.
type Stats struct {
	Pointers int
	HitTests int
	Events   int
}

// LastStats returns the counters of the most recent tick.
func (r *Router) LastStats() Stats {
	return Stats{
		Pointers: r.lastStats.pointers,
		HitTests: r.lastStats.hitTests,
		Events:   r.lastStats.events,
	}
}
