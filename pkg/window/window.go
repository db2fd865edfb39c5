// Package window maintains the sliding run of consecutive days that
// backs a paged day-per-page view.
package window

import (
	"time"

	"tableflip.dev/planner/pkg/datekey"
)

const (
	// Radius is the number of days kept on each side of the center, so
	// a window spans 2*Radius+1 days. Large enough that a user swiping
	// at a normal pace never reaches an edge before regeneration.
	Radius = 182

	// Threshold is how close (in days) the active date may come to
	// either edge before the window is rebuilt around it.
	Threshold = 2
)

// Window is an ordered, contiguous run of local calendar days, each
// exactly one day after its predecessor. Paging is "infinite": whenever
// the active date drifts within Threshold days of an edge the window is
// replaced wholesale by a new one centered on it, so the active date is
// always an element.
type Window struct {
	dates     []time.Time
	radius    int
	threshold int
}

// New builds a window of 2*Radius+1 days centered on the local calendar
// day of anchor.
func New(anchor time.Time) Window {
	return newWindow(anchor, Radius, Threshold)
}

func newWindow(anchor time.Time, radius, threshold int) Window {
	center := datekey.Midnight(anchor)
	dates := make([]time.Time, 0, 2*radius+1)
	for i := -radius; i <= radius; i++ {
		d := center.AddDate(0, 0, i)
		// At the far limits of the calendar the arithmetic can wrap;
		// skip an offset that failed to advance rather than abort.
		if len(dates) > 0 && !dates[len(dates)-1].Before(d) {
			continue
		}
		dates = append(dates, d)
	}
	return Window{dates: dates, radius: radius, threshold: threshold}
}

// OnActiveDateChanged reports a page change. If active sits within
// Threshold days of either edge a fresh window centered on it is
// returned; otherwise the receiver is returned unchanged.
func (w Window) OnActiveDateChanged(active time.Time) Window {
	if len(w.dates) == 0 {
		return newWindow(active, w.radiusOrDefault(), w.thresholdOrDefault())
	}
	fromStart := datekey.DaysBetween(w.dates[0], active)
	toEnd := datekey.DaysBetween(active, w.dates[len(w.dates)-1])
	if fromStart <= w.thresholdOrDefault() || toEnd <= w.thresholdOrDefault() {
		return newWindow(active, w.radiusOrDefault(), w.thresholdOrDefault())
	}
	return w
}

func (w Window) radiusOrDefault() int {
	if w.radius == 0 {
		return Radius
	}
	return w.radius
}

func (w Window) thresholdOrDefault() int {
	if w.threshold == 0 {
		return Threshold
	}
	return w.threshold
}

// Len returns the number of days in the window.
func (w Window) Len() int {
	return len(w.dates)
}

// First returns the earliest day in the window.
func (w Window) First() time.Time {
	if len(w.dates) == 0 {
		return time.Time{}
	}
	return w.dates[0]
}

// Last returns the latest day in the window.
func (w Window) Last() time.Time {
	if len(w.dates) == 0 {
		return time.Time{}
	}
	return w.dates[len(w.dates)-1]
}

// Dates returns the days in ascending order. The slice is a copy.
func (w Window) Dates() []time.Time {
	out := make([]time.Time, len(w.dates))
	copy(out, w.dates)
	return out
}

// Contains reports whether the local calendar day of t is an element of
// the window.
func (w Window) Contains(t time.Time) bool {
	if len(w.dates) == 0 {
		return false
	}
	return datekey.DaysBetween(w.dates[0], t) >= 0 &&
		datekey.DaysBetween(t, w.dates[len(w.dates)-1]) >= 0
}

// Keys returns the storage keys for every day in the window.
func (w Window) Keys() []string {
	keys := make([]string, len(w.dates))
	for i, d := range w.dates {
		keys[i] = datekey.Encode(d)
	}
	return keys
}
