// Package datekey maps calendar days to the canonical string keys used
// to isolate per-day content on disk.
package datekey

import (
	"math"
	"time"
)

// Layout is the fixed, locale-independent key pattern. Keys are derived
// from the local calendar day only; time of day never participates.
const Layout = "2006-01-02"

// Encode returns the storage key for the local calendar day of t.
// Two times on the same local day always yield the same key.
func Encode(t time.Time) string {
	return t.Local().Format(Layout)
}

// Midnight truncates t to the start of its local calendar day.
func Midnight(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, l.Location())
}

// SameDay reports whether a and b fall on the same local calendar day.
func SameDay(a, b time.Time) bool {
	al, bl := a.Local(), b.Local()
	return al.Day() == bl.Day() &&
		al.Month() == bl.Month() &&
		al.Year() == bl.Year()
}

// DaysBetween returns the number of whole local calendar days from a to
// b. Positive when b is after a, negative when before, zero on the same
// day. DST transitions do not skew the count because both ends are
// truncated to midnight first.
func DaysBetween(a, b time.Time) int {
	am := Midnight(a)
	bm := Midnight(b)
	// Midnight-to-midnight spans are a whole number of days give or
	// take a DST hour; rounding absorbs the hour.
	return int(math.Round(bm.Sub(am).Hours() / 24))
}
