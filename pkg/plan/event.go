package plan

import "time"

// EventPlacement is an event or reminder widget pinned to a day's page.
// Creating the matching entry in the platform calendar is the caller's
// concern; this type only covers the on-page widget.
type EventPlacement struct {
	ID        string    `json:"id,omitempty"`
	Title     string    `json:"title"`
	Start     time.Time `json:"startTime"`
	End       time.Time `json:"endTime"`
	X         float64   `json:"x"`
	Y         float64   `json:"y"`
	Reminder  bool      `json:"isReminder"`
	// Completed is absent in records written before the flag existed;
	// the zero value reads as not completed.
	Completed bool `json:"isCompleted"`
}
