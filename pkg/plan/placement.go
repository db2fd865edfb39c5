package plan

import "github.com/google/uuid"

// MinPhotoSize is the smallest width or height a photo may be resized
// to. The editing layer clamps before persisting; the store itself
// writes whatever it is given.
const MinPhotoSize = 50.0

// NewID returns a fresh placement identifier. IDs are stable across
// save and load and never reused within a day.
func NewID() string {
	return uuid.NewString()
}

// PhotoPlacement is a positioned, sized photo on a day's page. Image
// bytes ride alongside the geometry in memory but are persisted as a
// separate per-id record.
type PhotoPlacement struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Image []byte  `json:"-"`
}

// TextBoxPlacement is a typed text box on a day's page.
type TextBoxPlacement struct {
	ID       string  `json:"id,omitempty"`
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"fontSize"`
}

// StickyNotePlacement is a colored sticky note on a day's page.
type StickyNotePlacement struct {
	ID    string      `json:"id,omitempty"`
	Text  string      `json:"text"`
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
	Color StickyColor `json:"color"`
}
