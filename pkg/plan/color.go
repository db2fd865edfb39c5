package plan

import (
	"encoding/json"
	"strings"
)

// StickyColor is the color tag carried by a sticky note. The palette is
// fixed and small; values outside it decode to the default so records
// written by a newer palette still load.
type StickyColor string

const (
	StickyYellow StickyColor = "yellow"
	StickyPink   StickyColor = "pink"
	StickyBlue   StickyColor = "blue"
	StickyGreen  StickyColor = "green"
	StickyOrange StickyColor = "orange"
)

// Palette returns the supported sticky note colors in display order.
// The first entry is the default.
func Palette() []StickyColor {
	return []StickyColor{
		StickyYellow,
		StickyPink,
		StickyBlue,
		StickyGreen,
		StickyOrange,
	}
}

// ParseStickyColor maps a raw string onto the palette. Unknown or empty
// input yields the default color, never an error.
func ParseStickyColor(raw string) StickyColor {
	c := StickyColor(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range Palette() {
		if candidate == c {
			return candidate
		}
	}
	return StickyYellow
}

func (c StickyColor) String() string {
	return string(c)
}

// MarshalJSON writes the color as its palette name.
func (c StickyColor) MarshalJSON() ([]byte, error) {
	if c == "" {
		c = StickyYellow
	}
	return json.Marshal(string(c))
}

// UnmarshalJSON accepts any string and snaps it to the palette.
func (c *StickyColor) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		// Tolerate non-string values the same way unknown names are
		// tolerated: fall back to the default.
		*c = StickyYellow
		return nil
	}
	*c = ParseStickyColor(raw)
	return nil
}
