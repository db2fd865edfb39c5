// Package printers renders planner content for the terminal.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/journal"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

// Page prints every collection on a day's page.
func (pp *PrettyPrint) Page(pg journal.Page) {
	pp.Title(pg.DateKey)

	section := color.New(color.Faint, color.Italic)

	if len(pg.TextBoxes)+len(pg.StickyNotes)+len(pg.Events)+len(pg.Photos) == 0 {
		_, _ = section.Print(" nothing on this page\n\n")
		return
	}

	t := color.New()
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)
	pos := color.New(color.Faint)

	prefix := func(itemID string) {
		if !pp.ShowID {
			return
		}
		_, _ = id.Print(shortID(itemID))
		_, _ = id.Print(strings.Repeat(" ", len(spacing)-len(shortID(itemID))))
	}

	if len(pg.TextBoxes) > 0 {
		_, _ = section.Println(" text")
		for _, b := range pg.TextBoxes {
			prefix(b.ID)
			_, _ = t.Printf("%s ", b.Text)
			_, _ = pos.Printf("(%.0f,%.0f pt%.0f)\n", b.X, b.Y, b.FontSize)
		}
	}

	if len(pg.StickyNotes) > 0 {
		_, _ = section.Println(" sticky notes")
		for _, n := range pg.StickyNotes {
			prefix(n.ID)
			_, _ = stickyPrinter(string(n.Color)).Printf("■ ")
			_, _ = t.Printf("%s ", n.Text)
			_, _ = pos.Printf("(%.0f,%.0f)\n", n.X, n.Y)
		}
	}

	if len(pg.Events) > 0 {
		_, _ = section.Println(" events")
		for _, e := range pg.Events {
			prefix(e.ID)
			glyph := "○"
			if e.Reminder {
				glyph = "!"
				if e.Completed {
					glyph = "✓"
				}
			}
			_, _ = t.Printf("%s %s ", glyph, e.Title)
			_, _ = pos.Printf("%s", e.Start.Local().Format("15:04"))
			if !e.Reminder {
				_, _ = pos.Printf("–%s", e.End.Local().Format("15:04"))
			}
			_, _ = pos.Println("")
		}
	}

	if len(pg.Photos) > 0 {
		_, _ = section.Println(" photos")
		for _, ph := range pg.Photos {
			prefix(ph.ID)
			_, _ = t.Printf("photo %s ", shortID(ph.ID))
			_, _ = pos.Printf("(%.0f,%.0f %sx%s, %d bytes)\n",
				ph.X, ph.Y, trimFloat(ph.W), trimFloat(ph.H), len(ph.Image))
		}
	}

	_, _ = t.Println("")
}

// Events prints event widgets with their times, used by listings that
// do not need the rest of the page.
func (pp *PrettyPrint) Events(on time.Time, pg journal.Page) {
	pp.Title(on.Format("January 2, 2006"))
	t := color.New()
	for _, e := range pg.Events {
		_, _ = t.Printf("%s %s\n", e.Start.Local().Format("15:04"), e.Title)
	}
	_, _ = t.Println("")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func trimFloat(f float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", f), ".0")
}

func stickyPrinter(name string) *color.Color {
	switch name {
	case "pink":
		return color.New(color.FgHiMagenta)
	case "blue":
		return color.New(color.FgHiBlue)
	case "green":
		return color.New(color.FgHiGreen)
	case "orange":
		return color.New(color.FgHiRed)
	default:
		return color.New(color.FgHiYellow)
	}
}
