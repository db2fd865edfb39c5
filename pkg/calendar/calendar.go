// Package calendar renders month grids for the overview command.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
)

// Day describes a single rendered day cell.
type Day struct {
	Day        int
	HasContent bool
	IsToday    bool
	IsActive   bool
}

// Options controls calendar styling.
type Options struct {
	TitleStyle   lipgloss.Style
	HeaderStyle  lipgloss.Style
	QuietStyle   lipgloss.Style
	ContentStyle lipgloss.Style
	TodayStyle   lipgloss.Style
	ActiveStyle  lipgloss.Style
	ShowTitle    bool
	ShowHeader   bool
}

// DefaultOptions returns the styling used for month rendering.
func DefaultOptions() Options {
	return Options{
		TitleStyle:   lipgloss.NewStyle().Bold(true),
		HeaderStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		QuietStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		ContentStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		TodayStyle:   lipgloss.NewStyle().Underline(true),
		ActiveStyle:  lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		ShowTitle:    true,
		ShowHeader:   true,
	}
}

// Render produces a multi-line month grid. Days carrying content are
// brightened, today is underlined and the active day is highlighted.
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := DaysIn(month)

	byDay := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			byDay[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowTitle {
		lines = append(lines, opts.TitleStyle.Render(month.Format("January 2006")))
	}
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	offset := int(first.Weekday())
	totalCells := offset + daysInMonth
	rows := (totalCells + 6) / 7

	for row := 0; row < rows; row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			day := row*7 + col - offset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.QuietStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(byDay[day], day, opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

// RenderMonth is a convenience wrapper over Render for callers that
// only track which days hold content.
func RenderMonth(month time.Time, contentDays map[int]bool, activeDay int, now time.Time, opts Options) string {
	todayDay := 0
	if month.Year() == now.Year() && month.Month() == now.Month() {
		todayDay = now.Day()
	}

	days := make([]Day, 0, DaysIn(month))
	for day := 1; day <= DaysIn(month); day++ {
		days = append(days, Day{
			Day:        day,
			HasContent: contentDays[day],
			IsToday:    day == todayDay,
			IsActive:   day == activeDay && activeDay > 0,
		})
	}
	return Render(month, days, opts)
}

func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.QuietStyle
	if info.HasContent {
		style = opts.ContentStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsActive {
		style = style.Inherit(opts.ActiveStyle)
	}
	return style.Render(text)
}

// DaysIn returns the number of days in a month.
func DaysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}
