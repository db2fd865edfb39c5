package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// PrintMonth prints a month grid, brightening days that have content
// and underlining today. counts maps day-of-month to number of record
// kinds present on that day.
func (pp *PrettyPrint) PrintMonth(then time.Time, counts map[int]int) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(then.Format("January 2006"))

	h := color.New(color.Faint)
	_, _ = h.Println("Su Mo Tu We Th Fr Sa")

	first := time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, then.Location())
	last := first.AddDate(0, 1, -1)
	now := time.Now()

	for i := 0; i < int(first.Weekday()); i++ {
		fmt.Print("   ")
	}

	for day := 1; day <= last.Day(); day++ {
		p := color.New(color.Faint)
		if counts[day] > 0 {
			p = color.New(color.FgHiWhite, color.Bold)
		}
		if now.Year() == then.Year() && now.Month() == then.Month() && now.Day() == day {
			p = p.Add(color.Underline)
		}

		_, _ = p.Printf("%2d", day)
		wd := (int(first.Weekday()) + day - 1) % 7
		if wd == 6 {
			fmt.Print("\n")
		} else {
			fmt.Print(" ")
		}
	}
	if (int(first.Weekday())+last.Day()-1)%7 != 6 {
		fmt.Print("\n")
	}
	fmt.Print("\n")
}
