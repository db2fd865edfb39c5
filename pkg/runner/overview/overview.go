// Package overview summarizes which days of a month carry content.
package overview

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/planner/pkg/calendar"
	"tableflip.dev/planner/pkg/datekey"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

type Overview struct {
	On          time.Time
	Table       bool
	Persistence store.Persistence
}

func (n *Overview) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get overview, no persistence")
	}

	contents := n.Persistence.Contents(ctx)

	counts := make(map[int]int)
	monthKeys := make([]string, 0, len(contents))
	for dk, kinds := range contents {
		day, err := time.ParseInLocation(datekey.Layout, dk, n.On.Location())
		if err != nil {
			continue
		}
		if day.Year() == n.On.Year() && day.Month() == n.On.Month() {
			counts[day.Day()] = len(kinds)
			monthKeys = append(monthKeys, dk)
		}
	}
	sort.Strings(monthKeys)

	fmt.Println("")

	if !n.Table {
		contentDays := make(map[int]bool, len(counts))
		for day := range counts {
			contentDays[day] = true
		}
		out := calendar.RenderMonth(n.On, contentDays, 0, time.Now(), calendar.DefaultOptions())
		_, _ = fmt.Fprintln(color.Output, out)
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.PrintMonth(n.On, counts)

	tbl := uitable.New()
	tbl.Separator = "  "
	b := color.New(color.Bold)
	tbl.AddRow(b.Sprint("Day"), b.Sprint("Content"))
	for _, dk := range monthKeys {
		kinds := ""
		for i, k := range contents[dk] {
			if i > 0 {
				kinds += ", "
			}
			kinds += string(k)
		}
		tbl.AddRow(dk, kinds)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")

	return nil
}
