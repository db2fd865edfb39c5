package calendar

import (
	"strings"
	"testing"
	"time"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		month time.Time
		want  int
	}{
		{time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 29},
		{time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC), 28},
		{time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC), 31},
	}
	for _, tt := range tests {
		if got := DaysIn(tt.month); got != tt.want {
			t.Errorf("DaysIn(%s) = %d, want %d", tt.month.Format("2006-01"), got, tt.want)
		}
	}
}

func TestRenderRowCount(t *testing.T) {
	// June 2024 starts on a Saturday: 1 offset cell + 30 days = 6 weeks.
	month := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	out := Render(month, nil, DefaultOptions())
	lines := strings.Split(out, "\n")
	if got, want := len(lines), 2+6; got != want {
		t.Errorf("rendered %d lines, want %d:\n%s", got, want, out)
	}
	if !strings.Contains(lines[0], "June 2024") {
		t.Errorf("missing title line: %q", lines[0])
	}
}

func TestRenderZeroMonth(t *testing.T) {
	if got := Render(time.Time{}, nil, DefaultOptions()); got != "" {
		t.Errorf("Render(zero) = %q, want empty", got)
	}
}

func TestRenderMonthMarksContent(t *testing.T) {
	month := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	out := RenderMonth(month, map[int]bool{15: true}, 0, time.Time{}, DefaultOptions())
	if !strings.Contains(out, "15") {
		t.Errorf("day 15 missing from output:\n%s", out)
	}
}
