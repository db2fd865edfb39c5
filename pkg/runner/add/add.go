// Package add provides runners that place new items on a day's page.
package add

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/planner/pkg/journal"
	"tableflip.dev/planner/pkg/plan"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

// Text adds a text box to a page.
type Text struct {
	On      time.Time
	Message string
	X, Y    float64

	Persistence store.Persistence
}

func (n *Text) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	x, y := placed(n.X, n.Y)
	svc := &journal.Service{Persistence: n.Persistence}
	if _, err := svc.AddTextBox(n.On, n.Message, x, y); err != nil {
		return err
	}
	return reprint(svc, n.On)
}

// Sticky adds a sticky note to a page.
type Sticky struct {
	On      time.Time
	Message string
	Color   string
	X, Y    float64

	Persistence store.Persistence
}

func (n *Sticky) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	x, y := placed(n.X, n.Y)
	svc := &journal.Service{Persistence: n.Persistence}
	if _, err := svc.AddStickyNote(n.On, n.Message, x, y, plan.ParseStickyColor(n.Color)); err != nil {
		return err
	}
	return reprint(svc, n.On)
}

// Event adds an event widget to a page.
type Event struct {
	On       time.Time
	Title    string
	Start    time.Time
	End      time.Time
	Reminder bool

	Persistence store.Persistence
}

func (n *Event) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	svc := &journal.Service{Persistence: n.Persistence}
	if _, err := svc.AddEvent(n.On, n.Title, n.Start, n.End, n.Reminder); err != nil {
		return err
	}
	return reprint(svc, n.On)
}

// Photo adds a photo from a local file to a page.
type Photo struct {
	On   time.Time
	File string
	X, Y float64

	Persistence store.Persistence
}

func (n *Photo) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	data, err := os.ReadFile(n.File)
	if err != nil {
		return fmt.Errorf("reading photo: %w", err)
	}

	svc := &journal.Service{Persistence: n.Persistence}
	photo, err := svc.AddPhoto(n.On, data)
	if err != nil {
		return err
	}
	if n.X != 0 || n.Y != 0 {
		if err := svc.MovePhoto(n.On, photo.ID, n.X, n.Y); err != nil {
			return err
		}
	}
	return reprint(svc, n.On)
}

func placed(x, y float64) (float64, float64) {
	if x == 0 && y == 0 {
		return journal.DefaultX, journal.DefaultY
	}
	return x, y
}

func reprint(svc *journal.Service, on time.Time) error {
	pg, err := svc.Page(on)
	if err != nil {
		return err
	}
	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.Page(pg)
	return nil
}
