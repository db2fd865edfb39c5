package move

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/planner/pkg/journal"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

type Move struct {
	On   time.Time
	ID   string
	X, Y float64

	// Resize, when set, changes dimensions instead of position. It only
	// applies to photos.
	Resize bool

	Persistence store.Persistence
}

func (n *Move) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not move, no persistence")
	}

	svc := &journal.Service{Persistence: n.Persistence}

	id, err := svc.ResolveID(n.On, n.ID)
	if err != nil {
		return err
	}

	if n.Resize {
		if err := svc.ResizePhoto(n.On, id, n.X, n.Y); err != nil {
			return err
		}
		return n.reprint(svc)
	}

	moves := []func(time.Time, string, float64, float64) error{
		svc.MoveTextBox,
		svc.MoveStickyNote,
		svc.MoveEvent,
		svc.MovePhoto,
	}
	for _, mv := range moves {
		err := mv(n.On, id, n.X, n.Y)
		if err == nil {
			return n.reprint(svc)
		}
		if !errors.Is(err, journal.ErrNotFound) {
			return err
		}
	}
	return journal.ErrNotFound
}

func (n *Move) reprint(svc *journal.Service) error {
	pg, err := svc.Page(n.On)
	if err != nil {
		return err
	}
	fmt.Println("")
	pp := printers.PrettyPrint{ShowID: true}
	pp.Page(pg)
	return nil
}
