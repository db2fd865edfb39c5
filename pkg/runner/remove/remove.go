package remove

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/planner/pkg/journal"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

type Remove struct {
	On          time.Time
	ID          string
	Persistence store.Persistence
}

// Do deletes the item with the given id from the day's page, whatever
// collection it lives in. Short id prefixes are accepted.
func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	svc := &journal.Service{Persistence: n.Persistence}

	id, err := svc.ResolveID(n.On, n.ID)
	if err != nil {
		return err
	}

	deletes := []func(time.Time, string) error{
		svc.DeleteTextBox,
		svc.DeleteStickyNote,
		svc.DeleteEvent,
		svc.DeletePhoto,
	}
	for _, del := range deletes {
		err := del(n.On, id)
		if err == nil {
			pg, err := svc.Page(n.On)
			if err != nil {
				return err
			}
			fmt.Println("")
			pp := printers.PrettyPrint{ShowID: true}
			pp.Page(pg)
			return nil
		}
		if !errors.Is(err, journal.ErrNotFound) {
			return err
		}
	}
	return journal.ErrNotFound
}
