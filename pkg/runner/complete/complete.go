// Package complete provides the runner logic for checking off reminders.
package complete

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/planner/pkg/journal"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

// Complete toggles an event widget's completed state.
type Complete struct {
	On          time.Time
	ID          string
	Persistence store.Persistence
}

func (n *Complete) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: true}

	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}

	svc := &journal.Service{Persistence: n.Persistence}

	id, err := svc.ResolveID(n.On, n.ID)
	if err != nil {
		return err
	}
	if err := svc.ToggleEventCompleted(n.On, id); err != nil {
		return err
	}

	pg, err := svc.Page(n.On)
	if err != nil {
		return err
	}
	fmt.Println("")
	pp.Page(pg)

	return nil
}
