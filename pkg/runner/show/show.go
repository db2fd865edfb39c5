package show

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/planner/pkg/journal"
	"tableflip.dev/planner/pkg/printers"
	"tableflip.dev/planner/pkg/store"
)

type Show struct {
	ShowID      bool
	On          time.Time
	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	if n.Persistence == nil {
		return errors.New("can not show, no persistence")
	}
	fmt.Println("")

	svc := &journal.Service{Persistence: n.Persistence}
	pg, err := svc.Page(n.On)
	if err != nil {
		return err
	}

	pp.Page(pg)
	return nil
}
