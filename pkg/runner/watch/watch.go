// Package watch streams change notifications from the planner store.
package watch

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/planner/pkg/store"
)

type Watch struct {
	Persistence store.Persistence
}

// Do prints one line per store change until the context is canceled.
func (n *Watch) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}

	events, err := n.Persistence.Watch(ctx)
	if err != nil {
		return err
	}

	day := color.New(color.Bold)
	kind := color.New(color.Faint)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev.Type {
			case store.EventDayChanged:
				_, _ = fmt.Fprintf(color.Output, "%s %s\n", day.Sprint(ev.DateKey), kind.Sprint(string(ev.Kind)))
			case store.EventInvalidated:
				_, _ = fmt.Fprintln(color.Output, kind.Sprint("store changed, reload"))
			}
		}
	}
}
