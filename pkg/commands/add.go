package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/planner/pkg/commands/options"
	"tableflip.dev/planner/pkg/plan"
	"tableflip.dev/planner/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add something to a day's page",
		Example: `
planner add text this goes on today's page
planner add sticky --color=pink remember this
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addText(cmd)
	addSticky(cmd)
	addEvent(cmd)
	addPhoto(cmd)

	topLevel.AddCommand(cmd)
}

func addText(topLevel *cobra.Command) {
	no := &options.OnOptions{}
	po := &options.PositionOptions{}
	message := ""

	cmd := &cobra.Command{
		Use:     "text",
		Aliases: []string{"textbox", "note"},
		Short:   "Add a text box",
		Example: `
planner add text pick up the dry cleaning
planner add text --on="2/28" --x=100 --y=240 dinner plans
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires text")
			}
			message = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := no.GetOn()
			if err != nil {
				return err
			}
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			s := add.Text{
				On:          on,
				Message:     message,
				X:           po.X,
				Y:           po.Y,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, no)
	options.AddPositionArgs(cmd, po)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addSticky(topLevel *cobra.Command) {
	no := &options.OnOptions{}
	po := &options.PositionOptions{}
	message := ""
	colorName := ""

	names := make([]string, 0, len(plan.Palette()))
	for _, c := range plan.Palette() {
		names = append(names, string(c))
	}

	cmd := &cobra.Command{
		Use:     "sticky",
		Aliases: []string{"stickynote", "stickies"},
		Short:   "Add a sticky note",
		Example: `
planner add sticky remember this
planner add sticky --color=pink --on="2/28" remember this too
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires text")
			}
			message = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := no.GetOn()
			if err != nil {
				return err
			}
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			s := add.Sticky{
				On:          on,
				Message:     message,
				Color:       colorName,
				X:           po.X,
				Y:           po.Y,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&colorName, "color", string(plan.StickyYellow),
		"Sticky note color, one of: "+strings.Join(names, ", ")+".")

	options.AddOnArgs(cmd, no)
	options.AddPositionArgs(cmd, po)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

const layoutClock = "15:04"

func addEvent(topLevel *cobra.Command) {
	no := &options.OnOptions{}
	title := ""
	at := ""
	until := ""
	reminder := false

	cmd := &cobra.Command{
		Use:     "event",
		Aliases: []string{"events"},
		Short:   "Add an event widget",
		Example: `
planner add event --at=14:00 --until=15:30 team sync
planner add event --at=9:00 --reminder take out the bins
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := no.GetOn()
			if err != nil {
				return err
			}
			start, end, err := eventTimes(on, at, until)
			if err != nil {
				return err
			}
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			s := add.Event{
				On:          on,
				Title:       title,
				Start:       start,
				End:         end,
				Reminder:    reminder,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&at, "at", "", `Start time, example: --at="14:00".`)
	cmd.Flags().StringVar(&until, "until", "", `End time, example: --until="15:30". Defaults to an hour after start.`)
	cmd.Flags().BoolVar(&reminder, "reminder", false, "Make this a reminder instead of a timed event.")

	options.AddOnArgs(cmd, no)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

// eventTimes resolves the --at/--until clock strings against the page
// date. Unset times default to now and an hour after start.
func eventTimes(on time.Time, at, until string) (time.Time, time.Time, error) {
	start := time.Date(on.Year(), on.Month(), on.Day(),
		time.Now().Hour(), time.Now().Minute(), 0, 0, on.Location())
	if at != "" {
		c, err := time.Parse(layoutClock, at)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = time.Date(on.Year(), on.Month(), on.Day(), c.Hour(), c.Minute(), 0, 0, on.Location())
	}

	end := start.Add(time.Hour)
	if until != "" {
		c, err := time.Parse(layoutClock, until)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = time.Date(on.Year(), on.Month(), on.Day(), c.Hour(), c.Minute(), 0, 0, on.Location())
	}
	return start, end, nil
}

func addPhoto(topLevel *cobra.Command) {
	no := &options.OnOptions{}
	po := &options.PositionOptions{}

	cmd := &cobra.Command{
		Use:     "photo",
		Aliases: []string{"photos", "image"},
		Short:   "Add a photo from a file",
		Example: `
planner add photo ./beach.jpg
planner add photo --on="2/28" --x=80 --y=420 ./beach.jpg
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := no.GetOn()
			if err != nil {
				return err
			}
			p, err := loadPersistence()
			if err != nil {
				return err
			}
			s := add.Photo{
				On:          on,
				File:        args[0],
				X:           po.X,
				Y:           po.Y,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, no)
	options.AddPositionArgs(cmd, po)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
