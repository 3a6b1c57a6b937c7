package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tweek/pkg/commands/options"
	"tableflip.dev/tweek/pkg/runner/series"
	"tableflip.dev/tweek/pkg/store"
)

func addSeries(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Manage recurring series.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addSeriesList(cmd)
	addSeriesSet(cmd)
	addSeriesClear(cmd)

	topLevel.AddCommand(cmd)
}

func addSeriesList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List recurring rules.",
		Aliases: []string{"ls"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			l := series.List{Persistence: p}
			err = l.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	topLevel.AddCommand(cmd)
}

func addSeriesSet(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	days := &options.DaysOptions{}

	cmd := &cobra.Command{
		Use:   "set <note-id>",
		Short: "Repeat a note on the given weekdays; an empty set clears the series.",
		Example: `
tweek series set 4f8d… --on mon,wed
tweek series set 4f8d… --on ""
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			weekdays, err := days.Weekdays()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			c := series.Configure{
				Persistence: p,
				Date:        do.Date,
				NoteID:      args[0],
				Days:        weekdays,
			}
			err = c.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddDaysArgs(cmd, days)

	topLevel.AddCommand(cmd)
}

func addSeriesClear(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "clear <note-id>",
		Short: "Detach the note from its rule and delete the rule.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			c := series.Clear{Persistence: p, Date: do.Date, NoteID: args[0]}
			err = c.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
