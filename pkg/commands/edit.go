package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tweek/pkg/commands/options"
	"tableflip.dev/tweek/pkg/runner/edit"
	"tableflip.dev/tweek/pkg/store"
)

func addDone(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "done <note-id>",
		Short: "Toggle a note's completion flag.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			d := edit.Done{Persistence: p, Date: do.Date, NoteID: args[0]}
			err = d.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}

func addRemove(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	cardID := ""

	cmd := &cobra.Command{
		Use:     "rm <note-id>",
		Short:   "Delete a note, or one of its cards with --card.",
		Aliases: []string{"delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := edit.Remove{Persistence: p, Date: do.Date, NoteID: args[0], CardID: cardID}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	cmd.Flags().StringVar(&cardID, "card", "", "Delete this card instead of the whole note.")

	topLevel.AddCommand(cmd)
}

func addRetitle(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "retitle <note-id> <title>",
		Short: "Commit a new title; an empty title discards the note.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := edit.Retitle{
				Persistence: p,
				Date:        do.Date,
				NoteID:      args[0],
				Title:       strings.Join(args[1:], " "),
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}

func addMove(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "move <note-id> <target-date>",
		Short: "Move a note to another day (appends at the end).",
		Example: `
tweek move 4f8d… 2024-01-05
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			m := edit.Move{Persistence: p, Date: do.Date, NoteID: args[0], Target: args[1]}
			err = m.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
