package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tweek/pkg/commands/options"
	"tableflip.dev/tweek/pkg/runner/add"
	"tableflip.dev/tweek/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	body := ""

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a note to a day.",
		Example: `
tweek add "Dentist"
tweek add --date 2024-01-03 "Standup" --body "agenda in the wiki"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			a := add.Add{
				Persistence: p,
				Date:        do.Date,
				Title:       strings.Join(args, " "),
				Body:        body,
			}
			err = a.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)
	cmd.Flags().StringVar(&body, "body", "", "Optional body text for the note.")

	topLevel.AddCommand(cmd)
}

func addCard(topLevel *cobra.Command) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "card <note-id> <title>",
		Short: "Add a card under a note.",
		Example: `
tweek card 4f8d… "book the room"
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			c := add.Card{
				Persistence: p,
				Date:        do.Date,
				NoteID:      args[0],
				Title:       strings.Join(args[1:], " "),
			}
			err = c.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddDateArgs(cmd, do)

	topLevel.AddCommand(cmd)
}
