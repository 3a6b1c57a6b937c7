package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/tweek/pkg/runner/find"
	"tableflip.dev/tweek/pkg/store"
)

func addFind(topLevel *cobra.Command) {
	limit := 20

	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy-search note and card titles across all days.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			f := find.Find{
				Persistence: p,
				Query:       strings.Join(args, " "),
				Limit:       limit,
			}
			err = f.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of matches to print.")

	topLevel.AddCommand(cmd)
}
