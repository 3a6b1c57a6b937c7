package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tweek/pkg/runner/settings"
	"tableflip.dev/tweek/pkg/store"
)

func addSettings(topLevel *cobra.Command) {
	total := -1
	past := -1
	dark := false

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change the view settings.",
		Example: `
tweek settings
tweek settings --total 5 --past 0
tweek settings --toggle-dark
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := settings.Settings{
				Persistence: p,
				Total:       total,
				Past:        past,
				ToggleDark:  dark,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&total, "total", -1, "Number of day columns to show (> 0).")
	cmd.Flags().IntVar(&past, "past", -1, "Days of lookback before today (>= 0).")
	cmd.Flags().BoolVar(&dark, "toggle-dark", false, "Toggle the dark theme.")

	topLevel.AddCommand(cmd)
}
