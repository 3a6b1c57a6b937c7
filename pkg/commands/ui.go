package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/tweek/pkg/store"
	"tableflip.dev/tweek/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	demo := false

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive planner board.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var p store.Persistence
			var err error
			if demo {
				p = tui.DemoData()
			} else {
				if p, err = store.Load(nil); err != nil {
					return err
				}
			}
			return tui.Run(p)
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Run against throwaway sample data.")

	topLevel.AddCommand(cmd)
}
