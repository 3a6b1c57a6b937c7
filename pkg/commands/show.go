package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tweek/pkg/commands/options"
	"tableflip.dev/tweek/pkg/runner/show"
	"tableflip.dev/tweek/pkg/store"
	"tableflip.dev/tweek/pkg/timeutil"
)

func addShow(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the visible day columns.",
		Example: `
tweek show
tweek show --days 3 --past 0
tweek show --span 2w --offset 7
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			days := wo.Days
			if wo.Span != "" {
				if days, err = timeutil.ParseSpan(wo.Span); err != nil {
					return err
				}
			}
			s := show.Show{
				Persistence: p,
				ShowID:      io.ShowID,
				Days:        days,
				Past:        wo.Past,
				Offset:      wo.Offset,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
