package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/tweek/pkg/runner/backup"
	"tableflip.dev/tweek/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	summary := false

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the full planner snapshot to a JSON backup.",
		Example: `
tweek export
tweek export my-backup.json --summary
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			e := backup.Export{Persistence: p, Summary: summary}
			if len(args) == 1 {
				e.Path = args[0]
			}
			err = e.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "Print the exported keys and sizes.")

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all planner data with a backup file.",
		Long: "Replace all planner data with a backup file.\n\n" +
			"The file is parsed before anything is cleared; a malformed file\n" +
			"leaves the current data untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			i := backup.Import{Persistence: p, Path: args[0]}
			err = i.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
