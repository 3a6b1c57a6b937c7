// Package commands assembles the tweek CLI.
package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tweek",
		Short: base.Wrap80("A week-at-a-glance day planner on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShow(topLevel)
	addAdd(topLevel)
	addCard(topLevel)
	addDone(topLevel)
	addRemove(topLevel)
	addRetitle(topLevel)
	addMove(topLevel)
	addSeries(topLevel)
	addFind(topLevel)
	addSettings(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
