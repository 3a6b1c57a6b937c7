package printers

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tweek/pkg/rule"
)

// Rules renders the recurring-rule table.
func (pp *PrettyPrint) Rules(all []rule.Rule) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Title"), bold.Sprint("Days"), bold.Sprint("Since"), bold.Sprint("Scope"))
	for _, r := range all {
		scope := r.Scope
		if scope == "" {
			scope = rule.ScopeOccurrence
		}
		tbl.AddRow(r.ID, r.Title, WeekdaySet(r.Days), r.StartDate, string(scope))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Snapshot renders the stored namespace keys with value sizes, used by the
// export verb's summary output.
func (pp *PrettyPrint) Snapshot(snap map[string]string) {
	bold := color.New(color.Bold)

	keys := make([]string, 0, len(snap))
	for key := range snap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Bytes"))
	for _, key := range keys {
		tbl.AddRow(key, len(snap[key]))
	}
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(color.Output, tbl)
}
