// Package printers renders planner state for the terminal.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/tweek/pkg/app"
	"tableflip.dev/tweek/pkg/note"
)

const bodyWidth = 60

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Fprintln(color.Output, "")
}

// Window prints every rendered day column in order.
func (pp *PrettyPrint) Window(days []app.Day) {
	for _, d := range days {
		pp.Day(d)
	}
}

// Day prints one column: weekday header, date, then the ordered notes.
func (pp *PrettyPrint) Day(d app.Day) {
	header := color.New(color.Bold, color.Underline)
	if d.Today {
		header = color.New(color.Bold, color.Underline, color.FgHiCyan)
	}
	_, _ = header.Fprintf(color.Output, "%s %s\n", d.Weekday.String()[:3], d.Key)

	if len(d.Notes) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}
	for _, n := range d.Notes {
		pp.Note(n)
	}
	fmt.Fprintln(color.Output, "")
}

// Note prints one note with its cards indented below it.
func (pp *PrettyPrint) Note(n note.Note) {
	title := color.New()
	if n.Done {
		title = color.New(color.Faint, color.CrossedOut)
	}
	marker := "•"
	if n.SeriesID != "" {
		marker = "↻"
	}

	if pp.ShowID {
		id := color.New(color.FgHiYellow, color.Italic, color.Faint)
		_, _ = id.Fprintf(color.Output, "%s  ", n.ID)
	}
	_, _ = title.Fprintf(color.Output, "%s %s\n", marker, n.Title)

	if n.Body != "" {
		body := color.New(color.Faint)
		for _, line := range strings.Split(wordwrap.String(n.Body, bodyWidth), "\n") {
			_, _ = body.Fprintf(color.Output, "    %s\n", line)
		}
	}
	for _, c := range n.Cards {
		pp.Card(c)
	}
}

// Card prints one sub-item.
func (pp *PrettyPrint) Card(c note.Card) {
	t := color.New()
	if pp.ShowID {
		id := color.New(color.FgHiYellow, color.Italic, color.Faint)
		_, _ = id.Fprintf(color.Output, "%s  ", c.ID)
	}
	_, _ = t.Fprintf(color.Output, "    - %s\n", c.Title)
}

// Title prints a bold underlined section heading.
func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

var weekdayShort = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeekdaySet formats a weekday set compactly, e.g. "Mon,Wed".
func WeekdaySet(days []time.Weekday) string {
	if len(days) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, weekdayShort[int(d)%7])
	}
	return strings.Join(parts, ",")
}
