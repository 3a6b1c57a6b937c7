// Package tui is the interactive planner board: one column per visible day,
// keyboard-driven edits, and a move mode that drives the ordering engine the
// same way a pointer drag does.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/tweek/pkg/app"
	"tableflip.dev/tweek/pkg/note"
	"tableflip.dev/tweek/pkg/ordering"
	"tableflip.dev/tweek/pkg/store"
	"tableflip.dev/tweek/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeMove
	modeInput
)

type inputKind int

const (
	inputNewNote inputKind = iota
	inputRetitle
	inputNewCard
)

type refreshMsg struct{}

type watchMsg struct{ ev store.Event }

// Model is the board state.
type Model struct {
	svc *app.Service
	th  theme.Theme

	days []app.Day
	col  int
	row  int

	mode      mode
	session   *ordering.Session
	hoverCol  int
	hoverSlot int

	input     textinput.Model
	inputFor  inputKind
	inputDate string
	inputNote string

	status string
	width  int
	height int

	events <-chan store.Event
}

func newModel(svc *app.Service, th theme.Theme, events <-chan store.Event) Model {
	ti := textinput.New()
	ti.CharLimit = 120
	return Model{svc: svc, th: th, input: ti, events: events}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(refresh(), m.waitForEvent())
}

func refresh() tea.Cmd {
	return func() tea.Msg { return refreshMsg{} }
}

func (m Model) waitForEvent() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return nil
		}
		return watchMsg{ev: ev}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		return m.reload(), nil

	case watchMsg:
		// Changes from another process; re-derive every column.
		return m.reload(), m.waitForEvent()

	case tea.KeyMsg:
		switch m.mode {
		case modeInput:
			return m.updateInput(msg)
		case modeMove:
			return m.updateMove(msg)
		default:
			return m.updateNormal(msg)
		}
	}
	return m, nil
}

func (m Model) reload() Model {
	days, err := m.svc.RenderWindow(time.Now())
	if err != nil {
		m.status = err.Error()
		return m
	}
	m.days = days
	m.clampCursor()
	return m
}

func (m *Model) clampCursor() {
	if len(m.days) == 0 {
		m.col, m.row = 0, 0
		return
	}
	if m.col >= len(m.days) {
		m.col = len(m.days) - 1
	}
	if m.col < 0 {
		m.col = 0
	}
	notes := m.days[m.col].Notes
	if m.row >= len(notes) {
		m.row = len(notes) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m Model) selected() (app.Day, note.Note, bool) {
	if m.col >= len(m.days) {
		return app.Day{}, note.Note{}, false
	}
	d := m.days[m.col]
	if m.row >= len(d.Notes) {
		return d, note.Note{}, false
	}
	return d, d.Notes[m.row], true
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.col--
		m.clampCursor()
	case "right", "l":
		m.col++
		m.clampCursor()
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		m.row++
		m.clampCursor()

	case "[":
		m.svc.View.Navigate(-1)
		return m, refresh()
	case "]":
		m.svc.View.Navigate(1)
		return m, refresh()

	case "n":
		if len(m.days) == 0 {
			return m, nil
		}
		return m.startInput(inputNewNote, m.days[m.col].Key, "", ""), nil

	case "e":
		if d, n, ok := m.selected(); ok {
			return m.startInput(inputRetitle, d.Key, n.ID, n.Title), nil
		}

	case "c":
		if d, n, ok := m.selected(); ok {
			return m.startInput(inputNewCard, d.Key, n.ID, ""), nil
		}

	case "d":
		if d, n, ok := m.selected(); ok {
			if _, err := m.svc.ToggleDone(d.Key, n.ID); err != nil {
				m.status = err.Error()
				return m, nil
			}
			return m, refresh()
		}

	case "x":
		if d, n, ok := m.selected(); ok {
			if err := m.svc.DeleteNote(d.Key, n.ID); err != nil {
				m.status = err.Error()
				return m, nil
			}
			return m, refresh()
		}

	case "t":
		settings, err := m.svc.View.ToggleDarkMode()
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		if settings.DarkMode {
			m.th = theme.Dark()
		} else {
			m.th = theme.Light()
		}

	case " ", "m":
		if d, n, ok := m.selected(); ok {
			m.session = ordering.BeginNoteDrag(d.Key, n.ID)
			m.mode = modeMove
			m.hoverCol = m.col
			m.hoverSlot = m.row
			m.status = "moving " + n.Title
		}
	}
	return m, nil
}

func (m Model) updateMove(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.hoverCol > 0 {
			m.hoverCol--
			m.clampHover()
		}
	case "right", "l":
		if m.hoverCol < len(m.days)-1 {
			m.hoverCol++
			m.clampHover()
		}
	case "up", "k":
		if m.hoverSlot > 0 {
			m.hoverSlot--
		}
	case "down", "j":
		m.hoverSlot++
		m.clampHover()

	case " ", "enter":
		target := m.days[m.hoverCol]
		candidates := m.moveCandidates()
		// Slot i sits just above candidate i's midpoint, so the engine
		// resolves it to insertion index i; past the last candidate it
		// resolves to append.
		m.session.Hover(target.Key, "", float64(m.hoverSlot), boxesFor(len(candidates)), nil)
		if _, err := m.svc.Ordering.Drop(m.session); err != nil {
			m.status = err.Error()
		} else {
			m.status = ""
		}
		m.session = nil
		m.mode = modeNormal
		m.col = m.hoverCol
		m.row = m.hoverSlot
		return m, refresh()

	case "esc":
		// The session never saw a committed insertion point, so dropping it
		// writes nothing.
		if _, err := m.svc.Ordering.Drop(m.session); err != nil {
			m.status = err.Error()
		}
		m.session = nil
		m.mode = modeNormal
		m.status = ""
	}
	return m, nil
}

// moveCandidates returns the hover column's notes with the dragged note
// excluded, mirroring how drag-over excludes the dragged element.
func (m Model) moveCandidates() []note.Note {
	target := m.days[m.hoverCol]
	_, dragged, ok := m.selected()
	out := make([]note.Note, 0, len(target.Notes))
	for _, n := range target.Notes {
		if ok && n.ID == dragged.ID {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (m *Model) clampHover() {
	max := len(m.moveCandidates())
	if m.hoverSlot > max {
		m.hoverSlot = max
	}
	if m.hoverSlot < 0 {
		m.hoverSlot = 0
	}
}

func boxesFor(n int) []ordering.Box {
	boxes := make([]ordering.Box, n)
	for i := range boxes {
		boxes[i] = ordering.Box{Top: float64(i), Height: 1}
	}
	return boxes
}

func (m Model) startInput(kind inputKind, dateKey, noteID, initial string) Model {
	m.mode = modeInput
	m.inputFor = kind
	m.inputDate = dateKey
	m.inputNote = noteID
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.input.Focus()
	return m
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil

	case "enter":
		value := m.input.Value()
		m.mode = modeNormal
		m.input.Blur()
		if err := m.commitInput(value); err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, refresh()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitInput routes the committed text through the same discard-on-blank
// rules the edit surfaces use.
func (m Model) commitInput(value string) error {
	switch m.inputFor {
	case inputNewNote:
		n, err := m.svc.AddNote(m.inputDate, note.DefaultTitle, "")
		if err != nil {
			return err
		}
		_, err = m.svc.CommitNoteTitle(m.inputDate, n.ID, value)
		return err

	case inputRetitle:
		_, err := m.svc.CommitNoteTitle(m.inputDate, m.inputNote, value)
		return err

	case inputNewCard:
		c, err := m.svc.AddCard(m.inputDate, m.inputNote, note.DefaultCardTitle)
		if err != nil {
			return err
		}
		_, err = m.svc.CommitCardTitle(m.inputDate, m.inputNote, c.ID, value)
		return err
	}
	return nil
}

func (m Model) View() string {
	if len(m.days) == 0 {
		return "loading…"
	}

	colWidth := 24
	if m.width > 0 {
		if w := m.width/len(m.days) - 2; w > 16 {
			colWidth = w
		}
	}

	cols := make([]string, 0, len(m.days))
	for i, d := range m.days {
		cols = append(cols, m.viewColumn(i, d, colWidth))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	var footer string
	switch m.mode {
	case modeInput:
		footer = m.input.View()
	case modeMove:
		footer = m.th.Help.Render("←→↑↓ position  space/enter drop  esc cancel")
	default:
		footer = m.th.Help.Render("←→↑↓ select  n note  c card  e edit  d done  x delete  space move  [ ] scroll  t theme  q quit")
	}
	if m.status != "" {
		footer = m.th.Status.Render(m.status) + "\n" + footer
	}
	return board + "\n" + footer
}

func (m Model) viewColumn(i int, d app.Day, width int) string {
	header := m.th.Header
	columnStyle := m.th.Column
	if d.Today {
		header = m.th.HeaderToday
		columnStyle = m.th.ColumnToday
	}

	lines := []string{header.Render(fmt.Sprintf("%s %d", d.Weekday.String()[:3], d.Date.Day()))}

	moveHere := m.mode == modeMove && m.hoverCol == i
	slot := 0
	_, dragged, hasDragged := m.selected()

	for _, n := range d.Notes {
		if m.mode == modeMove && hasDragged && n.ID == dragged.ID {
			continue
		}
		if moveHere && slot == m.hoverSlot {
			lines = append(lines, m.th.Placeholder.Render(strings.Repeat("─", width-2)))
		}
		lines = append(lines, m.viewNote(i, slot, n, width))
		slot++
	}
	if moveHere && m.hoverSlot >= slot {
		lines = append(lines, m.th.Placeholder.Render(strings.Repeat("─", width-2)))
	}
	if len(d.Notes) == 0 && !moveHere {
		lines = append(lines, m.th.Card.Render("—"))
	}

	return columnStyle.Copy().Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) viewNote(col, row int, n note.Note, width int) string {
	style := m.th.Note
	switch {
	case n.Done:
		style = m.th.NoteDone
	case n.SeriesID != "":
		style = m.th.NoteSeries
	}
	if m.mode == modeNormal && col == m.col && row == m.row {
		style = m.th.NoteSelected
	}

	title := n.Title
	if max := width - 4; max > 0 && len(title) > max {
		title = title[:max-1] + "…"
	}
	out := style.Render("• " + title)
	for _, c := range n.Cards {
		out += "\n" + m.th.Card.Render("  - "+c.Title)
	}
	return out
}
