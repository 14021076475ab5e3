package ui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/go-logr/logr"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/ldx/pkg/sectionlist"
)

const indexBarWidth = 4 // gap + entry, right-aligned

// Model hosts the demo list widget. It is deliberately a plain consumer of
// the adapter's data-provider contract: every count, cell, and title in the
// view comes from a contract call, and every mutation travels the gesture
// path a real widget toolkit would use (CommitEdit/MoveRow), never the
// collection directly.
type Model struct {
	adapter *sectionlist.Adapter[string, *Cell]
	pool    *CellPool

	cursor    sectionlist.IndexPath
	scrollTop int

	width  int
	height int

	title       string
	theme       Theme
	noColor     bool
	keys        KeyMap
	status      string
	helpVisible bool
	quitting    bool

	log *logr.Logger
}

// Options configures a Model. Zero values fall back to sane defaults.
type Options struct {
	Title   string
	Theme   *Theme
	NoColor bool
	Keymap  string
	Width   int
	Height  int
	Logger  *logr.Logger
}

// NewModel builds the host widget around an adapter. The adapter's delegate
// (if any) is installed by the owner beforehand; the model never touches
// it.
func NewModel(adapter *sectionlist.Adapter[string, *Cell], opts Options) *Model {
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	log := opts.Logger
	if log == nil {
		discard := logr.Discard()
		log = &discard
	}
	m := &Model{
		adapter: adapter,
		pool:    NewCellPool(),
		title:   opts.Title,
		theme:   theme,
		noColor: opts.NoColor,
		keys:    KeyMapForMode(opts.Keymap),
		width:   opts.Width,
		height:  opts.Height,
		log:     log,
	}
	if m.width <= 0 {
		m.width = 80
	}
	if m.height <= 0 {
		m.height = 24
	}
	m.clampCursor()
	return m
}

// Cursor returns the row the selection currently sits on.
func (m *Model) Cursor() sectionlist.IndexPath {
	return m.cursor
}

// Pool exposes the cell pool, mainly for tests asserting recycle traffic.
func (m *Model) Pool() *CellPool {
	return m.pool
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.helpVisible {
			if key.Matches(msg, m.keys.Quit) {
				m.quitting = true
				return m, tea.Quit
			}
			m.helpVisible = false
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.helpVisible = true
		case key.Matches(msg, m.keys.Down):
			m.step(1)
		case key.Matches(msg, m.keys.Up):
			m.step(-1)
		case key.Matches(msg, m.keys.Top):
			m.jumpFirst()
		case key.Matches(msg, m.keys.Bottom):
			m.jumpLast()
		case key.Matches(msg, m.keys.Delete):
			m.deleteCursorRow()
		case key.Matches(msg, m.keys.MoveDown):
			m.moveCursorRowDown()
		case key.Matches(msg, m.keys.MoveUp):
			m.moveCursorRowUp()
		default:
			if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= 9 {
				m.jumpToIndexEntry(n - 1)
			}
		}
	}
	return m, nil
}

// rowPaths lists every row position in display order, via the contract
// counts only.
func (m *Model) rowPaths() []sectionlist.IndexPath {
	var paths []sectionlist.IndexPath
	for s := 0; s < m.adapter.NumberOfSections(); s++ {
		for r := 0; r < m.adapter.NumberOfRows(s); r++ {
			paths = append(paths, sectionlist.Path(s, r))
		}
	}
	return paths
}

func (m *Model) step(delta int) {
	paths := m.rowPaths()
	if len(paths) == 0 {
		return
	}
	idx := 0
	for i, p := range paths {
		if p == m.cursor {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(paths) {
		idx = len(paths) - 1
	}
	m.cursor = paths[idx]
	m.status = ""
}

func (m *Model) jumpFirst() {
	if paths := m.rowPaths(); len(paths) > 0 {
		m.cursor = paths[0]
	}
}

func (m *Model) jumpLast() {
	if paths := m.rowPaths(); len(paths) > 0 {
		m.cursor = paths[len(paths)-1]
	}
}

// clampCursor repositions the cursor onto the nearest existing row after a
// mutation shrank or emptied its section.
func (m *Model) clampCursor() {
	paths := m.rowPaths()
	if len(paths) == 0 {
		m.cursor = sectionlist.Path(0, 0)
		return
	}
	best := paths[0]
	for _, p := range paths {
		if p.Section < m.cursor.Section || (p.Section == m.cursor.Section && p.Row <= m.cursor.Row) {
			best = p
		}
	}
	m.cursor = best
}

func (m *Model) hasRows() bool {
	for s := 0; s < m.adapter.NumberOfSections(); s++ {
		if m.adapter.NumberOfRows(s) > 0 {
			return true
		}
	}
	return false
}

func (m *Model) deleteCursorRow() {
	if !m.hasRows() {
		return
	}
	if !m.adapter.CanEditRow(m.cursor) {
		m.status = "row is not editable"
		return
	}
	m.log.V(1).Info("delete gesture", "path", m.cursor.String())
	m.adapter.CommitEdit(sectionlist.EditDelete, m.cursor)
	m.clampCursor()
	m.status = "deleted"
}

func (m *Model) moveCursorRowDown() {
	if !m.hasRows() || !m.adapter.CanMoveRow(m.cursor) {
		return
	}
	s, r := m.cursor.Section, m.cursor.Row
	switch {
	case r+1 < m.adapter.NumberOfRows(s):
		// Same-section forward move: the destination slot shifts left after
		// the delete, so r+2 lands the row at r+1.
		m.adapter.MoveRow(m.cursor, sectionlist.Path(s, r+2))
		m.cursor.Row = r + 1
	case s+1 < m.adapter.NumberOfSections():
		m.adapter.MoveRow(m.cursor, sectionlist.Path(s+1, 0))
		m.cursor = sectionlist.Path(s+1, 0)
	default:
		return
	}
	m.status = "moved"
}

func (m *Model) moveCursorRowUp() {
	if !m.hasRows() || !m.adapter.CanMoveRow(m.cursor) {
		return
	}
	s, r := m.cursor.Section, m.cursor.Row
	switch {
	case r > 0:
		m.adapter.MoveRow(m.cursor, sectionlist.Path(s, r-1))
		m.cursor.Row = r - 1
	case s > 0:
		dest := sectionlist.Path(s-1, m.adapter.NumberOfRows(s-1))
		m.adapter.MoveRow(m.cursor, dest)
		m.cursor = dest
	default:
		return
	}
	m.status = "moved"
}

func (m *Model) jumpToIndexEntry(i int) {
	titles := m.adapter.SectionIndexTitles()
	if i < 0 || i >= len(titles) {
		return
	}
	sec := m.adapter.SectionForIndexTitle(titles[i], i)
	if sec < 0 || sec >= m.adapter.NumberOfSections() {
		return
	}
	if m.adapter.NumberOfRows(sec) == 0 {
		m.status = fmt.Sprintf("section %q is empty", titles[i])
		return
	}
	m.cursor = sectionlist.Path(sec, 0)
	m.status = ""
}

// renderedLine is one display line of the section list, tagged with the row
// it came from when it is a row line.
type renderedLine struct {
	text  string
	path  sectionlist.IndexPath
	isRow bool
}

// buildLines walks the full contract surface: counts for shape, titles for
// decoration, CellFor for content. Cells go straight back to the pool once
// their text is formatted, the same turnaround a scrolling widget has.
func (m *Model) buildLines(width int) []renderedLine {
	headerStyle := lipgloss.NewStyle()
	footerStyle := lipgloss.NewStyle()
	selectedStyle := lipgloss.NewStyle()
	if !m.noColor {
		headerStyle = headerStyle.Bold(true).Foreground(m.theme.HeaderFG)
		if m.theme.HeaderBG != nil {
			headerStyle = headerStyle.Background(m.theme.HeaderBG)
		}
		footerStyle = footerStyle.Foreground(m.theme.FooterFG)
		selectedStyle = selectedStyle.Foreground(m.theme.SelectedFG).Background(m.theme.SelectedBG)
	}

	var lines []renderedLine
	for s := 0; s < m.adapter.NumberOfSections(); s++ {
		if title, ok := m.adapter.HeaderTitle(s); ok && title != "" {
			lines = append(lines, renderedLine{text: headerStyle.Render(truncPad(title, width))})
		}
		for r := 0; r < m.adapter.NumberOfRows(s); r++ {
			path := sectionlist.Path(s, r)
			cell := m.adapter.CellFor(m.pool, path)
			cellText := cell.Text
			m.pool.Recycle(ReuseKeyItem, cell)

			var text string
			selected := path == m.cursor
			switch {
			case selected && m.noColor:
				text = truncPad("> "+cellText, width)
			case selected:
				text = selectedStyle.Render(truncPad("  "+cellText, width))
			default:
				text = truncPad("  "+cellText, width)
			}
			lines = append(lines, renderedLine{text: text, path: path, isRow: true})
		}
		if title, ok := m.adapter.FooterTitle(s); ok && title != "" {
			lines = append(lines, renderedLine{text: footerStyle.Render(truncPad("  "+title, width))})
		}
	}
	return lines
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.Snapshot())
	v.AltScreen = true
	return v
}

// Snapshot renders the current frame to a plain string. The TUI wraps it in
// a tea.View; tests and the --snapshot flag consume it directly.
func (m *Model) Snapshot() string {
	contentWidth := m.width - indexBarWidth
	if contentWidth < 10 {
		contentWidth = m.width
	}
	contentHeight := m.height - 2 // title bar + status bar
	if contentHeight < 1 {
		contentHeight = 1
	}

	var body string
	if m.helpVisible {
		body = m.helpView(contentHeight)
	} else {
		lines := m.buildLines(contentWidth)
		m.ensureCursorVisible(lines, contentHeight)
		end := m.scrollTop + contentHeight
		if end > len(lines) {
			end = len(lines)
		}
		visible := make([]string, 0, contentHeight)
		for _, ln := range lines[m.scrollTop:end] {
			visible = append(visible, ln.text)
		}
		for len(visible) < contentHeight {
			visible = append(visible, "")
		}
		content := strings.Join(visible, "\n")
		if bar := m.indexBarView(contentHeight); bar != "" {
			content = lipgloss.JoinHorizontal(lipgloss.Top, content, bar)
		}
		body = content
	}

	return m.titleView() + "\n" + body + "\n" + m.statusView()
}

func (m *Model) ensureCursorVisible(lines []renderedLine, contentHeight int) {
	cursorLine := 0
	for i, ln := range lines {
		if ln.isRow && ln.path == m.cursor {
			cursorLine = i
			break
		}
	}
	if cursorLine < m.scrollTop {
		m.scrollTop = cursorLine
	}
	if cursorLine >= m.scrollTop+contentHeight {
		m.scrollTop = cursorLine - contentHeight + 1
	}
	if m.scrollTop < 0 {
		m.scrollTop = 0
	}
}

func (m *Model) titleView() string {
	rows := 0
	sections := m.adapter.NumberOfSections()
	for s := 0; s < sections; s++ {
		rows += m.adapter.NumberOfRows(s)
	}
	title := m.title
	if title == "" {
		title = "list"
	}
	text := fmt.Sprintf(" %s — %d sections, %d rows", title, sections, rows)
	if m.noColor {
		return truncPad(text, m.width)
	}
	return lipgloss.NewStyle().Bold(true).Foreground(m.theme.TitleFG).Render(truncPad(text, m.width))
}

func (m *Model) statusView() string {
	allocated, reused := m.pool.Stats()
	left := fmt.Sprintf(" %s", m.cursor)
	if m.status != "" {
		left += "  " + m.status
	}
	right := fmt.Sprintf("cells %d/%d  ? help  q quit ", reused, allocated)
	gap := m.width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	text := left + strings.Repeat(" ", gap) + right
	if m.noColor {
		return truncPad(text, m.width)
	}
	return lipgloss.NewStyle().Foreground(m.theme.StatusFG).Render(truncPad(text, m.width))
}

// indexBarView renders the section index column, one entry per section
// index title, numbered for the digit-jump keys.
func (m *Model) indexBarView(contentHeight int) string {
	titles := m.adapter.SectionIndexTitles()
	if len(titles) == 0 {
		return ""
	}
	entryStyle := lipgloss.NewStyle()
	activeStyle := lipgloss.NewStyle()
	if !m.noColor {
		entryStyle = entryStyle.Foreground(m.theme.IndexFG)
		activeStyle = activeStyle.Bold(true).Foreground(m.theme.IndexActiveFG)
	}
	lines := make([]string, 0, contentHeight)
	for i, title := range titles {
		if i >= contentHeight {
			break
		}
		entry := fmt.Sprintf(" %d %s", i+1, title)
		sec := m.adapter.SectionForIndexTitle(title, i)
		if sec == m.cursor.Section {
			lines = append(lines, activeStyle.Render(entry))
		} else {
			lines = append(lines, entryStyle.Render(entry))
		}
	}
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m *Model) helpView(contentHeight int) string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Top, m.keys.Bottom,
		m.keys.Delete, m.keys.MoveDown, m.keys.MoveUp,
		m.keys.Help, m.keys.Quit,
	}
	lines := []string{" Keys", ""}
	for _, b := range bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("  %-10s %s", h.Key, h.Desc))
	}
	lines = append(lines, "", "  1-9        jump to section")
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}
	return strings.Join(lines[:contentHeight], "\n")
}

// truncPad fits text to an exact display width, truncating with an
// ellipsis or padding with spaces.
func truncPad(text string, width int) string {
	if width <= 0 {
		return ""
	}
	text = runewidth.Truncate(text, width, "…")
	if pad := width - runewidth.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}
