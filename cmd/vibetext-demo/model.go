package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/flouris/caret"
	"github.com/iw2rmb/flouris/core"
	"github.com/iw2rmb/flouris/dom"
	"github.com/iw2rmb/flouris/domtest"
	"github.com/iw2rmb/flouris/editor"
)

// model is the demo's Bubble Tea component: it owns the document, its
// layout host, an editor.Handle over both, and the viewport that scrolls
// to follow the caret.
type model struct {
	root dom.Node
	host *domtest.Host
	cfg  core.Config
	h    *editor.Handle
	km   editor.KeyMap
	st   Style

	viewport      viewport.Model
	showInspector bool
	focused       bool
}

// demoHostConfig uses CellWidth == LineHeight == 1 so that layout rects
// land directly on rendered terminal rows/columns; AtomicWidth matches
// chipGlyph's rune length.
func demoHostConfig() domtest.Config {
	return domtest.Config{
		CellWidth:   1,
		LineHeight:  1,
		AtomicWidth: float64(len([]rune(chipGlyph))),
		Block: map[string]bool{
			"P": true,
		},
	}
}

func newModel(r *lipgloss.Renderer) model {
	root := buildDocument()
	cfg := core.DefaultConfig()
	// Keep atomic caret rects one row tall so they map onto terminal rows.
	cfg.MinCursorHeight = demoHostConfig().LineHeight
	host := domtest.NewHost(root, demoHostConfig(), cfg.Classify)

	h := &editor.Handle{}
	if err := editor.Attach(h, root, host, domtest.Mutator{}, cfg); err != nil {
		panic(err)
	}
	h.Modify(caret.ModifyMove, dom.Backward, caret.UnitDocumentBoundary)

	return model{
		root:     root,
		host:     host,
		cfg:      cfg,
		h:        h,
		km:       editor.DefaultKeyMap(),
		st:       DefaultStyle(r),
		viewport: viewport.New(0, 0),
		focused:  true,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 2 // status bar + a blank line
		m.syncContent()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.showInspector = !m.showInspector
			return m, nil
		}
		if spec, ok := m.km.Match(func(b key.Binding) bool { return key.Matches(msg, b) }); ok {
			editor.Dispatch(m.h, spec)
			m.followCaret()
			m.syncContent()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// followCaret scrolls the viewport so the current focus's rect stays
// visible. It nudges the Y-offset just enough to bring the rect into
// view rather than re-centering on every move.
func (m *model) followCaret() {
	sel := m.h.GetSelection()
	rects := m.h.RectsForPosition(sel.Focus)
	if len(rects) == 0 {
		return
	}
	row := int(rects[0].Y)
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	if row < m.viewport.YOffset {
		m.viewport.SetYOffset(row)
	} else if row >= m.viewport.YOffset+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

func (m *model) syncContent() {
	m.viewport.SetContent(m.renderDocument())
}

// renderDocument lays out the document's text and paints the current
// selection and caret on top of it.
func (m model) renderDocument() string {
	rows := demoLayout(m.root, m.cfg.Classify, m.host)

	var spans []styleSpan
	sel := m.h.GetSelection()
	if !sel.IsCollapsed() {
		spans = append(spans, rectSpans(m.h.RectsForSelection(), func(s string) string { return m.st.Selection.Render(s) })...)
	}
	spans = append(spans, rectSpans(m.h.RectsForPosition(sel.Focus), func(s string) string { return m.st.Caret.Render(s) })...)

	return applySpans(rows, spans)
}

func (m model) View() string {
	body := m.viewport.View()
	if m.showInspector {
		desc := selectionDescription(m.root, m.cfg.Classify, m.h.GetSelection())
		popup := m.st.Inspector.Render(desc)
		sel := m.h.GetSelection()
		rects := m.h.RectsForPosition(sel.Focus)
		x, y := 1, 1
		if len(rects) > 0 {
			x = int(rects[0].X) + 1
			y = int(rects[0].Y) + 1
		}
		body = overlay.Composite(popup, body, overlay.Left, overlay.Top, x, y)
	}

	status := m.st.StatusBar.Render(fmt.Sprintf(
		"%s  |  tab: inspector  ctrl+c: quit",
		selectionDescription(m.root, m.cfg.Classify, m.h.GetSelection()),
	))
	return lipgloss.JoinVertical(lipgloss.Left, body, status)
}
