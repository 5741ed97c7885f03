package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kungfusheep/tableview"
	"github.com/kungfusheep/tableview/termhost"
)

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")).
			Padding(0, 1)
)

type model struct {
	view    *tableview.View
	surface *termhost.Surface
	feed    *feed
	keys    keyMap
	input   textinput.Model
	editing bool
	width   int
	height  int
	err     error
}

func newModel(cfg tableview.Config, f *feed, opts ...tableview.Option) *model {
	m := &model{
		surface: termhost.NewSurface(0, 0),
		feed:    f,
		keys:    defaultKeyMap(),
		input:   textinput.New(),
	}
	m.input.Prompt = "/"
	m.input.Placeholder = "filter"
	opts = append([]tableview.Option{
		tableview.WithConfig(cfg),
		tableview.WithContainer(m.surface),
		tableview.WithDataSource(f),
		tableview.WithSizeProvider(f),
		tableview.WithGridSizeProvider(f),
	}, opts...)
	m.view = tableview.New(opts...)

	header := termhost.NewLabel(f.styles[headerID])
	header.SetFrame(tableview.Frame{Height: 1, AnchorY: 1})
	m.view.RegisterTemplate(header, headerID)
	message := termhost.NewLabel(f.styles[messageID])
	message.SetFrame(tableview.Frame{Height: 1, AnchorY: 1})
	m.view.RegisterTemplate(message, messageID)

	// an expanded message pushes everything after it along
	m.view.OnSizeChanged(func(tableview.SizeChangedEvent) {
		m.err = m.view.FixPositions()
	})
	return m
}

// resize fits the surface to a terminal of the given size, keeping one row
// for the status line, and reloads so every label picks up the new width.
func (m *model) resize(width, height int) error {
	prev, _ := m.surface.Size()
	m.width, m.height = width, height
	m.surface.Resize(width, max(height-1, 0))

	wrap, cross := width, 0
	if m.surface.Scrollbar && m.view.Config().Orientation == tableview.Vertical {
		wrap--
	}
	if m.view.Config().Orientation == tableview.Horizontal && !m.view.Config().Wrap {
		cross = max(height-2, 1)
	}
	m.feed.resize(max(wrap, 1), cross)

	if prev == 0 {
		return m.view.Reload(len(m.feed.items))
	}
	return m.view.ReloadKeepingOffset(len(m.feed.items))
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.err = m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if m.editing {
			return m, m.handleInput(msg)
		}
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Filter) {
			m.editing = true
			m.input.SetValue(m.feed.filter)
			return m, m.input.Focus()
		}
		m.err = m.handleKey(msg)
	}
	return m, nil
}

// handleInput edits the filter query. Accepting it reloads the view with the
// matching items from the top.
func (m *model) handleInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Accept):
		m.editing = false
		m.input.Blur()
		m.feed.setFilter(m.input.Value())
		m.surface.SetScrollOffset(tableview.Vec2{})
		m.err = m.view.Reload(len(m.feed.items))
		return nil
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.input.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *model) handleKey(msg tea.KeyMsg) error {
	_, page := m.surface.Size()
	if m.view.Config().Orientation == tableview.Horizontal {
		page, _ = m.surface.Size()
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		m.scroll(-1)
	case key.Matches(msg, m.keys.Forward):
		m.scroll(1)
	case key.Matches(msg, m.keys.PageBack):
		m.scroll(-float64(page))
	case key.Matches(msg, m.keys.PageFwd):
		m.scroll(float64(page))
	case key.Matches(msg, m.keys.First):
		return m.view.ScrollToIndex(0)
	case key.Matches(msg, m.keys.Last):
		return m.view.ScrollToIndex(m.view.Count() - 1)
	case key.Matches(msg, m.keys.Delete):
		i, ok := m.firstVisible()
		if !ok {
			return nil
		}
		m.feed.delete(i)
		return m.view.DeleteIndexes(i)
	case key.Matches(msg, m.keys.Insert):
		i, _ := m.firstVisible()
		m.feed.insert(i)
		return m.view.InsertIndexes(i)
	case key.Matches(msg, m.keys.Grow):
		i, ok := m.firstVisible()
		if !ok {
			return nil
		}
		m.feed.expand(i)
		if c := m.view.Cell(i); c != nil {
			m.feed.ConfigureCell(c, i)
			c.NotifySizeChanged(tableview.Size{Width: float64(m.feed.width), Height: m.feed.SizeAt(i)})
		}
	case key.Matches(msg, m.keys.Reload):
		return m.view.Reload(len(m.feed.items))
	default:
		return nil
	}
	return m.view.Layout()
}

// scroll moves along the main axis, toward the end of the list for positive
// deltas whichever direction the list grows in.
func (m *model) scroll(delta float64) {
	cfg := m.view.Config()
	if cfg.Orientation == tableview.Horizontal {
		if cfg.Horizontal == tableview.RightToLeft {
			delta = -delta
		}
		m.surface.ScrollBy(delta, 0)
		return
	}
	if cfg.Vertical == tableview.BottomToTop {
		delta = -delta
	}
	m.surface.ScrollBy(0, delta)
}

func (m *model) firstVisible() (int, bool) {
	live := m.view.LiveIndexes()
	if len(live) == 0 {
		return 0, false
	}
	return live[0], true
}

func (m *model) View() string {
	w, h := m.surface.Size()
	if w <= 0 || h <= 0 {
		return ""
	}
	buf := termhost.GetBuffer(w, h)
	defer termhost.PutBuffer(buf)
	m.surface.Render(buf)

	var sb strings.Builder
	if err := termhost.Encode(&sb, buf); err != nil {
		return err.Error()
	}
	sb.WriteString("\n")
	sb.WriteString(m.status())
	return sb.String()
}

func (m *model) status() string {
	if m.editing {
		m.input.Width = max(m.width-2, 1)
		return m.input.View()
	}
	if m.err != nil {
		return errStyle.Width(m.width).Render(termhost.Truncate(m.err.Error(), max(m.width-2, 0), "…"))
	}
	live := m.view.LiveIndexes()
	span := "none"
	if len(live) > 0 {
		span = fmt.Sprintf("%d-%d", live[0], live[len(live)-1])
	}
	pass := m.view.LastPass()
	pool := m.view.Pool()
	text := fmt.Sprintf("%s  items %s of %d  live %d  pooled %d/%d  pass +%d -%d",
		m.view.Config().Kind(), span, m.view.Count(), len(live),
		pool.Pooled(messageID), pool.Created(messageID), pass.Filled, pass.Recycled)
	if m.feed.filter != "" {
		text += "  /" + m.feed.filter
	}
	return statusStyle.Width(m.width).Render(termhost.Truncate(text, max(m.width-2, 0), "…"))
}
