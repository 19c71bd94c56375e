package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"verse-tui/internal/nav"
	"verse-tui/internal/theme"
)

// chrome is the number of lines around the viewport: the title, two border
// lines, the help line and the error line.
const chrome = 5

// ThemeMsg switches the palette while running.
type ThemeMsg struct{ Key string }

type Options struct {
	Theme string
	// Label is shown next to the title, e.g. the translation name.
	Label string
	// Timeout bounds each command, including a whole book load.
	Timeout time.Duration
	Logger  *slog.Logger
}

type Model struct {
	state    *nav.State
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	styles   theme.Styles
	label    string
	timeout  time.Duration
	logger   *slog.Logger
	width    int
	height   int
	ready    bool
	err      error
}

func NewModel(state *nav.State, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	m := Model{
		state:   state,
		keys:    defaultKeyMap(),
		help:    help.New(),
		label:   opts.Label,
		timeout: timeout,
		logger:  logger.With("component", "ui"),
	}
	m.setTheme(opts.Theme)
	return m
}

func (m *Model) setTheme(key string) {
	t := theme.Get(key)
	m.styles = t.Styles()
	m.help.Styles.ShortKey = m.styles.Help.Bold(true)
	m.help.Styles.ShortDesc = m.styles.Help
	m.help.Styles.ShortSeparator = m.styles.Help
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.run(m.commands(msg))

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.run([]nav.Command{nav.Do(nav.ScrollUp)})
		case tea.MouseButtonWheelDown:
			return m.run([]nav.Command{nav.Do(nav.ScrollDown)})
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		if !m.ready {
			m.viewport = viewport.New(m.bodyWidth(), m.bodyHeight())
			m.ready = true
		} else {
			m.viewport.Width = m.bodyWidth()
			m.viewport.Height = m.bodyHeight()
		}
		m.refresh()

	case ThemeMsg:
		m.setTheme(msg.Key)
		m.refresh()
	}

	return m, nil
}

// run applies cmds in order, stopping at the first failure, which is kept
// for the error line until the next input.
func (m Model) run(cmds []nav.Command) (tea.Model, tea.Cmd) {
	if len(cmds) == 0 {
		return m, nil
	}
	m.err = nil
	for _, c := range cmds {
		if err := m.apply(c); err != nil {
			m.err = err
			break
		}
	}
	if m.state.Done() {
		return m, tea.Quit
	}
	m.refresh()
	return m, nil
}

// commands translates a key press into reader commands for the current mode.
func (m Model) commands(msg tea.KeyMsg) []nav.Command {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []nav.Command{nav.Do(nav.Quit)}
	case key.Matches(msg, m.keys.Menu):
		return []nav.Command{nav.Do(nav.ToggleMenu)}
	}

	if m.state.Mode() == nav.BookMenuOpen {
		switch msg.Type {
		case tea.KeyEsc:
			return []nav.Command{nav.Do(nav.ToggleMenu)}
		case tea.KeyUp:
			return []nav.Command{nav.Do(nav.ScrollUp)}
		case tea.KeyDown:
			return []nav.Command{nav.Do(nav.ScrollDown)}
		case tea.KeyRunes:
			cmds := make([]nav.Command, 0, len(msg.Runes))
			for _, r := range msg.Runes {
				cmds = append(cmds, nav.Type(r))
			}
			return cmds
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		return []nav.Command{nav.Do(nav.ChapterPrev)}
	case key.Matches(msg, m.keys.Next):
		return []nav.Command{nav.Do(nav.ChapterNext)}
	case key.Matches(msg, m.keys.Up):
		return []nav.Command{nav.Do(nav.ScrollUp)}
	case key.Matches(msg, m.keys.Down):
		return []nav.Command{nav.Do(nav.ScrollDown)}
	}
	return nil
}

// apply runs one command with the load timeout. Book loads block the event
// loop for their duration.
func (m Model) apply(c nav.Command) error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	err := m.state.Apply(ctx, c)
	if err != nil && !errors.Is(err, nav.ErrQuit) {
		m.logger.Warn("command failed", "command", c.Kind, "error", err)
		return err
	}
	return nil
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	f := m.state.Frame()
	m.viewport.SetContent(m.formatChapter(f.Verses))
	m.viewport.SetYOffset(f.Scroll)
}

func (m Model) bodyWidth() int {
	return max(m.width-2, 1)
}

func (m Model) bodyHeight() int {
	return max(m.height-chrome, 1)
}
