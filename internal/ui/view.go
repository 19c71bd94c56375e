package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"verse-tui/internal/bible"
	"verse-tui/internal/nav"
)

func (m Model) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	f := m.state.Frame()

	title := fmt.Sprintf("%s %d", f.BookName, f.Chapter)
	if m.label != "" {
		title += " · " + m.label
	}

	var body string
	if f.MenuOpen {
		body = lipgloss.Place(m.bodyWidth(), m.bodyHeight(), lipgloss.Center, lipgloss.Center, m.menuView(f))
	} else {
		body = m.viewport.View()
	}

	framed := m.styles.Frame.
		Width(m.bodyWidth()).
		Render(body)
	header := lipgloss.PlaceHorizontal(m.width, lipgloss.Right, m.styles.Title.Render(title))

	var helpLine string
	if f.MenuOpen {
		helpLine = m.help.View(menuKeyMap{m.keys})
	} else {
		helpLine = m.help.View(m.keys)
	}

	var errLine string
	if m.err != nil {
		errLine = m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, framed, helpLine, errLine)
}

func (m Model) formatChapter(verses []string) string {
	textWidth := max(m.bodyWidth()-5, 10)
	textStyle := m.styles.Text.Width(textWidth)

	var sb strings.Builder
	for i, v := range verses {
		num := m.styles.VerseNumber.Render(fmt.Sprintf("%3d ", i+1))
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, num, textStyle.Render(v)))
		sb.WriteString("\n")
	}
	return sb.String()
}

// menuView lists every book with its abbreviation highlighted, one paragraph
// per testament, above the input buffer.
func (m Model) menuView(f nav.Frame) string {
	width := max(m.bodyWidth()*2/3, 20)

	var ot, nt []string
	for _, e := range f.Menu {
		head, tail := splitPrefix(e.Name, e.Prefix)
		item := m.styles.Prefix.Render(head) + m.styles.MenuText.Render(tail)
		if e.Book.Testament() == bible.NewTestament {
			nt = append(nt, item)
		} else {
			ot = append(ot, item)
		}
	}

	list := lipgloss.NewStyle().Width(width)
	sep := m.styles.MenuText.Render("  ")
	input := m.styles.Input.Render("> " + f.MenuInput + "_")

	return m.styles.Menu.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.styles.MenuTitle.Render("Books"),
		list.Render(strings.Join(ot, sep)),
		"",
		list.Render(strings.Join(nt, sep)),
		"",
		input,
	))
}

// splitPrefix cuts name after the characters the abbreviation covers.
// Spaces in the name are not typed, so "1 Samuel" with "1s" splits into
// "1 S" and "amuel".
func splitPrefix(name, prefix string) (string, string) {
	typed := 0
	want := len([]rune(prefix))
	runes := []rune(name)
	for i, r := range runes {
		if typed == want {
			return string(runes[:i]), string(runes[i:])
		}
		if r != ' ' {
			typed++
		}
	}
	return name, ""
}
