// Package nav applies reader commands to the current position and book
// menu, reloading the verse store when the book changes.
package nav

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"unicode"

	"verse-tui/internal/bible"
	"verse-tui/internal/store"
)

// ErrQuit is returned for commands applied after Quit.
var ErrQuit = errors.New("reader has quit")

// Mode is the menu state.
type Mode int

const (
	Reading Mode = iota
	BookMenuOpen
)

func (m Mode) String() string {
	if m == BookMenuOpen {
		return "book-menu"
	}
	return "reading"
}

// State is the reader position over a VerseStore.
type State struct {
	store  *store.VerseStore
	logger *slog.Logger

	chapter int
	scroll  int
	mode    Mode
	input   []rune
	quit    bool
}

// New starts in reading mode at chapter 1 of whatever book vs holds.
func New(vs *store.VerseStore, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}
	return &State{
		store:   vs,
		logger:  logger.With("component", "nav"),
		chapter: 1,
	}
}

// Apply runs one command to completion. The only errors are ErrQuit and a
// *store.LoadError from a book switch.
func (s *State) Apply(ctx context.Context, cmd Command) error {
	if s.quit {
		return ErrQuit
	}

	switch cmd.Kind {
	case ToggleMenu:
		if s.mode == Reading {
			s.mode = BookMenuOpen
		} else {
			s.mode = Reading
		}
		s.input = s.input[:0]
	case ChapterPrev:
		if s.mode == Reading && s.chapter > 1 {
			s.chapter--
		}
	case ChapterNext:
		if s.mode == Reading && s.chapter < s.store.Book().MaxChapter() {
			s.chapter++
		}
	case ScrollUp:
		if s.scroll > 0 {
			s.scroll--
		}
	case ScrollDown:
		s.scroll++
	case AppendMenuChar:
		if s.mode == BookMenuOpen {
			return s.appendMenuChar(ctx, cmd.Char)
		}
	case Quit:
		s.quit = true
	}
	return nil
}

func (s *State) appendMenuChar(ctx context.Context, c rune) error {
	if len(s.input) >= bible.MaxPrefixLen {
		return nil
	}
	s.input = append(s.input, unicode.ToLower(c))

	book, ok := bible.Resolve(string(s.input))
	if !ok {
		return nil
	}
	s.logger.Debug("book prefix resolved", "input", string(s.input), "book", book)

	prevChapter, prevScroll := s.chapter, s.scroll
	s.chapter, s.scroll = 1, 0
	s.mode = Reading
	s.input = s.input[:0]

	if err := s.store.Load(ctx, book); err != nil {
		s.chapter, s.scroll = prevChapter, prevScroll
		return err
	}
	return nil
}

func (s *State) Book() bible.Book { return s.store.Book() }
func (s *State) Chapter() int     { return s.chapter }
func (s *State) Scroll() int      { return s.scroll }
func (s *State) Mode() Mode       { return s.mode }
func (s *State) Input() string    { return string(s.input) }
func (s *State) Done() bool       { return s.quit }

// MenuEntry is one book in the menu list.
type MenuEntry struct {
	Book   bible.Book
	Name   string
	Prefix string
}

// Frame is everything the presentation layer needs to draw one screen.
type Frame struct {
	BookName  string
	Chapter   int
	Verses    []string
	Scroll    int
	MenuOpen  bool
	MenuInput string
	Menu      []MenuEntry
}

var menu = func() []MenuEntry {
	books := bible.Books()
	entries := make([]MenuEntry, len(books))
	for i, b := range books {
		entries[i] = MenuEntry{Book: b, Name: b.Name(), Prefix: b.Prefix()}
	}
	return entries
}()

// Frame snapshots the current state.
func (s *State) Frame() Frame {
	verses, _ := s.store.Chapter(s.chapter)
	return Frame{
		BookName:  s.store.Book().Name(),
		Chapter:   s.chapter,
		Verses:    verses,
		Scroll:    s.scroll,
		MenuOpen:  s.mode == BookMenuOpen,
		MenuInput: string(s.input),
		Menu:      slices.Clone(menu),
	}
}
