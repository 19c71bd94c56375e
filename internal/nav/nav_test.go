package nav

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"verse-tui/internal/bible"
	"verse-tui/internal/source"
	"verse-tui/internal/store"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeSource struct {
	broken map[bible.Book]bool
}

func (f *fakeSource) Chapter(ctx context.Context, book bible.Book, chapter int) ([]string, error) {
	if f.broken[book] {
		return nil, source.ErrUnavailable
	}
	return []string{fmt.Sprintf("%s %d:1", book, chapter)}, nil
}

func (f *fakeSource) Close() error { return nil }

func newState(t *testing.T, src *fakeSource) *State {
	t.Helper()
	vs, err := store.New(context.Background(), src, bible.Genesis, discard)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	return New(vs, discard)
}

func apply(t *testing.T, s *State, cmds ...Command) {
	t.Helper()
	for _, c := range cmds {
		if err := s.Apply(context.Background(), c); err != nil {
			t.Fatalf("Apply(%s): %v", c.Kind, err)
		}
	}
}

func typeString(t *testing.T, s *State, input string) error {
	t.Helper()
	var err error
	for _, c := range input {
		if err = s.Apply(context.Background(), Type(c)); err != nil {
			return err
		}
	}
	return nil
}

func TestNew_InitialState(t *testing.T) {
	s := newState(t, &fakeSource{})

	if s.Book() != bible.Genesis || s.Chapter() != 1 || s.Scroll() != 0 {
		t.Errorf("expected Genesis 1 at scroll 0, got %s %d at %d", s.Book(), s.Chapter(), s.Scroll())
	}
	if s.Mode() != Reading || s.Input() != "" || s.Done() {
		t.Errorf("expected reading mode with empty input, got %s %q", s.Mode(), s.Input())
	}
}

func TestChapter_Bounds(t *testing.T) {
	s := newState(t, &fakeSource{})

	apply(t, s, Do(ChapterPrev))
	if s.Chapter() != 1 {
		t.Errorf("expected ChapterPrev at 1 to stay at 1, got %d", s.Chapter())
	}

	for i := 0; i < 60; i++ {
		apply(t, s, Do(ChapterNext))
	}
	if s.Chapter() != bible.Genesis.MaxChapter() {
		t.Errorf("expected to stop at %d, got %d", bible.Genesis.MaxChapter(), s.Chapter())
	}

	apply(t, s, Do(ChapterPrev))
	if s.Chapter() != 49 {
		t.Errorf("expected 49, got %d", s.Chapter())
	}
}

func TestScroll(t *testing.T) {
	s := newState(t, &fakeSource{})

	apply(t, s, Do(ScrollUp))
	if s.Scroll() != 0 {
		t.Errorf("expected scroll to floor at 0, got %d", s.Scroll())
	}

	apply(t, s, Do(ScrollDown), Do(ScrollDown), Do(ScrollDown), Do(ScrollUp))
	if s.Scroll() != 2 {
		t.Errorf("expected scroll 2, got %d", s.Scroll())
	}
}

func TestToggleMenu(t *testing.T) {
	s := newState(t, &fakeSource{})
	apply(t, s, Do(ChapterNext), Do(ScrollDown))

	apply(t, s, Do(ToggleMenu))
	if s.Mode() != BookMenuOpen {
		t.Fatalf("expected menu open, got %s", s.Mode())
	}

	apply(t, s, Type('j'), Type('o'))
	if s.Input() != "jo" {
		t.Errorf("expected input jo, got %q", s.Input())
	}

	apply(t, s, Do(ToggleMenu))
	if s.Mode() != Reading || s.Input() != "" {
		t.Errorf("expected reading mode with cleared input, got %s %q", s.Mode(), s.Input())
	}
	if s.Chapter() != 2 || s.Scroll() != 1 {
		t.Errorf("toggle moved position to %d/%d", s.Chapter(), s.Scroll())
	}

	apply(t, s, Do(ToggleMenu))
	if s.Input() != "" {
		t.Errorf("expected reopened menu to start empty, got %q", s.Input())
	}
}

func TestModeRestrictedCommands(t *testing.T) {
	s := newState(t, &fakeSource{})

	apply(t, s, Type('g'), Type('e'))
	if s.Input() != "" || s.Book() != bible.Genesis {
		t.Errorf("typing while reading should do nothing, got %q", s.Input())
	}

	apply(t, s, Do(ToggleMenu), Do(ChapterNext))
	if s.Chapter() != 1 {
		t.Errorf("ChapterNext in the menu should do nothing, got %d", s.Chapter())
	}
}

func TestSwitchBook_JobScenario(t *testing.T) {
	s := newState(t, &fakeSource{})
	apply(t, s, Do(ChapterNext), Do(ChapterNext), Do(ScrollDown), Do(ToggleMenu))

	apply(t, s, Type('j'))
	if s.Book() != bible.Genesis || s.Mode() != BookMenuOpen {
		t.Fatalf("j should not resolve")
	}
	apply(t, s, Type('o'))
	if s.Book() != bible.Genesis || s.Mode() != BookMenuOpen {
		t.Fatalf("jo should not resolve")
	}
	apply(t, s, Type('b'))

	if s.Book() != bible.Job {
		t.Errorf("expected Job, got %s", s.Book())
	}
	if s.Chapter() != 1 || s.Scroll() != 0 {
		t.Errorf("expected Job 1 at scroll 0, got %d/%d", s.Chapter(), s.Scroll())
	}
	if s.Mode() != Reading || s.Input() != "" {
		t.Errorf("expected menu closed and input cleared, got %s %q", s.Mode(), s.Input())
	}

	f := s.Frame()
	if f.BookName != "Job" || len(f.Verses) != 1 || f.Verses[0] != "Job 1:1" {
		t.Errorf("unexpected frame %+v", f)
	}
}

func TestSwitchBook_EveryPrefix(t *testing.T) {
	s := newState(t, &fakeSource{})

	for _, b := range bible.Books() {
		apply(t, s, Do(ScrollDown), Do(ToggleMenu))
		if err := typeString(t, s, b.Prefix()); err != nil {
			t.Fatalf("%s: %v", b, err)
		}
		if s.Book() != b || s.Chapter() != 1 || s.Scroll() != 0 || s.Mode() != Reading {
			t.Errorf("%q: expected %s 1, got %s %d (scroll %d, %s)",
				b.Prefix(), b, s.Book(), s.Chapter(), s.Scroll(), s.Mode())
		}
	}
}

func TestSwitchBook_UppercaseInput(t *testing.T) {
	s := newState(t, &fakeSource{})
	apply(t, s, Do(ToggleMenu))
	if err := typeString(t, s, "RE"); err != nil {
		t.Fatal(err)
	}
	if s.Book() != bible.Revelation {
		t.Errorf("expected Revelation, got %s", s.Book())
	}
}

func TestMenuInput_Bounded(t *testing.T) {
	s := newState(t, &fakeSource{})
	apply(t, s, Do(ToggleMenu))

	if err := typeString(t, s, "xxxxxxxxxx"); err != nil {
		t.Fatal(err)
	}
	if len(s.Input()) != bible.MaxPrefixLen {
		t.Errorf("expected input capped at %d, got %q", bible.MaxPrefixLen, s.Input())
	}
}

func TestSwitchBook_LoadFailure(t *testing.T) {
	s := newState(t, &fakeSource{broken: map[bible.Book]bool{bible.Exodus: true}})
	apply(t, s, Do(ChapterNext), Do(ChapterNext), Do(ScrollDown), Do(ToggleMenu))

	err := typeString(t, s, "ex")

	var loadErr *store.LoadError
	if !errors.As(err, &loadErr) || loadErr.Book != bible.Exodus {
		t.Fatalf("expected a LoadError for Exodus, got %v", err)
	}
	if !errors.Is(err, source.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable in chain, got %v", err)
	}
	if s.Book() != bible.Genesis || s.Chapter() != 3 || s.Scroll() != 1 {
		t.Errorf("expected Genesis 3 at scroll 1, got %s %d at %d", s.Book(), s.Chapter(), s.Scroll())
	}
	if s.Mode() != Reading || s.Input() != "" {
		t.Errorf("expected menu closed after failure, got %s %q", s.Mode(), s.Input())
	}
	if v := s.Frame().Verses; len(v) != 1 || v[0] != "Genesis 3:1" {
		t.Errorf("expected Genesis 3 still readable, got %q", v)
	}
}

func TestQuit(t *testing.T) {
	s := newState(t, &fakeSource{})
	apply(t, s, Do(Quit))

	if !s.Done() {
		t.Fatal("expected Done after Quit")
	}
	if err := s.Apply(context.Background(), Do(ChapterNext)); !errors.Is(err, ErrQuit) {
		t.Errorf("expected ErrQuit, got %v", err)
	}
	if s.Chapter() != 1 {
		t.Errorf("command after quit changed chapter to %d", s.Chapter())
	}
}

func TestFrame(t *testing.T) {
	s := newState(t, &fakeSource{})
	apply(t, s, Do(ChapterNext), Do(ScrollDown), Do(ToggleMenu), Type('p'))

	f := s.Frame()
	if f.BookName != "Genesis" || f.Chapter != 2 || f.Scroll != 1 {
		t.Errorf("unexpected position in frame: %+v", f)
	}
	if !f.MenuOpen || f.MenuInput != "p" {
		t.Errorf("expected open menu with input p, got %v %q", f.MenuOpen, f.MenuInput)
	}
	if len(f.Menu) != bible.Count || f.Menu[0].Prefix != "ge" || f.Menu[65].Name != "Revelation" {
		t.Errorf("unexpected menu list")
	}
}

func TestFrame_MenuIsACopy(t *testing.T) {
	a := newState(t, &fakeSource{})
	b := newState(t, &fakeSource{})

	f := a.Frame()
	f.Menu[0].Name = "changed"
	f.Menu[0].Prefix = "zz"

	for _, s := range []*State{a, b} {
		if got := s.Frame().Menu[0]; got.Name != "Genesis" || got.Prefix != "ge" {
			t.Errorf("expected Genesis/ge, got %s/%s", got.Name, got.Prefix)
		}
	}
}

func TestCommandKind_String(t *testing.T) {
	if AppendMenuChar.String() != "append-menu-char" {
		t.Errorf("unexpected name %q", AppendMenuChar.String())
	}
	if CommandKind(42).String() != "command(42)" {
		t.Errorf("unexpected name %q", CommandKind(42).String())
	}
}
