// Package store caches the full text of the book being read.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"verse-tui/internal/bible"
	"verse-tui/internal/source"
)

// LoadError reports which chapter stopped a book load.
type LoadError struct {
	Book    bible.Book
	Chapter int
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s %d: %v", e.Book, e.Chapter, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// VerseStore holds every chapter of exactly one book. A load either replaces
// the whole cache or leaves the previous one in place.
type VerseStore struct {
	src    source.TextSource
	logger *slog.Logger

	book     bible.Book
	chapters [][]string // chapters[n-1] is chapter n
}

// New creates a store and loads book into it.
func New(ctx context.Context, src source.TextSource, book bible.Book, logger *slog.Logger) (*VerseStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &VerseStore{src: src, logger: logger.With("component", "store")}
	if err := s.Load(ctx, book); err != nil {
		return nil, err
	}
	return s, nil
}

// Load fetches every chapter of book and installs them as the cache. On
// error the store keeps its previous book and chapters.
func (s *VerseStore) Load(ctx context.Context, book bible.Book) error {
	start := time.Now()
	s.logger.Debug("loading book", "book", book, "chapters", book.MaxChapter())

	chapters := make([][]string, book.MaxChapter())
	for n := 1; n <= book.MaxChapter(); n++ {
		verses, err := s.src.Chapter(ctx, book, n)
		if err != nil {
			s.logger.Warn("book load failed", "book", book, "chapter", n, "error", err)
			return &LoadError{Book: book, Chapter: n, Err: err}
		}
		chapters[n-1] = verses
	}

	s.book = book
	s.chapters = chapters
	s.logger.Info("book loaded", "book", book, "chapters", len(chapters), "elapsed", time.Since(start))
	return nil
}

// Book returns the book of the last successful load.
func (s *VerseStore) Book() bible.Book { return s.book }

// Chapter returns chapter n of the current book, or false when n is out of
// range or nothing has been loaded.
func (s *VerseStore) Chapter(n int) ([]string, bool) {
	if s.chapters == nil || !s.book.HasChapter(n) {
		return nil, false
	}
	return s.chapters[n-1], true
}
