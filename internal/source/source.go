// Package source provides read-only access to chapter text keyed by book and
// chapter number.
package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"verse-tui/internal/bible"
)

var (
	// ErrNotFound means the source has no data for the requested chapter.
	ErrNotFound = errors.New("chapter not found")
	// ErrMalformed means the source returned data that could not be decoded.
	ErrMalformed = errors.New("malformed chapter data")
	// ErrUnavailable means the source itself could not be reached.
	ErrUnavailable = errors.New("text source unavailable")
)

// TextSource returns the ordered verse texts of one chapter.
type TextSource interface {
	Chapter(ctx context.Context, book bible.Book, chapter int) ([]string, error)
	Close() error
}

// Kind selects a TextSource implementation.
type Kind string

const (
	KindSQLite Kind = "sqlite"
	KindJSON   Kind = "json"
	KindHTTP   Kind = "http"
)

// Options configures Open.
type Options struct {
	Kind        Kind
	Path        string
	Table       string
	Translation string
	BaseURL     string
	Retries     uint
	Logger      *slog.Logger
}

// Open builds the TextSource named by opts.Kind.
func Open(ctx context.Context, opts Options) (TextSource, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("opening text source", "kind", opts.Kind, "path", opts.Path, "translation", opts.Translation)

	switch opts.Kind {
	case KindSQLite, "":
		return OpenSQLite(ctx, opts.Path, opts.Table)
	case KindJSON:
		return OpenTranslation(opts.Path)
	case KindHTTP:
		return NewBolls(opts.BaseURL, opts.Translation, opts.Retries), nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", opts.Kind)
	}
}

var htmlTag = regexp.MustCompile(`<[^>]*>`)

// stripHTMLTags removes markup bolls.life embeds in verse text.
func stripHTMLTags(s string) string {
	return htmlTag.ReplaceAllString(s, "")
}
