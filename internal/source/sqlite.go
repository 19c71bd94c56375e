package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"verse-tui/internal/bible"

	_ "modernc.org/sqlite"
)

// DefaultTable is the verse table of the ASV database.
const DefaultTable = "ASV_verses"

var tableName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// SQLite reads verses from a table with book_id, chapter, verse and text
// columns.
type SQLite struct {
	db    *sql.DB
	query string
}

// OpenSQLite opens path read-only.
func OpenSQLite(ctx context.Context, path, table string) (*SQLite, error) {
	if table == "" {
		table = DefaultTable
	}
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	db, err := sql.Open("sqlite", readOnlyDSN(path))
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", ErrUnavailable, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: opening database: %v", ErrUnavailable, err)
	}

	return &SQLite{
		db:    db,
		query: "SELECT text FROM " + table + " WHERE book_id = ? AND chapter = ? ORDER BY verse",
	}, nil
}

// readOnlyDSN builds a file: URI for path. The path is escaped so that '#'
// and '?' in directory names stay part of the file name.
func readOnlyDSN(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p, RawQuery: "mode=ro"}).String()
}

func (s *SQLite) Chapter(ctx context.Context, book bible.Book, chapter int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, s.query, book.Rank(), chapter)
	if err != nil {
		return nil, fmt.Errorf("%w: querying %s %d: %v", ErrUnavailable, book, chapter, err)
	}
	defer rows.Close()

	var verses []string
	for rows.Next() {
		var text sql.NullString
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("%w: scanning %s %d: %v", ErrMalformed, book, chapter, err)
		}
		if !text.Valid {
			return nil, fmt.Errorf("%w: %s %d verse %d is NULL", ErrMalformed, book, chapter, len(verses)+1)
		}
		verses = append(verses, text.String)
	}
	if err := rows.Err(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: reading %s %d: %v", ErrMalformed, book, chapter, err)
	}

	if len(verses) == 0 {
		return nil, fmt.Errorf("%w: %s %d", ErrNotFound, book, chapter)
	}
	return verses, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
