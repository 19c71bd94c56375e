package source

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"verse-tui/internal/bible"

	"github.com/avast/retry-go/v4"
)

// Verse is one row of a bolls.life translation dump or get-text response.
type Verse struct {
	PK      int    `json:"pk"`
	Verse   int    `json:"verse"`
	Text    string `json:"text"`
	Book    int    `json:"book,omitempty"`
	Chapter int    `json:"chapter,omitempty"`
}

type chapterKey struct {
	book    int
	chapter int
}

// Translation serves chapters from a downloaded translation file held in
// memory.
type Translation struct {
	chapters map[chapterKey][]string
}

// OpenTranslation reads and indexes a translation JSON file.
func OpenTranslation(path string) (*Translation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer file.Close()

	var all []Verse
	if err := json.NewDecoder(file).Decode(&all); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrMalformed, path, err)
	}
	return newTranslation(all), nil
}

func newTranslation(all []Verse) *Translation {
	grouped := make(map[chapterKey][]Verse)
	for _, v := range all {
		k := chapterKey{v.Book, v.Chapter}
		grouped[k] = append(grouped[k], v)
	}

	chapters := make(map[chapterKey][]string, len(grouped))
	for k, verses := range grouped {
		sort.SliceStable(verses, func(i, j int) bool { return verses[i].Verse < verses[j].Verse })
		texts := make([]string, len(verses))
		for i, v := range verses {
			texts[i] = stripHTMLTags(v.Text)
		}
		chapters[k] = texts
	}
	return &Translation{chapters: chapters}
}

func (t *Translation) Chapter(ctx context.Context, book bible.Book, chapter int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	verses, ok := t.chapters[chapterKey{book.Rank(), chapter}]
	if !ok {
		return nil, fmt.Errorf("%w: %s %d", ErrNotFound, book, chapter)
	}
	return verses, nil
}

func (t *Translation) Close() error { return nil }

// TranslationPath is where Download stores a translation under dir.
func TranslationPath(dir, translation string) string {
	return filepath.Join(dir, translation+".json")
}

// Download fetches a translation archive from bolls.life and extracts its
// JSON file into dir.
func Download(ctx context.Context, baseURL, translation, dir string) (string, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	tmpFile, err := os.CreateTemp("", translation+"*.zip")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmpFile.Name())
	defer tmpFile.Close()

	url := fmt.Sprintf("%s/static/translations/%s.zip", baseURL, translation)
	err = retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusNotFound {
				return retry.Unrecoverable(fmt.Errorf("translation %s: %w", translation, ErrNotFound))
			}
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("download failed with status %d", resp.StatusCode)
			}

			if err := tmpFile.Truncate(0); err != nil {
				return retry.Unrecoverable(err)
			}
			if _, err := tmpFile.Seek(0, io.SeekStart); err != nil {
				return retry.Unrecoverable(err)
			}
			_, err = io.Copy(tmpFile, resp.Body)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return "", fmt.Errorf("failed to download: %w", err)
	}

	outPath := TranslationPath(dir, translation)
	if err := extractJSON(tmpFile.Name(), outPath); err != nil {
		return "", err
	}
	return outPath, nil
}

func extractJSON(zipPath, outPath string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if filepath.Ext(f.Name) != ".json" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		outFile, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer outFile.Close()

		_, err = io.Copy(outFile, rc)
		return err
	}

	return fmt.Errorf("no JSON file found in ZIP")
}
