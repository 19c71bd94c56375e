package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"verse-tui/internal/bible"

	"github.com/avast/retry-go/v4"
)

// DefaultBaseURL is the public bolls.life API.
const DefaultBaseURL = "https://bolls.life"

// Bolls fetches chapters live from the bolls.life get-text endpoint.
type Bolls struct {
	httpClient  *http.Client
	baseURL     string
	translation string
	attempts    uint
	delay       time.Duration
}

func NewBolls(baseURL, translation string, attempts uint) *Bolls {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if attempts == 0 {
		attempts = 1
	}
	return &Bolls{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		baseURL:     baseURL,
		translation: translation,
		attempts:    attempts,
		delay:       200 * time.Millisecond,
	}
}

func (c *Bolls) Chapter(ctx context.Context, book bible.Book, chapter int) ([]string, error) {
	url := fmt.Sprintf("%s/get-text/%s/%d/%d/", c.baseURL, c.translation, book.Rank(), chapter)

	var verses []Verse
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := c.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrUnavailable, err)
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusNotFound {
				return retry.Unrecoverable(fmt.Errorf("%w: %s %d", ErrNotFound, book, chapter))
			}
			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(resp.Body)
				return fmt.Errorf("%w: API returned status %d: %s", ErrUnavailable, resp.StatusCode, string(body))
			}

			verses = nil
			if err := json.NewDecoder(resp.Body).Decode(&verses); err != nil {
				return retry.Unrecoverable(fmt.Errorf("%w: %s %d: %v", ErrMalformed, book, chapter, err))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if errors.Is(err, ErrNotFound) || errors.Is(err, ErrMalformed) || errors.Is(err, ErrUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(verses) == 0 {
		return nil, fmt.Errorf("%w: %s %d", ErrNotFound, book, chapter)
	}

	texts := make([]string, len(verses))
	for i, v := range verses {
		texts[i] = stripHTMLTags(v.Text)
	}
	return texts, nil
}

func (c *Bolls) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
