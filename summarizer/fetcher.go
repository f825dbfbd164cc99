package summarizer

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"newswatch/domain"
	"newswatch/domain/mimetypes"
	"newswatch/errors"

	"github.com/gabriel-vasile/mimetype"
)

const (
	// DefaultMaxBodySize bounds how much of a page is read before extraction.
	DefaultMaxBodySize = 2 << 20
	userAgent          = "Mozilla/5.0 (compatible; newswatch/1.0)"
)

// HTTPFetcher downloads pages with a plain GET and the client's default redirect policy.
type HTTPFetcher struct {
	client      *http.Client
	maxBodySize int64
}

func NewHTTPFetcher(client *http.Client, maxBodySize int64) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if maxBodySize <= 0 {
		maxBodySize = DefaultMaxBodySize
	}
	return &HTTPFetcher{client: client, maxBodySize: maxBodySize}
}

// Fetch returns the page body. Network errors and non-2xx statuses wrap errors.ErrFetchFailed;
// payloads that are not text or markup wrap errors.ErrUnsupportedContent.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (domain.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Page{}, fmt.Errorf("%w: %w", errors.ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.Page{}, fmt.Errorf("%w: %w", errors.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Page{}, fmt.Errorf("%w: HTTP %d: %s", errors.ErrFetchFailed, resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return domain.Page{}, fmt.Errorf("%w: reading body: %w", errors.ErrFetchFailed, err)
	}

	detected := mimetypes.TextPlain
	if len(body) > 0 {
		sniffed := mimetype.Detect(body).String()
		if !mimetypes.Readable(sniffed) {
			return domain.Page{}, fmt.Errorf("%w: %s", errors.ErrUnsupportedContent, sniffed)
		}
		detected = mimetypes.MIME(sniffed)
	}

	return domain.Page{
		URL:         url,
		StatusCode:  resp.StatusCode,
		ContentType: string(detected),
		Body:        body,
	}, nil
}
