// Package quote fetches an optional motivational quote at startup.
// The feature is cosmetic: any failure leaves it absent for the
// session and never touches topic data.
package quote

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Quote is the cached quote-of-the-day.
type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// quotable.io response shape.
type apiResponse struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Fetcher retrieves and caches one quote per session.
type Fetcher struct {
	client *resty.Client
	log    zerolog.Logger
	cached atomic.Pointer[Quote]
}

// NewFetcher creates a Fetcher against the given quote API URL.
func NewFetcher(url string, log zerolog.Logger) *Fetcher {
	c := resty.New().
		SetBaseURL(url).
		SetHeader("Accept", "application/json").
		SetTimeout(5 * time.Second)
	return &Fetcher{client: c, log: log}
}

// FetchOnce performs the single best-effort fetch. Errors are logged
// at debug level and swallowed; the quote is simply absent afterwards.
// Intended to run in a goroutine at startup.
func (f *Fetcher) FetchOnce(ctx context.Context) {
	var out apiResponse
	resp, err := f.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get("")
	if err != nil {
		f.log.Debug().Err(err).Msg("quote fetch failed")
		return
	}
	if resp.StatusCode() != http.StatusOK {
		f.log.Debug().Int("status", resp.StatusCode()).Msg("quote fetch non-200")
		return
	}
	if out.Content == "" {
		f.log.Debug().Msg("quote response missing content")
		return
	}
	f.cached.Store(&Quote{Quote: out.Content, Author: out.Author})
}

// Current returns the session quote, or false when none was fetched.
func (f *Fetcher) Current() (Quote, bool) {
	q := f.cached.Load()
	if q == nil {
		return Quote{}, false
	}
	return *q, true
}

// String implements fmt.Stringer for display clients.
func (q Quote) String() string {
	return fmt.Sprintf("%q - %s", q.Quote, q.Author)
}
