package scraper

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/po3rin/saunadge/internal/model"
)

const (
	DefaultBaseURL   = "https://sauna-ikitai.com"
	DefaultUserAgent = "saunadge/1.0"

	profilePath = "/saunners/{id}"
)

type FetcherOptions struct {
	BaseURL   string
	UserAgent string
	// Timeout bounds a single profile request. Zero keeps the client default.
	Timeout time.Duration
	// RequestsPerSecond throttles requests to the profile site across all
	// callers. Zero or less disables throttling.
	RequestsPerSecond float64
}

// Fetcher downloads saunner profile pages. It is safe for concurrent use.
type Fetcher struct {
	http    *resty.Client
	limiter *rate.Limiter
}

func NewFetcher(opts FetcherOptions) *Fetcher {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := strings.TrimSpace(opts.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("User-Agent", userAgent)
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := int(opts.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}

	return &Fetcher{http: client, limiter: limiter}
}

// Fetch returns the HTML of the profile page for id. The id is path-escaped
// so it always addresses a single profile.
func (f *Fetcher) Fetch(ctx context.Context, id string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: throttle: %w", model.ErrFetchFailed, err)
		}
	}

	res, err := f.http.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get(profilePath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrFetchFailed, err)
	}

	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d from %s", model.ErrFetchFailed, res.StatusCode(), res.Request.URL)
	}

	body := res.Body()
	if !utf8.Valid(body) {
		return "", fmt.Errorf("%w: response body is not valid UTF-8", model.ErrFetchFailed)
	}

	return string(body), nil
}
