package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/po3rin/saunadge/internal/config"
	"github.com/po3rin/saunadge/internal/model"
)

func newTestConfig(baseURL string) *config.Config {
	return &config.Config{
		ServerPort:     "0",
		RequestTimeout: 5 * time.Second,
		CORSOrigins:    []string{"*"},
		SaunaBaseURL:   baseURL,
		FetchTimeout:   time.Second,
	}
}

func TestApp_EndToEnd(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/saunners/po3rin" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `<nav><span class="p-localNav_count">256</span></nav>`)
	}))
	t.Cleanup(upstream.Close)

	application, err := New(newTestConfig(upstream.URL))
	require.NoError(t, err)

	server := httptest.NewServer(application.Handler())
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/api/v1/badge/po3rin")
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	require.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var badge model.Badge
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&badge))
	require.Equal(t, model.DefaultBadgeStyle.Success("256"), badge)
}

func TestApp_Badge(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<span class="p-localNav_count">9</span>`)
	}))
	t.Cleanup(upstream.Close)

	application, err := New(newTestConfig(upstream.URL))
	require.NoError(t, err)

	badge, err := application.Badge(context.Background(), "anyone")
	require.NoError(t, err)
	require.Equal(t, "9", badge.Message)

	upstream.Close()

	badge, err = application.Badge(context.Background(), "anyone")
	require.ErrorIs(t, err, model.ErrFetchFailed)
	require.Equal(t, model.DefaultBadgeStyle.Failure(), badge)
}
