package model

import "errors"

var (
	// Scraping errors. None of them reach the client; they only select the
	// failure badge and the "kind" attribute of the log line.
	ErrFetchFailed = errors.New("failed to get sakatsu by id")
	ErrParseFailed = errors.New("failed to parse profile page")
	ErrNotFound    = errors.New("sakatsu not found")
	ErrEmptyText   = errors.New("sakatsu has no text")
)

// ErrorKind names the scraping stage that produced err.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrFetchFailed):
		return "fetch_failed"
	case errors.Is(err, ErrParseFailed):
		return "parse_failed"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrEmptyText):
		return "empty_text"
	default:
		return "unknown"
	}
}
