package model

import (
	"encoding/json"
	"io"
	"net/http"
)

const failureMessage = "error"

// Badge is the shields.io endpoint payload returned by the badge route.
type Badge struct {
	IsError       bool   `json:"isError"`
	SchemaVersion int    `json:"schemaVersion"`
	Label         string `json:"label"`
	Message       string `json:"message"`
	Color         string `json:"color"`
	CacheSeconds  int    `json:"cacheSeconds"`
	LogoSVG       string `json:"logoSvg"`
}

// StatusCode is derived from IsError only.
func (b Badge) StatusCode() int {
	if b.IsError {
		return http.StatusInternalServerError
	}

	return http.StatusOK
}

// BadgeStyle holds the fields shared by every badge the service renders.
type BadgeStyle struct {
	schemaVersion int
	label         string
	color         string
	cacheSeconds  int
	logoSVG       string
}

// DefaultBadgeStyle is built once at startup and shared by every request.
var DefaultBadgeStyle = NewBadgeStyle("Sakatsu", "0051e0", 1800, SakatsuLogo)

func NewBadgeStyle(label string, color string, cacheSeconds int, logoSVG string) *BadgeStyle {
	return &BadgeStyle{
		schemaVersion: 1,
		label:         label,
		color:         color,
		cacheSeconds:  cacheSeconds,
		logoSVG:       logoSVG,
	}
}

func (s *BadgeStyle) Success(message string) Badge {
	return s.badge(false, message)
}

// Failure never carries the underlying reason; callers log it instead.
func (s *BadgeStyle) Failure() Badge {
	return s.badge(true, failureMessage)
}

func (s *BadgeStyle) badge(isError bool, message string) Badge {
	return Badge{
		IsError:       isError,
		SchemaVersion: s.schemaVersion,
		Label:         s.label,
		Message:       message,
		Color:         s.color,
		CacheSeconds:  s.cacheSeconds,
		LogoSVG:       s.logoSVG,
	}
}

// EncodeBadge writes badge as a single JSON line. The logo markup is written
// as-is instead of with \u003c escapes.
func EncodeBadge(w io.Writer, badge Badge) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(badge)
}
