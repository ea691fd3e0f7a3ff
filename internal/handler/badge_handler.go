package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/po3rin/saunadge/internal/middleware"
	"github.com/po3rin/saunadge/internal/model"
)

type sakatsuSource interface {
	Sakatsu(ctx context.Context, id string) (string, error)
}

type BadgeHandler struct {
	service sakatsuSource
	style   *model.BadgeStyle
}

func NewBadgeHandler(service sakatsuSource, style *model.BadgeStyle) *BadgeHandler {
	return &BadgeHandler{service: service, style: style}
}

func (h *BadgeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	sakatsu, err := h.service.Sakatsu(r.Context(), id)
	if err != nil {
		requestID, _ := middleware.RequestIDFromContext(r.Context())
		slog.Error("failed to get sakatsu",
			"request_id", requestID,
			"id", id,
			"kind", model.ErrorKind(err),
			"error", err.Error(),
		)
		WriteBadge(w, h.style.Failure())
		return
	}

	WriteBadge(w, h.style.Success(sakatsu))
}

// pathID returns the decoded {id} segment. chi routes on the raw path when
// the request carries escapes, so the value may still be percent-encoded.
func pathID(r *http.Request) string {
	raw := chi.URLParam(r, "id")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}

	return decoded
}
