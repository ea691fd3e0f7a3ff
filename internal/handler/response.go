package handler

import (
	"net/http"

	"github.com/po3rin/saunadge/internal/model"
)

// WriteBadge writes badge as JSON with the status code it implies.
func WriteBadge(w http.ResponseWriter, badge model.Badge) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(badge.StatusCode())
	_ = model.EncodeBadge(w, badge)
}
