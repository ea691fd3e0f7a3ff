package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/po3rin/saunadge/internal/config"
	"github.com/po3rin/saunadge/internal/handler"
	"github.com/po3rin/saunadge/internal/middleware"
	"github.com/po3rin/saunadge/internal/model"
)

type Handlers struct {
	Badge *handler.BadgeHandler
}

func New(cfg *config.Config, style *model.BadgeStyle, handlers Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(style))
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Get("/badge/{id}", handlers.Badge.Get)
	})

	return r
}
