package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/po3rin/saunadge/internal/config"
	"github.com/po3rin/saunadge/internal/handler"
	"github.com/po3rin/saunadge/internal/model"
	"github.com/po3rin/saunadge/internal/router"
	"github.com/po3rin/saunadge/internal/scraper"
	"github.com/po3rin/saunadge/internal/service"
)

type App struct {
	server  *http.Server
	badges  *service.BadgeService
	style   *model.BadgeStyle
	handler http.Handler
}

func New(cfg *config.Config) (*App, error) {
	extractor, err := scraper.NewExtractor(scraper.SakatsuSelector)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize extractor: %w", err)
	}

	fetcher := scraper.NewFetcher(scraper.FetcherOptions{
		BaseURL:           cfg.SaunaBaseURL,
		UserAgent:         cfg.UserAgent,
		Timeout:           cfg.FetchTimeout,
		RequestsPerSecond: cfg.OutboundRPS,
	})

	style := model.DefaultBadgeStyle
	badgeService := service.NewBadgeService(fetcher, extractor)
	badgeHandler := handler.NewBadgeHandler(badgeService, style)

	appRouter := router.New(cfg, style, router.Handlers{
		Badge: badgeHandler,
	})

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           appRouter,
		ReadHeaderTimeout: cfg.ServerReadHeaderTimeout,
		WriteTimeout:      cfg.ServerWriteTimeout,
		IdleTimeout:       cfg.ServerIdleTimeout,
	}

	return &App{
		server:  server,
		badges:  badgeService,
		style:   style,
		handler: appRouter,
	}, nil
}

// Handler exposes the routed handler, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Badge scrapes a single badge without going through HTTP.
func (a *App) Badge(ctx context.Context, id string) (model.Badge, error) {
	sakatsu, err := a.badges.Sakatsu(ctx, id)
	if err != nil {
		return a.style.Failure(), err
	}

	return a.style.Success(sakatsu), nil
}

func (a *App) Run() error {
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
