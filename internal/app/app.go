// Package app собирает приложение: источник контента, кэш, продюсер событий
// и HTTP-сервер, с аккуратной остановкой через closer.
package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/fsauctions/catalog-backend/internal/cfg"
	v1Http "github.com/fsauctions/catalog-backend/internal/delivery/v1/http"
	"github.com/fsauctions/catalog-backend/internal/infrastructure/kafka"
	"github.com/fsauctions/catalog-backend/internal/repository/files"
	"github.com/fsauctions/catalog-backend/internal/repository/miniostore"
	redisRepo "github.com/fsauctions/catalog-backend/internal/repository/redis"
	"github.com/fsauctions/catalog-backend/internal/repository/static"
	"github.com/fsauctions/catalog-backend/internal/usecase"
	"github.com/fsauctions/catalog-backend/pkg/clients"
	"github.com/fsauctions/catalog-backend/pkg/closer"
	"github.com/fsauctions/catalog-backend/pkg/e"
	"github.com/fsauctions/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const (
	shutdownTimeout = 10 * time.Second
	forcedTimeout   = 15 * time.Second
)

type App struct {
	cfg    *config.Config
	logger logger.Logger
	server *v1Http.Server
	closer *closer.Closer
}

func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	a := &App{
		cfg:    cfg,
		logger: log,
		closer: closer.New(forcedTimeout),
	}

	content, err := a.initContent()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	cache, err := a.initCache()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	events, err := a.initEvents()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	catalogUC := usecase.NewCatalogUC(content, cache, events, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(catalogUC)

	a.server = v1Http.NewServer(r, cfg.Http)
	a.closer.Add("http server", a.server.Stop)

	return a, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или
// фатальной ошибки сервера.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.server.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

// initContent выбирает источник контента по конфигурации.
func (a *App) initContent() (usecase.ContentRepository, error) {
	switch a.cfg.Content.Source {
	case config.SourceStatic:
		a.logger.Infof("content source: built-in seed data")
		return static.NewRepo(), nil

	case config.SourceFiles:
		repo, report := files.NewRepo(a.cfg.Content.Dir, a.logger)
		a.logger.Infof(
			"content loaded from %s: %d auctions, %d products, %d categories, %d skipped",
			a.cfg.Content.Dir, report.Auctions, report.Products, report.Categories, len(report.Skipped),
		)

		if a.cfg.Content.Watch {
			watchCtx, watchCancel := context.WithCancel(context.Background())
			watchDone := make(chan struct{})
			go func() {
				defer close(watchDone)
				if err := repo.Watch(watchCtx); err != nil {
					a.logger.Warnf("content watcher stopped: %v", err)
				}
			}()
			a.closer.Add("content watcher", func(ctx context.Context) error {
				watchCancel()
				select {
				case <-watchDone:
					return nil
				case <-ctx.Done():
					return ctx.Err()
				}
			})
		}

		return repo, nil

	case config.SourceMinio:
		mc, err := clients.NewMinIOClient(a.cfg.Minio)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		bucketCtx, bucketCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer bucketCancel()
		if err := clients.EnsureBucket(bucketCtx, mc, a.cfg.Minio.BucketName); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		return miniostore.NewContentRepo(context.Background(), mc, a.cfg.Minio, a.logger)

	default:
		return nil, e.Wrap(string(a.cfg.Content.Source), e.ErrUnknownContentSource)
	}
}

// initCache возвращает nil, если кэш не сконфигурирован: подсчёт категорий
// тогда всегда идёт по снимку контента.
func (a *App) initCache() (usecase.CacheRepository, error) {
	if a.cfg.Redis == nil {
		return nil, nil
	}

	redisClient := clients.NewRedisClient(a.cfg.Redis)
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	a.closer.Add("redis client", func(_ context.Context) error {
		return redisClient.Client.Close()
	})

	return redisRepo.NewCacheRepo(redisClient, a.cfg.Redis), nil
}

// initEvents возвращает nil, если брокер не сконфигурирован: события
// аналитики тогда просто не публикуются.
func (a *App) initEvents() (usecase.EventProducer, error) {
	if a.cfg.Kafka == nil {
		return nil, nil
	}

	producer, err := kafka.NewProducer(a.logger, a.cfg.Kafka)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	a.closer.Add("kafka producer", func(_ context.Context) error {
		return producer.Close()
	})

	return producer, nil
}
