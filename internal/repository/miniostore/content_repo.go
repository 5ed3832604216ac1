// Package miniostore реализует источник контента поверх бакета MinIO
// с той же раскладкой объектов, что и файловое дерево content/.
package miniostore

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsauctions/catalog-backend/internal/cfg"
	"github.com/fsauctions/catalog-backend/internal/domain"
	"github.com/fsauctions/catalog-backend/internal/repository/files"
	"github.com/fsauctions/catalog-backend/pkg/e"
	"github.com/fsauctions/catalog-backend/pkg/jitter"
	"github.com/fsauctions/catalog-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

const (
	auctionsPrefix   = "auctions/"
	productsPrefix   = "products/"
	categoriesPrefix = "categories/"
	settingsKey      = "settings/site.json"

	retryBase = 500 * time.Millisecond
	retryMax  = 10 * time.Second
)

type snapshot struct {
	auctions   []domain.Auction
	products   []domain.Product
	categories []domain.Category
	settings   *domain.Settings
}

// ContentRepo загружает снимок контента из бакета при старте и держит его
// в памяти.
type ContentRepo struct {
	mc     *minio.Client
	cfg    *cfg.MinIOCfg
	logger logger.Logger
	snap   atomic.Pointer[snapshot]
}

// NewContentRepo выполняет начальную загрузку с повторами: недоступность
// хранилища на старте — обычное дело при одновременном поднятии контейнеров.
func NewContentRepo(ctx context.Context, mc *minio.Client, cfg *cfg.MinIOCfg, log logger.Logger) (*ContentRepo, error) {
	r := &ContentRepo{mc: mc, cfg: cfg, logger: log}

	var err error
	for attempt := 0; attempt <= cfg.LoadRetries; attempt++ {
		if attempt > 0 {
			delay := jitter.ExponentialBackoff(retryBase, retryMax, attempt, jitter.DefaultJitter)
			log.Warnf("content load attempt %d failed, retrying in %s: %v", attempt, delay, err)

			select {
			case <-ctx.Done():
				return nil, e.Wrap(whereami.WhereAmI(), ctx.Err())
			case <-time.After(delay):
			}
		}

		if err = r.load(ctx); err == nil {
			return r, nil
		}
	}

	return nil, e.Wrap(whereami.WhereAmI(), err)
}

func (r *ContentRepo) load(ctx context.Context) error {
	snap := &snapshot{}

	if err := r.loadPrefix(ctx, auctionsPrefix, func(data []byte, id string) error {
		auction, err := files.DecodeAuction(data, id)
		if err != nil {
			return err
		}
		snap.auctions = append(snap.auctions, *auction)
		return nil
	}); err != nil {
		return err
	}

	if err := r.loadPrefix(ctx, productsPrefix, func(data []byte, id string) error {
		product, err := files.DecodeProduct(data, id)
		if err != nil {
			return err
		}
		snap.products = append(snap.products, *product)
		return nil
	}); err != nil {
		return err
	}

	if err := r.loadPrefix(ctx, categoriesPrefix, func(data []byte, id string) error {
		category, err := files.DecodeCategory(data, id)
		if err != nil {
			return err
		}
		snap.categories = append(snap.categories, *category)
		return nil
	}); err != nil {
		return err
	}

	if data, err := r.getObject(ctx, settingsKey); err != nil {
		r.logger.Warnf("site settings object unavailable: %v", err)
	} else {
		settings, err := files.DecodeSettings(data)
		if err != nil {
			r.logger.Warnf("site settings object skipped: %v", err)
		} else {
			snap.settings = settings
		}
	}

	r.snap.Store(snap)
	r.logger.Infof(
		"content loaded from bucket %s: %d auctions, %d products, %d categories",
		r.cfg.BucketName, len(snap.auctions), len(snap.products), len(snap.categories),
	)

	return nil
}

// loadPrefix перебирает объекты префикса и передает тело каждого JSON-объекта
// в decode. Битый объект пропускается с предупреждением.
func (r *ContentRepo) loadPrefix(ctx context.Context, prefix string, decode func(data []byte, id string) error) error {
	objects := r.mc.ListObjects(ctx, r.cfg.BucketName, minio.ListObjectsOptions{Prefix: prefix})

	for object := range objects {
		if object.Err != nil {
			return e.Wrap(whereami.WhereAmI(), object.Err)
		}
		if !strings.HasSuffix(object.Key, ".json") {
			continue
		}

		data, err := r.getObject(ctx, object.Key)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		id := strings.TrimSuffix(strings.TrimPrefix(object.Key, prefix), ".json")
		if err := decode(data, id); err != nil {
			r.logger.Warnf("content object skipped: %v", e.Wrap(object.Key, err))
		}
	}

	return nil
}

func (r *ContentRepo) getObject(ctx context.Context, key string) ([]byte, error) {
	object, err := r.mc.GetObject(ctx, r.cfg.BucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

func (r *ContentRepo) Auctions(_ context.Context) ([]domain.Auction, error) {
	snap := r.snap.Load()
	out := make([]domain.Auction, len(snap.auctions))
	copy(out, snap.auctions)
	return out, nil
}

func (r *ContentRepo) Products(_ context.Context) ([]domain.Product, error) {
	snap := r.snap.Load()
	out := make([]domain.Product, len(snap.products))
	copy(out, snap.products)
	return out, nil
}

func (r *ContentRepo) Categories(_ context.Context) ([]domain.Category, error) {
	snap := r.snap.Load()
	out := make([]domain.Category, len(snap.categories))
	copy(out, snap.categories)
	return out, nil
}

func (r *ContentRepo) Settings(_ context.Context) (*domain.Settings, error) {
	snap := r.snap.Load()
	if snap.settings == nil {
		return nil, nil
	}
	s := *snap.settings
	return &s, nil
}
