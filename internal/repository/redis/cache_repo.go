// Package redis реализует кэш агрегированных счётчиков категорий.
package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/fsauctions/catalog-backend/internal/cfg"
	"github.com/fsauctions/catalog-backend/pkg/clients"
	"github.com/fsauctions/catalog-backend/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const categoryCountsKey = "category-counts"

// CacheRepo хранит счётчики товаров по категориям одним JSON-значением
// с TTL из конфигурации.
type CacheRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
}

func NewCacheRepo(client *clients.RedisClient, cfg *cfg.RedisCfg) *CacheRepo {
	return &CacheRepo{
		client: client,
		cfg:    cfg,
	}
}

// GetCategoryCounts возвращает кэшированные счётчики. Промах кэша — не
// ошибка: возвращается nil, вызывающая сторона пересчитывает агрегат сама.
func (c *CacheRepo) GetCategoryCounts(ctx context.Context) (map[string]int, error) {
	data, err := c.client.Client.Get(ctx, categoryCountsKey).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	counts := make(map[string]int)
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return counts, nil
}

// SetCategoryCounts записывает агрегат целиком, затирая прошлое значение.
func (c *CacheRepo) SetCategoryCounts(ctx context.Context, counts map[string]int) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, categoryCountsKey, data, c.cfg.CountsTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
