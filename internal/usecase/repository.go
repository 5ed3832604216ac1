package usecase

import (
	"context"

	"github.com/fsauctions/catalog-backend/internal/domain"
)

// ContentRepository — источник контента каталога. Реализации: статический
// набор, каталог JSON-файлов, бакет MinIO. Возвращаемые срезы принадлежат
// вызывающему, реализация не переиспользует их между вызовами.
type ContentRepository interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Auctions(ctx context.Context) ([]domain.Auction, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Settings(ctx context.Context) (*domain.Settings, error)
}

// CacheRepository кэширует производный агрегат счетчиков категорий.
// Ошибки кэша не фатальны: промах и сбой для вызывающего неразличимы.
type CacheRepository interface {
	GetCategoryCounts(ctx context.Context) (map[string]int, error)
	SetCategoryCounts(ctx context.Context, counts map[string]int) error
}

// EventProducer отправляет события аналитики каталога. Отправка
// fire-and-forget: сбой доставки никогда не влияет на ответ клиенту.
type EventProducer interface {
	Publish(ctx context.Context, event *CatalogEvent) error
}
