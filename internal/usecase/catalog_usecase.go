package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/fsauctions/catalog-backend/internal/domain"
	"github.com/fsauctions/catalog-backend/pkg/e"
	"github.com/fsauctions/catalog-backend/pkg/logger"
)

// CatalogUseCase реализует операции каталога поверх источника контента.
// Контент в пределах запроса неизменен, все операции — чистые проходы по снимку.
type CatalogUseCase struct {
	content ContentRepository
	filter  *CategoryFilter
	cache   CacheRepository // может быть nil, кэш опционален
	events  EventProducer   // может быть nil, аналитика опциональна
	logger  logger.Logger
	now     func() time.Time
}

func NewCatalogUC(
	content ContentRepository,
	cache CacheRepository,
	events EventProducer,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		content: content,
		filter:  NewCategoryFilter(),
		cache:   cache,
		events:  events,
		logger:  logger,
		now:     time.Now,
	}
}

// Auctions возвращает аукционы, при наличии статусов — только с одним из них.
func (c *CatalogUseCase) Auctions(ctx context.Context, req *AuctionsReq) ([]domain.Auction, error) {
	const op = "CatalogUseCase.Auctions"

	auctions, err := c.content.Auctions(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(req.Statuses) == 0 {
		return auctions, nil
	}

	wanted := make(map[string]struct{}, len(req.Statuses))
	for _, s := range req.Statuses {
		wanted[s] = struct{}{}
	}

	result := make([]domain.Auction, 0, len(auctions))
	for _, a := range auctions {
		if _, ok := wanted[string(a.Status)]; ok {
			result = append(result, a)
		}
	}

	return result, nil
}

// Auction возвращает аукцион с производным остатком времени до закрытия.
func (c *CatalogUseCase) Auction(ctx context.Context, id string) (*AuctionRes, error) {
	const op = "CatalogUseCase.Auction"

	auctions, err := c.content.Auctions(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for _, a := range auctions {
		if a.ID == id {
			return &AuctionRes{
				Auction:       a,
				TimeRemaining: domain.TimeUntil(a.EndDate, c.now()),
			}, nil
		}
	}

	return nil, e.Wrap(op, e.ErrAuctionNotFound)
}

// AuctionProducts возвращает лоты аукциона в порядке хранения.
func (c *CatalogUseCase) AuctionProducts(ctx context.Context, auctionID string) ([]domain.Product, error) {
	const op = "CatalogUseCase.AuctionProducts"

	products, err := c.content.Products(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]domain.Product, 0)
	for _, p := range products {
		if p.AuctionID == auctionID {
			result = append(result, p)
		}
	}

	return result, nil
}

// Products — страница просмотра лотов: текстовый фильтр, категория через
// реестр, границы оценки (включительно) и сортировка.
func (c *CatalogUseCase) Products(ctx context.Context, req *SearchReq) ([]domain.Product, error) {
	const op = "CatalogUseCase.Products"

	products, err := c.content.Products(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := applySearch(products, req, c.filter)

	if req.Query != "" {
		c.publish(ctx, NewSearchEvent(req.Query, len(result)))
	}

	return result, nil
}

// SearchProducts — только текстовый фильтр, без категории и сортировки.
func (c *CatalogUseCase) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	const op = "CatalogUseCase.SearchProducts"

	products, err := c.content.Products(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]domain.Product, 0)
	for i := range products {
		if matchesQuery(&products[i], query) {
			result = append(result, products[i])
		}
	}

	c.publish(ctx, NewSearchEvent(query, len(result)))
	return result, nil
}

func (c *CatalogUseCase) Product(ctx context.Context, id string) (*domain.Product, error) {
	const op = "CatalogUseCase.Product"

	products, err := c.content.Products(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for i := range products {
		if products[i].ID == id {
			c.publish(ctx, NewProductViewEvent(id))
			return &products[i], nil
		}
	}

	return nil, e.Wrap(op, e.ErrProductNotFound)
}

// Categories возвращает категории с производными счетчиками лотов.
// sort=popular — по убыванию счетчика, limit>0 обрезает список.
func (c *CatalogUseCase) Categories(ctx context.Context, req *CategoriesReq) ([]domain.Category, error) {
	const op = "CatalogUseCase.Categories"

	categories, err := c.categoriesWithCounts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Sort == "popular" {
		sort.SliceStable(categories, func(i, j int) bool {
			return categories[i].ProductCount > categories[j].ProductCount
		})
	}

	if req.Limit > 0 && req.Limit < len(categories) {
		categories = categories[:req.Limit]
	}

	return categories, nil
}

func (c *CatalogUseCase) Category(ctx context.Context, slug string) (*domain.Category, error) {
	const op = "CatalogUseCase.Category"

	categories, err := c.categoriesWithCounts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for i := range categories {
		if categories[i].Slug == slug {
			return &categories[i], nil
		}
	}

	return nil, e.Wrap(op, e.ErrCategoryNotFound)
}

// CategoryProducts возвращает лоты категории через реестр предикатов,
// с откатом к прямому совпадению слага. Пустой список — штатный ответ.
func (c *CatalogUseCase) CategoryProducts(ctx context.Context, slug string) ([]domain.Product, error) {
	const op = "CatalogUseCase.CategoryProducts"

	products, err := c.content.Products(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := c.filter.Filter(products, slug)
	c.publish(ctx, NewCategoryViewEvent(slug, len(result)))

	return result, nil
}

// HeroSlides возвращает слайды главной страницы; без настроек — пустой список.
func (c *CatalogUseCase) HeroSlides(ctx context.Context) ([]domain.HeroSlide, error) {
	const op = "CatalogUseCase.HeroSlides"

	settings, err := c.content.Settings(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if settings == nil || len(settings.HeroSlides) == 0 {
		return []domain.HeroSlide{}, nil
	}

	return settings.HeroSlides, nil
}

// categoriesWithCounts — агрегатор: полный пересчет счетчиков по текущему
// снимку лотов, при включенном кэше — с попыткой чтения/записи агрегата.
func (c *CatalogUseCase) categoriesWithCounts(ctx context.Context) ([]domain.Category, error) {
	categories, err := c.content.Categories(ctx)
	if err != nil {
		return nil, err
	}

	counts := c.cachedCounts(ctx)
	if counts == nil {
		products, err := c.content.Products(ctx)
		if err != nil {
			return nil, err
		}

		counts = make(map[string]int, len(categories))
		for _, cat := range categories {
			counts[cat.Slug] = len(c.filter.Filter(products, cat.Slug))
		}

		c.storeCounts(ctx, counts)
	}

	result := make([]domain.Category, len(categories))
	copy(result, categories)
	for i := range result {
		result[i].ProductCount = counts[result[i].Slug]
	}

	return result, nil
}

// cachedCounts возвращает nil при отключенном кэше, промахе или сбое.
func (c *CatalogUseCase) cachedCounts(ctx context.Context) map[string]int {
	if c.cache == nil {
		return nil
	}

	counts, err := c.cache.GetCategoryCounts(ctx)
	if err != nil {
		c.logger.Warnf("category counts cache read failed: %v", err)
		return nil
	}

	return counts
}

func (c *CatalogUseCase) storeCounts(ctx context.Context, counts map[string]int) {
	if c.cache == nil {
		return
	}

	if err := c.cache.SetCategoryCounts(ctx, counts); err != nil {
		c.logger.Warnf("category counts cache write failed: %v", err)
	}
}

// publish отправляет событие аналитики, сбой только логируется.
func (c *CatalogUseCase) publish(ctx context.Context, event *CatalogEvent) {
	if c.events == nil {
		return
	}

	if err := c.events.Publish(ctx, event); err != nil {
		c.logger.Warnf("catalog event publish failed: %v", err)
	}
}
