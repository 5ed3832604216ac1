package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsauctions/catalog-backend/internal/domain"
	"github.com/fsauctions/catalog-backend/internal/repository/static"
	"github.com/fsauctions/catalog-backend/pkg/e"
	"github.com/fsauctions/catalog-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	counts map[string]int
	stored map[string]int
	getErr error
}

func (f *fakeCache) GetCategoryCounts(_ context.Context) (map[string]int, error) {
	return f.counts, f.getErr
}

func (f *fakeCache) SetCategoryCounts(_ context.Context, counts map[string]int) error {
	f.stored = counts
	return nil
}

type fakeProducer struct {
	events []CatalogEvent
	err    error
}

func (f *fakeProducer) Publish(_ context.Context, event *CatalogEvent) error {
	f.events = append(f.events, *event)
	return f.err
}

func newTestUC() *CatalogUseCase {
	return NewCatalogUC(static.NewRepo(), nil, nil, logger.Nop())
}

func TestAuctionsStatusFilterIsUnion(t *testing.T) {
	uc := newTestUC()
	ctx := context.Background()

	all, err := uc.Auctions(ctx, NewAuctionsReq(nil))
	require.NoError(t, err)
	require.Len(t, all, 3)

	open, err := uc.Auctions(ctx, NewAuctionsReq([]string{"open"}))
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "auction-1", open[0].ID)

	both, err := uc.Auctions(ctx, NewAuctionsReq([]string{"open", "upcoming"}))
	require.NoError(t, err)
	assert.Len(t, both, 3)

	none, err := uc.Auctions(ctx, NewAuctionsReq([]string{"archived"}))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAuctionReturnsTimeRemaining(t *testing.T) {
	uc := newTestUC()
	uc.now = func() time.Time {
		return time.Date(2026, 1, 25, 8, 0, 0, 0, time.UTC)
	}

	res, err := uc.Auction(context.Background(), "auction-1")
	require.NoError(t, err)

	// до закрытия auction-1 остаются ровно сутки
	assert.Equal(t, 1, res.TimeRemaining.Days)
	assert.Equal(t, 0, res.TimeRemaining.Hours)
	assert.False(t, res.TimeRemaining.Ended)
}

func TestAuctionNotFound(t *testing.T) {
	uc := newTestUC()

	_, err := uc.Auction(context.Background(), "auction-999")
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrAuctionNotFound)
}

func TestAuctionProductsKeepsStoredOrder(t *testing.T) {
	uc := newTestUC()

	products, err := uc.AuctionProducts(context.Background(), "auction-1")
	require.NoError(t, err)
	require.Len(t, products, 10)
	assert.Equal(t, 1, products[0].LotNumber)
	assert.Equal(t, 10, products[9].LotNumber)

	empty, err := uc.AuctionProducts(context.Background(), "auction-2")
	require.NoError(t, err)
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestProductsPriceWindow(t *testing.T) {
	uc := newTestUC()
	min, max := int64(5000), int64(10000)

	products, err := uc.Products(context.Background(), NewSearchReq("", "", &min, &max, "", false))
	require.NoError(t, err)
	require.NotEmpty(t, products)

	for _, p := range products {
		assert.GreaterOrEqual(t, p.EstimateLow, min, p.ID)
		assert.LessOrEqual(t, p.EstimateHigh, max, p.ID)
	}
}

func TestProductsFeaturedOnly(t *testing.T) {
	uc := newTestUC()

	products, err := uc.Products(context.Background(), NewSearchReq("", "", nil, nil, "", true))
	require.NoError(t, err)
	require.Len(t, products, 5)
	for _, p := range products {
		assert.True(t, p.Featured)
	}
}

func TestProductNotFound(t *testing.T) {
	uc := newTestUC()

	_, err := uc.Product(context.Background(), "prod-999")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestSearchProductsPublishesEvent(t *testing.T) {
	producer := &fakeProducer{}
	uc := NewCatalogUC(static.NewRepo(), nil, producer, logger.Nop())

	results, err := uc.SearchProducts(context.Background(), "rolex")
	require.NoError(t, err)
	require.Len(t, results, 1)

	require.Len(t, producer.events, 1)
	assert.Equal(t, EventSearch, producer.events[0].Type)
	assert.Equal(t, "rolex", producer.events[0].Query)
	assert.Equal(t, 1, producer.events[0].Results)
}

func TestProductViewPublishesEvent(t *testing.T) {
	producer := &fakeProducer{}
	uc := NewCatalogUC(static.NewRepo(), nil, producer, logger.Nop())

	_, err := uc.Product(context.Background(), "prod-1")
	require.NoError(t, err)

	require.Len(t, producer.events, 1)
	assert.Equal(t, EventProductView, producer.events[0].Type)
	assert.Equal(t, "prod-1", producer.events[0].ProductID)
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	producer := &fakeProducer{err: errors.New("broker down")}
	uc := NewCatalogUC(static.NewRepo(), nil, producer, logger.Nop())

	products, err := uc.CategoryProducts(context.Background(), "rings")
	require.NoError(t, err)
	assert.NotEmpty(t, products)
}

func TestCategoriesCountsMatchFilter(t *testing.T) {
	uc := newTestUC()
	ctx := context.Background()

	categories, err := uc.Categories(ctx, NewCategoriesReq(0, ""))
	require.NoError(t, err)
	require.Len(t, categories, 8)

	for _, cat := range categories {
		products, err := uc.CategoryProducts(ctx, cat.Slug)
		require.NoError(t, err)
		assert.Equal(t, len(products), cat.ProductCount, cat.Slug)
	}
}

func TestCategoriesPopularSortAndLimit(t *testing.T) {
	uc := newTestUC()

	categories, err := uc.Categories(context.Background(), NewCategoriesReq(3, "popular"))
	require.NoError(t, err)
	require.Len(t, categories, 3)

	assert.GreaterOrEqual(t, categories[0].ProductCount, categories[1].ProductCount)
	assert.GreaterOrEqual(t, categories[1].ProductCount, categories[2].ProductCount)
}

func TestCategoryNotFound(t *testing.T) {
	uc := newTestUC()

	_, err := uc.Category(context.Background(), "silverware")
	assert.ErrorIs(t, err, e.ErrCategoryNotFound)
}

func TestCategoryProductsEmptySetIsNotError(t *testing.T) {
	uc := newTestUC()

	products, err := uc.CategoryProducts(context.Background(), "opal")
	require.NoError(t, err)
	require.NotNil(t, products)
	assert.Empty(t, products)
}

func TestCategoriesUseCacheWhenWarm(t *testing.T) {
	cache := &fakeCache{counts: map[string]int{"rings": 42}}
	uc := NewCatalogUC(static.NewRepo(), cache, nil, logger.Nop())

	categories, err := uc.Categories(context.Background(), NewCategoriesReq(0, ""))
	require.NoError(t, err)

	for _, cat := range categories {
		if cat.Slug == "rings" {
			assert.Equal(t, 42, cat.ProductCount)
		}
	}
	assert.Nil(t, cache.stored)
}

func TestCategoriesRecomputeOnCacheMissAndStore(t *testing.T) {
	cache := &fakeCache{}
	uc := NewCatalogUC(static.NewRepo(), cache, nil, logger.Nop())

	categories, err := uc.Categories(context.Background(), NewCategoriesReq(0, ""))
	require.NoError(t, err)
	require.NotEmpty(t, categories)

	require.NotNil(t, cache.stored)
	assert.Contains(t, cache.stored, "rings")
}

func TestCategoriesSurviveCacheFailure(t *testing.T) {
	cache := &fakeCache{getErr: errors.New("redis down")}
	uc := NewCatalogUC(static.NewRepo(), cache, nil, logger.Nop())

	categories, err := uc.Categories(context.Background(), NewCategoriesReq(0, ""))
	require.NoError(t, err)
	assert.Len(t, categories, 8)
}

func TestHeroSlides(t *testing.T) {
	uc := newTestUC()

	slides, err := uc.HeroSlides(context.Background())
	require.NoError(t, err)
	require.Len(t, slides, 4)
	assert.Equal(t, "Authenticity Fully Guaranteed", slides[0].Title)
}

type emptySettingsRepo struct {
	ContentRepository
}

func (emptySettingsRepo) Settings(_ context.Context) (*domain.Settings, error) {
	return nil, nil
}

func TestHeroSlidesWithoutSettings(t *testing.T) {
	uc := NewCatalogUC(emptySettingsRepo{static.NewRepo()}, nil, nil, logger.Nop())

	slides, err := uc.HeroSlides(context.Background())
	require.NoError(t, err)
	require.NotNil(t, slides)
	assert.Empty(t, slides)
}
