package usecase

import "github.com/fsauctions/catalog-backend/internal/domain"

// SortKey — ключ сортировки списка лотов.
type SortKey string

const (
	SortRelevance  SortKey = "relevance"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortNewest     SortKey = "newest"
	SortEndingSoon SortKey = "ending-soon"
)

// AuctionsReq — запрос списка аукционов с необязательным фильтром по статусам (OR).
type AuctionsReq struct {
	Statuses []string
}

// AuctionRes — аукцион с производным остатком времени до закрытия.
type AuctionRes struct {
	domain.Auction
	TimeRemaining domain.Remaining `json:"timeRemaining"`
}

// SearchReq — параметры страницы просмотра лотов.
// Нулевые значения означают отсутствие соответствующего фильтра.
type SearchReq struct {
	Query    string
	Category string
	PriceMin *int64 // включительно, по estimateLow
	PriceMax *int64 // включительно, по estimateHigh
	SortBy   SortKey
	Featured bool
}

// CategoriesReq — запрос списка категорий.
type CategoriesReq struct {
	Limit int // 0 — без ограничения
	Sort  string
}

// Типы событий аналитики каталога.
const (
	EventProductView  = "product_view"
	EventSearch       = "search"
	EventCategoryView = "category_view"
)

// CatalogEvent — событие аналитики. Заполняются поля, относящиеся к типу.
type CatalogEvent struct {
	Type      string `json:"type"`
	ProductID string `json:"productId,omitempty"`
	Slug      string `json:"slug,omitempty"`
	Query     string `json:"query,omitempty"`
	Results   int    `json:"results"`
}

// MAPPERS

func NewAuctionsReq(statuses []string) *AuctionsReq {
	return &AuctionsReq{Statuses: statuses}
}

func NewSearchReq(query, category string, priceMin, priceMax *int64, sortBy SortKey, featured bool) *SearchReq {
	return &SearchReq{
		Query:    query,
		Category: category,
		PriceMin: priceMin,
		PriceMax: priceMax,
		SortBy:   sortBy,
		Featured: featured,
	}
}

func NewCategoriesReq(limit int, sort string) *CategoriesReq {
	return &CategoriesReq{Limit: limit, Sort: sort}
}

func NewProductViewEvent(productID string) *CatalogEvent {
	return &CatalogEvent{Type: EventProductView, ProductID: productID}
}

func NewSearchEvent(query string, results int) *CatalogEvent {
	return &CatalogEvent{Type: EventSearch, Query: query, Results: results}
}

func NewCategoryViewEvent(slug string, results int) *CatalogEvent {
	return &CatalogEvent{Type: EventCategoryView, Slug: slug, Results: results}
}
