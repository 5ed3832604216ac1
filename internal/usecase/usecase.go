package usecase

import (
	"context"

	"github.com/fsauctions/catalog-backend/internal/domain"
)

// CatalogUC — операции каталога, доступные слою доставки.
type CatalogUC interface {
	Auctions(ctx context.Context, req *AuctionsReq) ([]domain.Auction, error)
	Auction(ctx context.Context, id string) (*AuctionRes, error)
	AuctionProducts(ctx context.Context, auctionID string) ([]domain.Product, error)

	Products(ctx context.Context, req *SearchReq) ([]domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
	Product(ctx context.Context, id string) (*domain.Product, error)

	Categories(ctx context.Context, req *CategoriesReq) ([]domain.Category, error)
	Category(ctx context.Context, slug string) (*domain.Category, error)
	CategoryProducts(ctx context.Context, slug string) ([]domain.Product, error)

	HeroSlides(ctx context.Context) ([]domain.HeroSlide, error)
}
