package http

import (
	_ "github.com/fsauctions/catalog-backend/docs" // Импорт сгенерированных файлов
	"github.com/fsauctions/catalog-backend/internal/usecase"
	"github.com/fsauctions/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catUC usecase.CatalogUC) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api", func(api chi.Router) {
		aucHandler := NewAuctionHandler(catUC, r.logger)
		prHandler := NewProductHandler(catUC, r.logger)
		catHandler := NewCategoryHandler(catUC, r.logger)
		contentHandler := NewContentHandler(catUC, r.logger)

		registerAuctionRoutes(api, aucHandler)
		registerProductRoutes(api, prHandler)
		registerCategoryRoutes(api, catHandler)
		registerContentRoutes(api, contentHandler)
	})
}

func registerAuctionRoutes(router chi.Router, h *AuctionHandler) {
	router.Route("/auctions", func(auc chi.Router) {
		auc.Get("/", h.listAuctions)
		auc.Get("/{id}", h.getAuction)
		auc.Get("/{id}/products", h.listAuctionProducts)
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/search", h.searchProducts)
		pr.Get("/{id}", h.getProduct)
	})
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Get("/", h.listCategories)
		cat.Get("/{slug}", h.getCategory)
		cat.Get("/{slug}/products", h.listCategoryProducts)
	})
}

func registerContentRoutes(router chi.Router, h *ContentHandler) {
	router.Get("/hero-slides", h.listHeroSlides)
}
