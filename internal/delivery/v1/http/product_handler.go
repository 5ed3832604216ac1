package http

import (
	"net/http"

	"github.com/fsauctions/catalog-backend/internal/usecase"
	"github.com/fsauctions/catalog-backend/pkg/e"
	"github.com/fsauctions/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает товары с фильтрацией по запросу, категории, цене и сортировкой
//	@Tags			products
//	@Produce		json
//	@Param			query		query		string	false	"Подстрока поиска"
//	@Param			category	query		string	false	"Слаг категории"
//	@Param			priceMin	query		integer	false	"Нижняя граница нижней оценки"
//	@Param			priceMax	query		integer	false	"Верхняя граница верхней оценки"
//	@Param			sortBy		query		string	false	"Сортировка: price-low, price-high, newest, ending-soon"
//	@Param			featured	query		boolean	false	"Только рекомендуемые"
//	@Success		200			{array}		domain.Product
//	@Failure		400			{object}	ErrorResponse
//	@Router			/api/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parseSearchReq(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	products, err := p.catalogUsecase.Products(r.Context(), req)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

// searchProducts
//
//	@Summary		Поиск товаров
//	@Description	Возвращает товары, у которых запрос встречается в названии, описании или категории
//	@Tags			products
//	@Produce		json
//	@Param			q	query		string	false	"Строка поиска"
//	@Success		200	{array}		domain.Product
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/products/search [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	products, err := p.catalogUsecase.SearchProducts(r.Context(), query)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}

// getProduct
//
//	@Summary		Товар по идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор товара"
//	@Success		200	{object}	domain.Product
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := p.catalogUsecase.Product(r.Context(), id)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, product)
}

func parseSearchReq(r *http.Request) (*usecase.SearchReq, error) {
	q := r.URL.Query()

	priceMin, err := parsePriceBound(q.Get("priceMin"))
	if err != nil {
		return nil, err
	}

	priceMax, err := parsePriceBound(q.Get("priceMax"))
	if err != nil {
		return nil, err
	}

	return usecase.NewSearchReq(
		q.Get("query"),
		q.Get("category"),
		priceMin,
		priceMax,
		usecase.SortKey(q.Get("sortBy")),
		q.Get("featured") == "true",
	), nil
}
