package http

import (
	"net/http"

	"github.com/fsauctions/catalog-backend/internal/usecase"
	"github.com/fsauctions/catalog-backend/pkg/e"
	"github.com/fsauctions/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CategoryHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCategoryHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listCategories
//
//	@Summary		Список категорий
//	@Description	Возвращает категории со счётчиками товаров, опционально усечённые и отсортированные по популярности
//	@Tags			categories
//	@Produce		json
//	@Param			limit	query		integer	false	"Максимум категорий в ответе"
//	@Param			sort	query		string	false	"popular — сортировка по убыванию числа товаров"
//	@Success		200		{array}		domain.Category
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/categories [get]
func (c *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := parseLimit(q.Get("limit"))
	if err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	categories, err := c.catalogUsecase.Categories(r.Context(), usecase.NewCategoriesReq(limit, q.Get("sort")))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, categories)
}

// getCategory
//
//	@Summary		Категория по слагу
//	@Tags			categories
//	@Produce		json
//	@Param			slug	path		string	true	"Слаг категории"
//	@Success		200		{object}	domain.Category
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/categories/{slug} [get]
func (c *CategoryHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	category, err := c.catalogUsecase.Category(r.Context(), slug)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, category)
}

// listCategoryProducts
//
//	@Summary		Товары категории
//	@Description	Возвращает товары, попадающие в категорию по её правилам; пустой набор — это 200 с пустым массивом
//	@Tags			categories
//	@Produce		json
//	@Param			slug	path		string	true	"Слаг категории"
//	@Success		200		{array}		domain.Product
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/categories/{slug}/products [get]
func (c *CategoryHandler) listCategoryProducts(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	products, err := c.catalogUsecase.CategoryProducts(r.Context(), slug)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}
