package http

import (
	"net/http"

	"github.com/fsauctions/catalog-backend/internal/usecase"
	"github.com/fsauctions/catalog-backend/pkg/logger"
)

type ContentHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewContentHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ContentHandler {
	return &ContentHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listHeroSlides
//
//	@Summary		Слайды главной страницы
//	@Tags			content
//	@Produce		json
//	@Success		200	{array}		domain.HeroSlide
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/hero-slides [get]
func (c *ContentHandler) listHeroSlides(w http.ResponseWriter, r *http.Request) {
	slides, err := c.catalogUsecase.HeroSlides(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, slides)
}
