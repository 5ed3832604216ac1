package http

import (
	"net/http"

	"github.com/fsauctions/catalog-backend/internal/usecase"
	"github.com/fsauctions/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type AuctionHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewAuctionHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *AuctionHandler {
	return &AuctionHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listAuctions
//
//	@Summary		Список аукционов
//	@Description	Возвращает аукционы, при наличии параметра status — только с указанными статусами
//	@Tags			auctions
//	@Produce		json
//	@Param			status	query		[]string	false	"Фильтр по статусу (можно повторять)"
//	@Success		200		{array}		domain.Auction
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/auctions [get]
func (a *AuctionHandler) listAuctions(w http.ResponseWriter, r *http.Request) {
	statuses := r.URL.Query()["status"]

	auctions, err := a.catalogUsecase.Auctions(r.Context(), usecase.NewAuctionsReq(statuses))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, auctions)
}

// getAuction
//
//	@Summary		Аукцион по идентификатору
//	@Description	Возвращает аукцион вместе с остатком времени до закрытия
//	@Tags			auctions
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор аукциона"
//	@Success		200	{object}	usecase.AuctionRes
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/auctions/{id} [get]
func (a *AuctionHandler) getAuction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	auction, err := a.catalogUsecase.Auction(r.Context(), id)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, auction)
}

// listAuctionProducts
//
//	@Summary		Лоты аукциона
//	@Description	Возвращает товары, принадлежащие аукциону
//	@Tags			auctions
//	@Produce		json
//	@Param			id	path		string	true	"Идентификатор аукциона"
//	@Success		200	{array}		domain.Product
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/auctions/{id}/products [get]
func (a *AuctionHandler) listAuctionProducts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	products, err := a.catalogUsecase.AuctionProducts(r.Context(), id)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, products)
}
