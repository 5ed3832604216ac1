package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fsauctions/catalog-backend/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrAuctionNotFound):
		return http.StatusNotFound, e.ErrAuctionNotFound.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrCategoryNotFound):
		return http.StatusNotFound, e.ErrCategoryNotFound.Error()
	case errors.Is(err, e.ErrSettingsNotFound):
		return http.StatusNotFound, e.ErrSettingsNotFound.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrInvalidLimit):
		return http.StatusBadRequest, e.ErrInvalidLimit.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parsePriceBound разбирает границу цены из query-параметра. Пустая строка —
// отсутствие границы. Значение должно быть неотрицательным целым числом.
func parsePriceBound(s string) (*int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return nil, e.ErrInvalidPrice
	}

	if !d.IsInteger() {
		return nil, e.ErrInvalidPrice
	}

	v := d.IntPart()
	return &v, nil
}

// parseLimit разбирает лимит выборки. Пустая строка — без ограничения.
func parseLimit(s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidLimit
	}

	if !d.IsInteger() || d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidLimit
	}

	return int(d.IntPart()), nil
}
