package e

import "fmt"

var (
	// 404 Not Found
	ErrAuctionNotFound  = fmt.Errorf("auction not found")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrSettingsNotFound = fmt.Errorf("site settings not found")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidPrice     = fmt.Errorf("invalid price bound")
	ErrInvalidLimit     = fmt.Errorf("invalid limit")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrUnknownContentSource = fmt.Errorf("unknown content source")
	ErrBucketNotFound       = fmt.Errorf("content bucket not found")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
