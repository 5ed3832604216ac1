package files

import (
	"encoding/json"

	"github.com/fsauctions/catalog-backend/internal/domain"
)

// Декодеры сущностей из JSON-схемы дерева контента. Используются и файловым
// репозиторием, и источником поверх объектного хранилища.

func DecodeAuction(data []byte, id string) (*domain.Auction, error) {
	var model fileAuction
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}
	return model.toDomain(id)
}

func DecodeProduct(data []byte, id string) (*domain.Product, error) {
	var model fileProduct
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}
	return model.toDomain(id), nil
}

func DecodeCategory(data []byte, id string) (*domain.Category, error) {
	var model fileCategory
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}
	return model.toDomain(id), nil
}

func DecodeSettings(data []byte) (*domain.Settings, error) {
	var model fileSettings
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}
	return model.toDomain(), nil
}
