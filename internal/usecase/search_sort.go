package usecase

import (
	"sort"
	"strings"

	"github.com/fsauctions/catalog-backend/internal/domain"
)

// matchesQuery — регистронезависимый поиск подстроки по названию,
// описанию и слагу категории; достаточно совпадения в любом из трех полей.
func matchesQuery(p *domain.Product, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Title), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// applySearch применяет фильтры и сортировку запроса к набору лотов.
// Исходный срез не изменяется, результат — новый срез.
func applySearch(products []domain.Product, req *SearchReq, filter *CategoryFilter) []domain.Product {
	result := make([]domain.Product, len(products))
	copy(result, products)

	if req.Featured {
		result = keep(result, func(p *domain.Product) bool { return p.Featured })
	}

	if req.Query != "" {
		result = keep(result, func(p *domain.Product) bool { return matchesQuery(p, req.Query) })
	}

	if req.Category != "" {
		result = filter.Filter(result, req.Category)
	}

	if req.PriceMin != nil {
		result = keep(result, func(p *domain.Product) bool { return p.EstimateLow >= *req.PriceMin })
	}

	if req.PriceMax != nil {
		result = keep(result, func(p *domain.Product) bool { return p.EstimateHigh <= *req.PriceMax })
	}

	sortProducts(result, req.SortBy, req.Query)
	return result
}

func keep(products []domain.Product, pred Predicate) []domain.Product {
	kept := products[:0:0]
	for i := range products {
		if pred(&products[i]) {
			kept = append(kept, products[i])
		}
	}
	return kept
}

// sortProducts сортирует на месте. Все сортировки стабильные: лоты с
// равными ключами сохраняют исходный относительный порядок.
func sortProducts(products []domain.Product, key SortKey, query string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EstimateLow < products[j].EstimateLow
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EstimateHigh > products[j].EstimateHigh
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].LotNumber > products[j].LotNumber
		})
	case SortEndingSoon:
		// Унаследованное поведение: сортировка по номеру лота как по
		// суррогату хронологии закрытия, а не по фактическому endDate.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].LotNumber < products[j].LotNumber
		})
	default:
		// relevance: при наличии запроса лоты с совпадением в названии
		// стабильно выносятся вперед, остальной порядок не меняется.
		if query == "" {
			return
		}
		q := strings.ToLower(query)
		sort.SliceStable(products, func(i, j int) bool {
			iTitle := strings.Contains(strings.ToLower(products[i].Title), q)
			jTitle := strings.Contains(strings.ToLower(products[j].Title), q)
			return iTitle && !jTitle
		})
	}
}
