package usecase

import (
	"strings"

	"github.com/fsauctions/catalog-backend/internal/domain"
)

// Predicate решает принадлежность лота навигационной категории.
type Predicate func(p *domain.Product) bool

// Слаги категорий часов и сумок. Лоты этих категорий не считаются ювелирными
// и исключаются из всех ювелирных фильтров.
var watchCategories = map[string]struct{}{
	"watches-mens":    {},
	"watches-ladies":  {},
	"watches-midsize": {},
}

const bagCategory = "designer-bags"

func isJewellery(p *domain.Product) bool {
	if _, ok := watchCategories[p.Category]; ok {
		return false
	}
	return p.Category != bagCategory
}

func isWatch(p *domain.Product) bool {
	_, ok := watchCategories[p.Category]
	return ok
}

// titleHas — регистронезависимое вхождение подстроки в название лота.
// Именно вхождение, не слово: "ring" находит и "earring". Поведение
// сохранено намеренно, сужение до границ слова изменило бы видимый
// состав категорий.
func titleHas(p *domain.Product, kw string) bool {
	return strings.Contains(strings.ToLower(p.Title), kw)
}

// itemType — категория по типу украшения: точное совпадение слага
// либо ключевое слово в названии, только для ювелирных лотов.
func itemType(slug, kw string) Predicate {
	return func(p *domain.Product) bool {
		return isJewellery(p) && (p.Category == slug || titleHas(p, kw))
	}
}

// material — категория по камню или материалу, та же схема что itemType.
func material(slug string) Predicate {
	return itemType(slug, slug)
}

// brandWatch — часы конкретной марки: любой часовой слаг плюс марка в названии.
func brandWatch(keywords ...string) Predicate {
	return func(p *domain.Product) bool {
		if !isWatch(p) {
			return false
		}
		for _, kw := range keywords {
			if titleHas(p, kw) {
				return true
			}
		}
		return false
	}
}

func categoryIs(slug string) Predicate {
	return func(p *domain.Product) bool {
		return p.Category == slug
	}
}

// CategoryFilter — единый реестр предикатов категорий.
// Слаг уникален как ключ, поэтому порядок объявления роли не играет.
type CategoryFilter struct {
	registry map[string]Predicate
}

func NewCategoryFilter() *CategoryFilter {
	return &CategoryFilter{registry: newRegistry()}
}

func newRegistry() map[string]Predicate {
	return map[string]Predicate{
		// Категории по типу украшения
		"rings":      itemType("rings", "ring"),
		"earrings":   itemType("earrings", "earring"),
		"pendants":   itemType("pendants", "pendant"),
		"bracelets":  itemType("bracelets", "bracelet"),
		"necklaces":  itemType("necklaces", "necklace"),
		"bangles":    itemType("bangles", "bangle"),
		"brooches":   itemType("brooches", "brooch"),
		"loose-gems": func(p *domain.Product) bool { return isJewellery(p) && titleHas(p, "loose") && !titleHas(p, "diamond") },

		// Категории по камню или материалу
		"diamond":        material("diamond"),
		"pearl":          material("pearl"),
		"sapphire":       material("sapphire"),
		"ruby":           material("ruby"),
		"tanzanite":      material("tanzanite"),
		"emerald":        material("emerald"),
		"jade":           material("jade"),
		"aquamarine":     material("aquamarine"),
		"opal":           material("opal"),
		"topaz":          material("topaz"),
		"tourmaline":     material("tourmaline"),
		"gold-jewellery": itemType("gold-jewellery", "gold"),

		// Кураторские коллекции
		"certified-diamonds": func(p *domain.Product) bool {
			return p.Category == "diamond" && (titleHas(p, "certified") || titleHas(p, "gia") || titleHas(p, "igi"))
		},
		"loose-diamonds": func(p *domain.Product) bool {
			return p.Category == "diamond" && titleHas(p, "loose")
		},
		"engagement-rings": func(p *domain.Product) bool { return isJewellery(p) && titleHas(p, "engagement") },
		"tennis-bracelets": func(p *domain.Product) bool { return isJewellery(p) && titleHas(p, "tennis") },
		"diamond-earrings": func(p *domain.Product) bool {
			return isJewellery(p) && titleHas(p, "diamond") &&
				(titleHas(p, "earring") || titleHas(p, "drop") || titleHas(p, "hoop"))
		},

		// Часы
		"swiss-watches":        isWatch,
		"rolex-watches":        brandWatch("rolex"),
		"omega-watches":        brandWatch("omega"),
		"cartier-watches":      brandWatch("cartier"),
		"tag-heuer-watches":    brandWatch("tag heuer", "tag-heuer"),
		"iwc-watches":          brandWatch("iwc"),
		"breitling-watches":    brandWatch("breitling"),
		"raymond-weil-watches": brandWatch("raymond weil"),
		"watches-mens":         categoryIs("watches-mens"),
		"watches-ladies":       categoryIs("watches-ladies"),
		"watches-midsize":      categoryIs("watches-midsize"),

		// Дизайнерские сумки
		"designer-bags": categoryIs(bagCategory),
	}
}

// Matches сообщает, принадлежит ли лот категории slug.
// Для незарегистрированного слага — прямое совпадение с полем category.
func (f *CategoryFilter) Matches(p *domain.Product, slug string) bool {
	if pred, ok := f.registry[slug]; ok {
		return pred(p)
	}
	return p.Category == slug
}

// Filter возвращает лоты категории slug, сохраняя порядок исходного набора.
// Пустой результат — нормальный ответ, не ошибка.
func (f *CategoryFilter) Filter(products []domain.Product, slug string) []domain.Product {
	result := make([]domain.Product, 0)
	for i := range products {
		if f.Matches(&products[i], slug) {
			result = append(result, products[i])
		}
	}
	return result
}
