package usecase

import (
	"testing"

	"github.com/fsauctions/catalog-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(title, category string) domain.Product {
	return domain.Product{Title: title, Category: category}
}

func TestCategoryFilterJewelleryKeywords(t *testing.T) {
	filter := NewCategoryFilter()
	bangle := product("Diamond Tennis Bracelet", "bracelets")

	assert.True(t, filter.Matches(&bangle, "bracelets"))
	assert.True(t, filter.Matches(&bangle, "tennis-bracelets"))
	assert.True(t, filter.Matches(&bangle, "diamond"))
	assert.False(t, filter.Matches(&bangle, "rings"))
	assert.False(t, filter.Matches(&bangle, "designer-bags"))
}

func TestCategoryFilterSubstringMatchesInsideWords(t *testing.T) {
	filter := NewCategoryFilter()

	// "Earrings" содержит "ring": лот попадает и в кольца, и в серьги
	studs := product("2ct Diamond Stud Earrings", "earrings")
	assert.True(t, filter.Matches(&studs, "earrings"))
	assert.True(t, filter.Matches(&studs, "rings"))
	assert.True(t, filter.Matches(&studs, "diamond-earrings"))
}

func TestCategoryFilterCaseInsensitive(t *testing.T) {
	filter := NewCategoryFilter()
	p := product("SOUTH SEA PEARL PENDANT", "necklaces")

	assert.True(t, filter.Matches(&p, "pearl"))
	assert.True(t, filter.Matches(&p, "pendants"))
}

func TestCategoryFilterWatchesAreNotJewellery(t *testing.T) {
	filter := NewCategoryFilter()
	rolex := product("Rolex Submariner Mens Watch", "watches-mens")

	assert.True(t, filter.Matches(&rolex, "swiss-watches"))
	assert.True(t, filter.Matches(&rolex, "rolex-watches"))
	assert.True(t, filter.Matches(&rolex, "watches-mens"))

	// часы не попадают в ювелирные категории даже при совпадении слова
	assert.False(t, filter.Matches(&rolex, "gold-jewellery"))
	assert.False(t, filter.Matches(&rolex, "rings"))

	ladies := product("Omega Gold Ladies Watch", "watches-ladies")
	assert.True(t, filter.Matches(&ladies, "swiss-watches"))
	assert.True(t, filter.Matches(&ladies, "omega-watches"))
	assert.False(t, filter.Matches(&ladies, "rolex-watches"))
	assert.False(t, filter.Matches(&ladies, "gold-jewellery"))
}

func TestCategoryFilterBagsAreNotJewellery(t *testing.T) {
	filter := NewCategoryFilter()
	bag := product("Gold Chain Hermès Bag", "designer-bags")

	assert.True(t, filter.Matches(&bag, "designer-bags"))
	assert.False(t, filter.Matches(&bag, "gold-jewellery"))
	assert.False(t, filter.Matches(&bag, "necklaces"))
}

func TestCategoryFilterTagHeuerVariants(t *testing.T) {
	filter := NewCategoryFilter()

	spaced := product("TAG Heuer Carrera", "watches-mens")
	hyphen := product("Tag-Heuer Aquaracer", "watches-ladies")

	assert.True(t, filter.Matches(&spaced, "tag-heuer-watches"))
	assert.True(t, filter.Matches(&hyphen, "tag-heuer-watches"))
}

func TestCategoryFilterDiamondCollections(t *testing.T) {
	filter := NewCategoryFilter()

	loose := product("2.01ct Loose Diamond GIA F VS2", "diamond")
	assert.True(t, filter.Matches(&loose, "diamond"))
	assert.True(t, filter.Matches(&loose, "loose-diamonds"))
	assert.True(t, filter.Matches(&loose, "certified-diamonds")) // gia в названии

	uncertified := product("1.00ct Loose Diamond", "diamond")
	assert.True(t, filter.Matches(&uncertified, "loose-diamonds"))
	assert.False(t, filter.Matches(&uncertified, "certified-diamonds"))

	// loose-gems исключает бриллианты
	sapphire := product("Loose Sapphire 3.2ct", "sapphire")
	assert.True(t, filter.Matches(&sapphire, "loose-gems"))
	assert.False(t, filter.Matches(&loose, "loose-gems"))
}

func TestCategoryFilterFallbackSlug(t *testing.T) {
	filter := NewCategoryFilter()
	p := product("Vintage Silver Goblet", "silverware")

	// незарегистрированный слаг сравнивается с категорией напрямую
	assert.True(t, filter.Matches(&p, "silverware"))
	assert.False(t, filter.Matches(&p, "cutlery"))
}

func TestFilterPreservesOrderAndNeverNil(t *testing.T) {
	filter := NewCategoryFilter()
	products := []domain.Product{
		product("Ruby Ring", "rings"),
		product("Pearl Necklace", "necklaces"),
		product("Sapphire Ring", "rings"),
	}

	rings := filter.Filter(products, "rings")
	require.Len(t, rings, 2)
	assert.Equal(t, "Ruby Ring", rings[0].Title)
	assert.Equal(t, "Sapphire Ring", rings[1].Title)

	empty := filter.Filter(products, "brooches")
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestFilterIsDeterministic(t *testing.T) {
	filter := NewCategoryFilter()
	products := []domain.Product{
		product("Diamond Ring", "rings"),
		product("Gold Bangle", "bangles"),
		product("Diamond Pendant", "pendants"),
	}

	first := filter.Filter(products, "diamond")
	second := filter.Filter(products, "diamond")
	assert.Equal(t, first, second)
}
