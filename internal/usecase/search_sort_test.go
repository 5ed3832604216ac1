package usecase

import (
	"testing"

	"github.com/fsauctions/catalog-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priced(id string, low, high int64, lot int) domain.Product {
	return domain.Product{ID: id, Title: id, EstimateLow: low, EstimateHigh: high, LotNumber: lot}
}

func bound(v int64) *int64 { return &v }

func TestApplySearchQueryMatchesAnyField(t *testing.T) {
	filter := NewCategoryFilter()
	products := []domain.Product{
		{ID: "a", Title: "Diamond Ring", Category: "rings"},
		{ID: "b", Title: "Bangle", Description: "set with diamonds", Category: "bangles"},
		{ID: "c", Title: "Loose Stone", Category: "diamond"},
		{ID: "d", Title: "Pearl Strand", Category: "necklaces"},
	}

	result := applySearch(products, &SearchReq{Query: "diamond"}, filter)

	ids := make([]string, 0, len(result))
	for _, p := range result {
		ids = append(ids, p.ID)
	}
	assert.ElementsMatch(t, []string{"a", "b", "c"}, ids)
}

func TestApplySearchPriceBoundsInclusive(t *testing.T) {
	filter := NewCategoryFilter()
	products := []domain.Product{
		priced("low", 4999, 8000, 1),
		priced("edge-min", 5000, 10000, 2),
		priced("inside", 6000, 9000, 3),
		priced("edge-max", 7000, 10000, 4),
		priced("high", 8000, 10001, 5),
	}

	req := &SearchReq{PriceMin: bound(5000), PriceMax: bound(10000)}
	result := applySearch(products, req, filter)

	require.Len(t, result, 3)
	assert.Equal(t, "edge-min", result[0].ID)
	assert.Equal(t, "inside", result[1].ID)
	assert.Equal(t, "edge-max", result[2].ID)
}

func TestApplySearchPriceMinChecksLowEstimate(t *testing.T) {
	filter := NewCategoryFilter()
	// верхняя оценка выше порога, но нижняя ниже: лот отфильтрован
	products := []domain.Product{priced("p", 3000, 20000, 1)}

	result := applySearch(products, &SearchReq{PriceMin: bound(5000)}, filter)
	assert.Empty(t, result)
}

func TestSortPriceHighDescendingByHighEstimate(t *testing.T) {
	filter := NewCategoryFilter()
	products := []domain.Product{
		priced("cheap", 400, 500, 1),
		priced("mid", 2000, 2500, 2),
		priced("dear", 6800, 9300, 3),
	}

	result := applySearch(products, &SearchReq{SortBy: SortPriceHigh}, filter)

	require.Len(t, result, 3)
	assert.Equal(t, []int64{9300, 2500, 500}, []int64{
		result[0].EstimateHigh, result[1].EstimateHigh, result[2].EstimateHigh,
	})
}

func TestSortPriceLowAscendingByLowEstimate(t *testing.T) {
	filter := NewCategoryFilter()
	products := []domain.Product{
		priced("b", 5000, 6000, 1),
		priced("a", 1000, 9000, 2),
		priced("c", 7000, 8000, 3),
	}

	result := applySearch(products, &SearchReq{SortBy: SortPriceLow}, filter)
	assert.Equal(t, []string{"a", "b", "c"}, []string{result[0].ID, result[1].ID, result[2].ID})
}

func TestSortStableOnEqualKeys(t *testing.T) {
	filter := NewCategoryFilter()
	products := []domain.Product{
		priced("first", 1000, 2000, 1),
		priced("second", 1000, 2000, 2),
		priced("third", 1000, 2000, 3),
	}

	result := applySearch(products, &SearchReq{SortBy: SortPriceLow}, filter)
	assert.Equal(t, []string{"first", "second", "third"}, []string{result[0].ID, result[1].ID, result[2].ID})
}

func TestSortNewestAndEndingSoonUseLotNumber(t *testing.T) {
	filter := NewCategoryFilter()
	products := []domain.Product{
		priced("mid", 0, 0, 5),
		priced("last", 0, 0, 9),
		priced("first", 0, 0, 1),
	}

	newest := applySearch(products, &SearchReq{SortBy: SortNewest}, filter)
	assert.Equal(t, []int{9, 5, 1}, []int{newest[0].LotNumber, newest[1].LotNumber, newest[2].LotNumber})

	ending := applySearch(products, &SearchReq{SortBy: SortEndingSoon}, filter)
	assert.Equal(t, []int{1, 5, 9}, []int{ending[0].LotNumber, ending[1].LotNumber, ending[2].LotNumber})
}

func TestRelevancePartitionsTitleMatchesFirst(t *testing.T) {
	filter := NewCategoryFilter()
	products := []domain.Product{
		{ID: "desc-only", Title: "Gold Bangle", Description: "pearl accents"},
		{ID: "title-1", Title: "Pearl Ring"},
		{ID: "desc-only-2", Title: "Silver Chain", Description: "with pearl clasp"},
		{ID: "title-2", Title: "South Sea Pearl Strand"},
	}

	result := applySearch(products, &SearchReq{Query: "pearl"}, filter)

	require.Len(t, result, 4)
	assert.Equal(t, "title-1", result[0].ID)
	assert.Equal(t, "title-2", result[1].ID)
	// порядок остальных не меняется
	assert.Equal(t, "desc-only", result[2].ID)
	assert.Equal(t, "desc-only-2", result[3].ID)
}

func TestRelevanceWithoutQueryKeepsStoredOrder(t *testing.T) {
	filter := NewCategoryFilter()
	products := []domain.Product{
		priced("z", 900, 900, 3),
		priced("a", 100, 100, 1),
	}

	result := applySearch(products, &SearchReq{}, filter)
	assert.Equal(t, []string{"z", "a"}, []string{result[0].ID, result[1].ID})
}

func TestApplySearchDoesNotMutateInput(t *testing.T) {
	filter := NewCategoryFilter()
	products := []domain.Product{
		priced("b", 5000, 6000, 2),
		priced("a", 1000, 2000, 1),
	}

	applySearch(products, &SearchReq{SortBy: SortPriceLow, Featured: true}, filter)

	assert.Equal(t, "b", products[0].ID)
	assert.Equal(t, "a", products[1].ID)
}

func TestApplySearchFeaturedAndCategoryCombine(t *testing.T) {
	filter := NewCategoryFilter()
	products := []domain.Product{
		{ID: "f1", Title: "Diamond Ring", Category: "rings", Featured: true},
		{ID: "p1", Title: "Ruby Ring", Category: "rings"},
		{ID: "f2", Title: "Hermès Bag", Category: "designer-bags", Featured: true},
	}

	result := applySearch(products, &SearchReq{Category: "rings", Featured: true}, filter)

	require.Len(t, result, 1)
	assert.Equal(t, "f1", result[0].ID)
}
