package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fsauctions/catalog-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAuction = `{
  "title": "Winter Fine Jewellery Auction",
  "description": "Seasonal sale.",
  "imageUrl": "https://example.com/a.jpg",
  "startDate": "2026-02-01T08:00:00",
  "endDate": "2026-02-08T20:00:00",
  "isOnline": true,
  "numberOfLots": 10,
  "buyersPremium": 20,
  "status": "open"
}`

const sampleProduct = `{
  "auctionId": "auction-1",
  "title": "Diamond Ring",
  "description": "A ring.",
  "images": ["https://example.com/p.jpg"],
  "lotNumber": 1,
  "estimateLow": 1000,
  "estimateHigh": 2000,
  "currentBid": 900,
  "bidsCount": 3,
  "category": "rings",
  "featured": true,
  "specifications": [
    {"key": "Metal", "value": "18k Gold"}
  ]
}`

const sampleCategory = `{
  "name": "Rings",
  "slug": "rings",
  "imageUrl": "https://example.com/c.jpg",
  "description": "Rings of all kinds"
}`

const sampleSettings = `{
  "siteName": "Test Auctions",
  "heroSlides": [
    {"title": "Slide One", "linkUrl": "/auctions"}
  ]
}`

func writeFile(t *testing.T, dir, sub, name, body string) {
	t.Helper()
	target := filepath.Join(dir, sub)
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, name), []byte(body), 0o644))
}

func TestRepoLoadsContentTree(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "auctions", "auction-1.json", sampleAuction)
	writeFile(t, dir, "products", "prod-1.json", sampleProduct)
	writeFile(t, dir, "categories", "rings.json", sampleCategory)
	writeFile(t, dir, "settings", "site.json", sampleSettings)

	repo, report := NewRepo(dir, logger.Nop())

	assert.Equal(t, 1, report.Auctions)
	assert.Equal(t, 1, report.Products)
	assert.Equal(t, 1, report.Categories)
	assert.True(t, report.SettingsLoaded)
	assert.Empty(t, report.Skipped)

	ctx := context.Background()

	auctions, err := repo.Auctions(ctx)
	require.NoError(t, err)
	require.Len(t, auctions, 1)
	assert.Equal(t, "auction-1", auctions[0].ID)
	// открытый аукцион получает производную ссылку на каталог
	assert.Equal(t, "/auctions/auction-1/catalogue", auctions[0].CatalogueURL)

	products, err := repo.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "prod-1", products[0].ID)
	assert.Equal(t, map[string]string{"Metal": "18k Gold"}, products[0].Specifications)
	require.NotNil(t, products[0].CurrentBid)
	assert.Equal(t, int64(900), *products[0].CurrentBid)

	categories, err := repo.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "cat-rings", categories[0].ID)
	assert.Equal(t, "rings", categories[0].Slug)

	settings, err := repo.Settings(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "Test Auctions", settings.SiteName)
	require.Len(t, settings.HeroSlides, 1)
	assert.Equal(t, "1", settings.HeroSlides[0].ID)
}

func TestRepoSkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "products", "prod-1.json", sampleProduct)
	writeFile(t, dir, "products", "broken.json", "{not json")
	writeFile(t, dir, "auctions", "bad-date.json", `{"title":"x","startDate":"yesterday","endDate":"tomorrow"}`)

	repo, report := NewRepo(dir, logger.Nop())

	assert.Equal(t, 1, report.Products)
	assert.Equal(t, 0, report.Auctions)
	assert.Len(t, report.Skipped, 2)

	products, err := repo.Products(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestRepoMissingDirectoriesYieldEmptySets(t *testing.T) {
	repo, report := NewRepo(t.TempDir(), logger.Nop())

	assert.Zero(t, report.Auctions)
	assert.Zero(t, report.Products)
	assert.Zero(t, report.Categories)
	assert.False(t, report.SettingsLoaded)
	assert.Empty(t, report.Skipped)

	products, err := repo.Products(context.Background())
	require.NoError(t, err)
	require.NotNil(t, products)
	assert.Empty(t, products)

	settings, err := repo.Settings(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestRepoReloadReplacesSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "products", "prod-1.json", sampleProduct)

	repo, report := NewRepo(dir, logger.Nop())
	require.Equal(t, 1, report.Products)

	writeFile(t, dir, "products", "prod-2.json", sampleProduct)
	report = repo.Reload()
	assert.Equal(t, 2, report.Products)

	products, err := repo.Products(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestRepoIgnoresNonJSONEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "products", "prod-1.json", sampleProduct)
	writeFile(t, dir, "products", "notes.txt", "not content")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "products", "drafts"), 0o755))

	_, report := NewRepo(dir, logger.Nop())

	assert.Equal(t, 1, report.Products)
	assert.Empty(t, report.Skipped)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	auction, err := DecodeAuction([]byte(sampleAuction), "auction-1")
	require.NoError(t, err)

	data, err := EncodeAuction(auction)
	require.NoError(t, err)

	again, err := DecodeAuction(data, "auction-1")
	require.NoError(t, err)
	assert.Equal(t, auction, again)
}
