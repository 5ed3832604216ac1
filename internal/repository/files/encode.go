package files

import (
	"encoding/json"
	"sort"

	"github.com/fsauctions/catalog-backend/internal/domain"
)

// Кодировщики сущностей в JSON-схему дерева контента. Обратны декодерам,
// используются утилитой catalogctl для выгрузки стартового контента.

const contentDateLayout = "2006-01-02T15:04:05"

func EncodeAuction(a *domain.Auction) ([]byte, error) {
	model := fileAuction{
		Title:         a.Title,
		Description:   a.Description,
		ImageURL:      a.ImageURL,
		StartDate:     a.StartDate.Format(contentDateLayout),
		EndDate:       a.EndDate.Format(contentDateLayout),
		IsOnline:      a.IsOnline,
		Location:      a.Location,
		NumberOfLots:  a.NumberOfLots,
		BuyersPremium: a.BuyersPremium,
		Status:        string(a.Status),
	}
	return json.MarshalIndent(&model, "", "  ")
}

func EncodeProduct(p *domain.Product) ([]byte, error) {
	keys := make([]string, 0, len(p.Specifications))
	for key := range p.Specifications {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	specs := make([]specEntry, 0, len(keys))
	for _, key := range keys {
		specs = append(specs, specEntry{Key: key, Value: p.Specifications[key]})
	}

	model := fileProduct{
		AuctionID:      p.AuctionID,
		Title:          p.Title,
		Description:    p.Description,
		Images:         p.Images,
		LotNumber:      p.LotNumber,
		EstimateLow:    p.EstimateLow,
		EstimateHigh:   p.EstimateHigh,
		CurrentBid:     p.CurrentBid,
		BidsCount:      p.BidsCount,
		Category:       p.Category,
		Subcategory:    p.Subcategory,
		Featured:       p.Featured,
		Specifications: specs,
	}
	return json.MarshalIndent(&model, "", "  ")
}

func EncodeCategory(c *domain.Category) ([]byte, error) {
	model := fileCategory{
		Name:           c.Name,
		Slug:           c.Slug,
		ImageURL:       c.ImageURL,
		Description:    c.Description,
		ParentCategory: c.ParentCategory,
	}
	return json.MarshalIndent(&model, "", "  ")
}

func EncodeSettings(s *domain.Settings) ([]byte, error) {
	model := fileSettings{
		SiteName:        s.SiteName,
		SiteDescription: s.SiteDescription,
		ContactEmail:    s.ContactEmail,
		ContactPhone:    s.ContactPhone,
		HeroSlides:      make([]fileHeroSlide, 0, len(s.HeroSlides)),
	}

	for _, slide := range s.HeroSlides {
		model.HeroSlides = append(model.HeroSlides, fileHeroSlide{
			Title:    slide.Title,
			Subtitle: slide.Subtitle,
			ImageURL: slide.ImageURL,
			LinkURL:  slide.LinkURL,
			LinkText: slide.LinkText,
		})
	}

	return json.MarshalIndent(&model, "", "  ")
}
