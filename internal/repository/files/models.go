package files

import (
	"strconv"
	"time"

	"github.com/fsauctions/catalog-backend/internal/domain"
	"github.com/fsauctions/catalog-backend/pkg/e"
)

// Файловые модели повторяют схему контента CMS: спецификации лота хранятся
// массивом пар ключ-значение, даты — строками локального времени.

type specEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type fileAuction struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"imageUrl"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	IsOnline      bool    `json:"isOnline"`
	Location      string  `json:"location"`
	NumberOfLots  int     `json:"numberOfLots"`
	BuyersPremium float64 `json:"buyersPremium"`
	Status        string  `json:"status"`
}

type fileProduct struct {
	AuctionID      string      `json:"auctionId"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Images         []string    `json:"images"`
	LotNumber      int         `json:"lotNumber"`
	EstimateLow    int64       `json:"estimateLow"`
	EstimateHigh   int64       `json:"estimateHigh"`
	CurrentBid     *int64      `json:"currentBid"`
	BidsCount      int         `json:"bidsCount"`
	Category       string      `json:"category"`
	Subcategory    string      `json:"subcategory"`
	Featured       bool        `json:"featured"`
	Specifications []specEntry `json:"specifications"`
}

type fileCategory struct {
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	ImageURL       string  `json:"imageUrl"`
	Description    string  `json:"description"`
	ParentCategory *string `json:"parentCategory"`
}

type fileHeroSlide struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
	LinkText string `json:"linkText"`
}

type fileSettings struct {
	SiteName        string          `json:"siteName"`
	SiteDescription string          `json:"siteDescription"`
	ContactEmail    string          `json:"contactEmail"`
	ContactPhone    string          `json:"contactPhone"`
	HeroSlides      []fileHeroSlide `json:"heroSlides"`
}

// parseContentDate принимает RFC3339 и локальную дату без зоны,
// как ее исторически пишет CMS.
func parseContentDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}

func (a *fileAuction) toDomain(id string) (*domain.Auction, error) {
	start, err := parseContentDate(a.StartDate)
	if err != nil {
		return nil, e.Wrap("startDate", err)
	}

	end, err := parseContentDate(a.EndDate)
	if err != nil {
		return nil, e.Wrap("endDate", err)
	}

	auction := &domain.Auction{
		ID:            id,
		Title:         a.Title,
		Description:   a.Description,
		ImageURL:      a.ImageURL,
		StartDate:     start,
		EndDate:       end,
		IsOnline:      a.IsOnline,
		Location:      a.Location,
		NumberOfLots:  a.NumberOfLots,
		BuyersPremium: a.BuyersPremium,
		Status:        domain.AuctionStatus(a.Status),
	}
	if auction.Status == domain.StatusOpen {
		auction.CatalogueURL = "/auctions/" + id + "/catalogue"
	}

	return auction, nil
}

func (p *fileProduct) toDomain(id string) *domain.Product {
	specs := make(map[string]string, len(p.Specifications))
	for _, s := range p.Specifications {
		specs[s.Key] = s.Value
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}

	return &domain.Product{
		ID:             id,
		AuctionID:      p.AuctionID,
		Title:          p.Title,
		Description:    p.Description,
		Images:         images,
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
}

func (c *fileCategory) toDomain(id string) *domain.Category {
	return &domain.Category{
		ID:             "cat-" + id,
		Name:           c.Name,
		Slug:           c.Slug,
		ImageURL:       c.ImageURL,
		Description:    c.Description,
		ParentCategory: c.ParentCategory,
	}
}

func (s *fileSettings) toDomain() *domain.Settings {
	settings := &domain.Settings{
		SiteName:        s.SiteName,
		SiteDescription: s.SiteDescription,
		ContactEmail:    s.ContactEmail,
		ContactPhone:    s.ContactPhone,
		HeroSlides:      make([]domain.HeroSlide, 0, len(s.HeroSlides)),
	}

	for i, slide := range s.HeroSlides {
		settings.HeroSlides = append(settings.HeroSlides, domain.HeroSlide{
			ID:       strconv.Itoa(i + 1),
			Title:    slide.Title,
			Subtitle: slide.Subtitle,
			ImageURL: slide.ImageURL,
			LinkURL:  slide.LinkURL,
			LinkText: slide.LinkText,
		})
	}

	return settings
}
