// Package static — встроенный набор контента каталога. Используется как
// источник контента по умолчанию в тестах и как образец для catalogctl seed.
package static

import (
	"context"
	"time"

	"github.com/fsauctions/catalog-backend/internal/domain"
)

// Repo отдает копии неизменяемого встроенного набора.
type Repo struct {
	auctions   []domain.Auction
	products   []domain.Product
	categories []domain.Category
	settings   domain.Settings
}

func NewRepo() *Repo {
	return &Repo{
		auctions:   seedAuctions(),
		products:   seedProducts(),
		categories: seedCategories(),
		settings:   seedSettings(),
	}
}

func (r *Repo) Auctions(_ context.Context) ([]domain.Auction, error) {
	out := make([]domain.Auction, len(r.auctions))
	copy(out, r.auctions)
	return out, nil
}

func (r *Repo) Products(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *Repo) Categories(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *Repo) Settings(_ context.Context) (*domain.Settings, error) {
	s := r.settings
	return &s, nil
}

func bid(v int64) *int64 { return &v }

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05", value)
	return t
}

func seedAuctions() []domain.Auction {
	return []domain.Auction{
		{
			ID:            "auction-1",
			Title:         "Australia Day LIQUIDATION Auction: Fine Jewellery, Swiss Watches & Designer Bags",
			Description:   "Our flagship auction featuring an exceptional collection of fine jewellery, Swiss watches, and designer bags.",
			ImageURL:      "https://images.unsplash.com/photo-1617038260897-41a1f14a8ca0?w=800&q=80",
			StartDate:     date("2026-01-18T08:15:00"),
			EndDate:       date("2026-01-26T08:00:00"),
			IsOnline:      true,
			NumberOfLots:  428,
			BuyersPremium: 20,
			Status:        domain.StatusOpen,
			CatalogueURL:  "/auctions/auction-1/catalogue",
		},
		{
			ID:            "auction-2",
			Title:         "February Fine Jewellery Auction",
			Description:   "An exquisite selection of diamonds, gemstones, and precious metals.",
			ImageURL:      "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=800&q=80",
			StartDate:     date("2026-02-01T08:00:00"),
			EndDate:       date("2026-02-08T20:00:00"),
			IsOnline:      true,
			NumberOfLots:  312,
			BuyersPremium: 20,
			Status:        domain.StatusUpcoming,
		},
		{
			ID:            "auction-3",
			Title:         "Luxury Watch Collection Sale",
			Description:   "Featuring rare Rolex, Patek Philippe, Audemars Piguet, and more.",
			ImageURL:      "https://images.unsplash.com/photo-1548171915-e79a380a2a4b?w=800&q=80",
			StartDate:     date("2026-02-15T10:00:00"),
			EndDate:       date("2026-02-22T20:00:00"),
			IsOnline:      true,
			NumberOfLots:  156,
			BuyersPremium: 18,
			Status:        domain.StatusUpcoming,
		},
	}
}

func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "prod-1",
			AuctionID:   "auction-1",
			Title:       "Rolex Yacht Master Mens Watch 116622",
			Description: "Stunning Rolex Yacht-Master with platinum bezel. This timepiece features the iconic Rolesium combination.",
			Images: []string{
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=600&q=80",
				"https://images.unsplash.com/photo-1587836374828-4dbafa94cf0e?w=600&q=80",
			},
			LotNumber:    1,
			EstimateLow:  17000,
			EstimateHigh: 18000,
			CurrentBid:   bid(15500),
			BidsCount:    12,
			Category:     "watches-mens",
			Subcategory:  "rolex",
			Featured:     true,
			Specifications: map[string]string{
				"Brand": "Rolex", "Model": "Yacht Master", "Reference": "116622",
			},
		},
		{
			ID:          "prod-2",
			AuctionID:   "auction-1",
			Title:       "4.57ct Diamond Bangle",
			Description: "Exquisite 18k white gold bangle set with 4.57 carats of brilliant cut diamonds.",
			Images: []string{
				"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=600&q=80",
				"https://images.unsplash.com/photo-1611652022419-a9419f74343d?w=600&q=80",
			},
			LotNumber:    2,
			EstimateLow:  6800,
			EstimateHigh: 9300,
			CurrentBid:   bid(5200),
			BidsCount:    8,
			Category:     "bracelets",
			Featured:     true,
			Specifications: map[string]string{
				"Metal": "18k White Gold", "Diamond Weight": "4.57ct", "Diamond Quality": "VS Clarity",
			},
		},
		{
			ID:          "prod-3",
			AuctionID:   "auction-1",
			Title:       "Christian Dior Small 30 Montaigne Avenue Bag",
			Description: "The iconic 30 Montaigne bag in pristine condition. Features signature CD clasp.",
			Images: []string{
				"https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=600&q=80",
				"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=600&q=80",
			},
			LotNumber:    3,
			EstimateLow:  2000,
			EstimateHigh: 2500,
			CurrentBid:   bid(1800),
			BidsCount:    15,
			Category:     "designer-bags",
			Subcategory:  "dior",
			Featured:     true,
			Specifications: map[string]string{
				"Brand": "Christian Dior", "Model": "30 Montaigne", "Size": "Small",
			},
		},
		{
			ID:          "prod-4",
			AuctionID:   "auction-1",
			Title:       "1.36ct Sapphire & Diamond Earrings",
			Description: "Beautiful sapphire and diamond drop earrings in 18k white gold.",
			Images: []string{
				"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=600&q=80",
				"https://images.unsplash.com/photo-1599643477877-530eb83abc8e?w=600&q=80",
			},
			LotNumber:    4,
			EstimateLow:  2500,
			EstimateHigh: 2700,
			CurrentBid:   bid(2100),
			BidsCount:    6,
			Category:     "earrings",
			Featured:     true,
			Specifications: map[string]string{
				"Gemstone": "Sapphire", "Weight": "1.36ct", "Metal": "18k White Gold",
			},
		},
		{
			ID:          "prod-5",
			AuctionID:   "auction-1",
			Title:       "Van Cleef & Arpels 2014 Holiday Pendant",
			Description: "Limited edition holiday pendant from Van Cleef & Arpels. Rare collector's item.",
			Images: []string{
				"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=600&q=80",
				"https://images.unsplash.com/photo-1602751584552-8ba73aad10e1?w=600&q=80",
			},
			LotNumber:    5,
			EstimateLow:  6000,
			EstimateHigh: 7000,
			CurrentBid:   bid(5500),
			BidsCount:    9,
			Category:     "necklaces",
			Subcategory:  "designer",
			Featured:     true,
			Specifications: map[string]string{
				"Brand": "Van Cleef & Arpels", "Year": "2014", "Edition": "Holiday Limited",
			},
		},
		{
			ID:          "prod-6",
			AuctionID:   "auction-1",
			Title:       "Cartier Love Bracelet 18k Rose Gold",
			Description: "The iconic Cartier Love bracelet in 18k rose gold. Complete with box and papers.",
			Images: []string{
				"https://images.unsplash.com/photo-1611652022419-a9419f74343d?w=600&q=80",
				"https://images.unsplash.com/photo-1603561591411-07134e71a2a9?w=600&q=80",
			},
			LotNumber:    6,
			EstimateLow:  5500,
			EstimateHigh: 6500,
			CurrentBid:   bid(4800),
			BidsCount:    11,
			Category:     "bracelets",
			Subcategory:  "cartier",
			Featured:     false,
			Specifications: map[string]string{
				"Brand": "Cartier", "Model": "Love", "Metal": "18k Rose Gold",
			},
		},
		{
			ID:          "prod-7",
			AuctionID:   "auction-1",
			Title:       "2.01ct Loose Diamond GIA F VS2",
			Description: "GIA certified 2.01 carat round brilliant diamond. F color, VS2 clarity.",
			Images: []string{
				"https://images.unsplash.com/photo-1578632292335-df3abbb0d586?w=600&q=80",
				"https://images.unsplash.com/photo-1551751299-1b51cab2694c?w=600&q=80",
			},
			LotNumber:    7,
			EstimateLow:  12000,
			EstimateHigh: 15000,
			CurrentBid:   bid(10500),
			BidsCount:    7,
			Category:     "diamond",
			Featured:     false,
			Specifications: map[string]string{
				"Carat": "2.01", "Color": "F", "Clarity": "VS2", "Certification": "GIA",
			},
		},
		{
			ID:          "prod-8",
			AuctionID:   "auction-1",
			Title:       "Hermès Birkin 30 Togo Leather",
			Description: "Hermès Birkin 30 in Togo leather. Gold hardware. Excellent condition.",
			Images: []string{
				"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=600&q=80",
				"https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=600&q=80",
			},
			LotNumber:    8,
			EstimateLow:  15000,
			EstimateHigh: 18000,
			CurrentBid:   bid(14000),
			BidsCount:    18,
			Category:     "designer-bags",
			Subcategory:  "hermes",
			Featured:     false,
			Specifications: map[string]string{
				"Brand": "Hermès", "Model": "Birkin 30", "Material": "Togo Leather",
			},
		},
		{
			ID:          "prod-9",
			AuctionID:   "auction-1",
			Title:       "Patek Philippe Nautilus 5711",
			Description: "The legendary Patek Philippe Nautilus 5711/1A-010. Blue dial, stainless steel.",
			Images: []string{
				"https://images.unsplash.com/photo-1587836374828-4dbafa94cf0e?w=600&q=80",
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=600&q=80",
			},
			LotNumber:    9,
			EstimateLow:  85000,
			EstimateHigh: 95000,
			CurrentBid:   bid(78000),
			BidsCount:    22,
			Category:     "watches-mens",
			Subcategory:  "patek-philippe",
			Featured:     false,
			Specifications: map[string]string{
				"Brand": "Patek Philippe", "Model": "Nautilus", "Reference": "5711/1A-010",
			},
		},
		{
			ID:          "prod-10",
			AuctionID:   "auction-1",
			Title:       "South Sea Pearl & Diamond Ring",
			Description: "12.7mm South Sea pearl surrounded by brilliant diamonds in 18k white gold.",
			Images: []string{
				"https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=600&q=80",
				"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=600&q=80",
			},
			LotNumber:    10,
			EstimateLow:  3500,
			EstimateHigh: 4500,
			CurrentBid:   bid(3000),
			BidsCount:    5,
			Category:     "rings",
			Subcategory:  "pearl",
			Featured:     false,
			Specifications: map[string]string{
				"Pearl Size": "12.7mm", "Pearl Type": "South Sea", "Metal": "18k White Gold",
			},
		},
	}
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{
			ID:          "cat-swiss-watches",
			Name:        "Swiss Watches",
			Slug:        "swiss-watches",
			ImageURL:    "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&q=80",
			Description: "Luxury timepieces from the world's most prestigious brands",
		},
		{
			ID:          "cat-certified-diamonds",
			Name:        "Certified Natural Diamonds",
			Slug:        "certified-diamonds",
			ImageURL:    "https://images.unsplash.com/photo-1578632292335-df3abbb0d586?w=400&q=80",
			Description: "GIA and IGI certified loose diamonds",
		},
		{
			ID:          "cat-designer-bags",
			Name:        "Designer Bags",
			Slug:        "designer-bags",
			ImageURL:    "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=400&q=80",
			Description: "Authenticated luxury bags from top designers",
		},
		{
			ID:          "cat-earrings",
			Name:        "Earrings",
			Slug:        "earrings",
			ImageURL:    "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=400&q=80",
			Description: "Diamond, gemstone, and pearl earrings",
		},
		{
			ID:          "cat-rings",
			Name:        "Rings",
			Slug:        "rings",
			ImageURL:    "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=400&q=80",
			Description: "Engagement rings, dress rings, and eternity bands",
		},
		{
			ID:          "cat-pearl",
			Name:        "Pearl Jewellery",
			Slug:        "pearl",
			ImageURL:    "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=400&q=80",
			Description: "South Sea, Tahitian, and Akoya pearls",
		},
		{
			ID:          "cat-bracelets",
			Name:        "Bracelets",
			Slug:        "bracelets",
			ImageURL:    "https://images.unsplash.com/photo-1611652022419-a9419f74343d?w=400&q=80",
			Description: "Tennis bracelets, bangles, and charm bracelets",
		},
		{
			ID:          "cat-necklaces",
			Name:        "Necklaces",
			Slug:        "necklaces",
			ImageURL:    "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=400&q=80",
			Description: "Pearl strands, pendants, and chains",
		},
	}
}

func seedSettings() domain.Settings {
	return domain.Settings{
		SiteName:        "First State Auctions",
		SiteDescription: "Australia's premier auction house for fine jewellery, Swiss watches and designer bags",
		ContactEmail:    "info@firststateauctions.example",
		ContactPhone:    "+61 2 0000 0000",
		HeroSlides: []domain.HeroSlide{
			{
				ID:       "1",
				Title:    "Authenticity Fully Guaranteed",
				Subtitle: "First State Auctions guarantees authenticity of every item, ensuring you buy with confidence",
				ImageURL: "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=1920&q=80",
				LinkURL:  "/auctions",
				LinkText: "View Current Auctions",
			},
			{
				ID:       "2",
				Title:    "Buy the Jewellery You Love For Less",
				Subtitle: "Check out the current catalogue - Engagement rings, pearl necklaces, diamond studs at bargain prices",
				ImageURL: "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=1920&q=80",
				LinkURL:  "/auctions",
				LinkText: "Browse Catalogue",
			},
			{
				ID:       "3",
				Title:    "Record Breaking Swiss Watches",
				Subtitle: "Discover our extensive collection of luxury timepieces from the world's most prestigious brands",
				ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=1920&q=80",
				LinkURL:  "/categories/swiss-watches",
				LinkText: "View Watches",
			},
			{
				ID:       "4",
				Title:    "Designer Bags Collection",
				Subtitle: "Authenticated luxury bags from Hermès, Chanel, Louis Vuitton, and more",
				ImageURL: "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=1920&q=80",
				LinkURL:  "/categories/designer-bags",
				LinkText: "Shop Designer Bags",
			},
		},
	}
}
