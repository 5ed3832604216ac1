package domain

// HeroSlide — слайд карусели на главной странице.
type HeroSlide struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
	LinkURL  string `json:"linkUrl"`
	LinkText string `json:"linkText"`
}

// Settings — общие настройки сайта из settings/site.json.
type Settings struct {
	SiteName        string      `json:"siteName"`
	SiteDescription string      `json:"siteDescription"`
	ContactEmail    string      `json:"contactEmail"`
	ContactPhone    string      `json:"contactPhone"`
	HeroSlides      []HeroSlide `json:"heroSlides"`
}
