package domain

// Category описывает навигационную категорию каталога.
// ProductCount не хранится в контенте, а выводится агрегатором по текущему набору лотов.
type Category struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Slug           string  `json:"slug"`
	ImageURL       string  `json:"imageUrl"`
	Description    string  `json:"description,omitempty"`
	ProductCount   int     `json:"productCount"`
	ParentCategory *string `json:"parentCategory,omitempty"`
}
