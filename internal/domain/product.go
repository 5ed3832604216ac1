package domain

// Product описывает лот аукциона.
type Product struct {
	ID             string            `json:"id"`
	AuctionID      string            `json:"auctionId"`
	Title          string            `json:"title"`
	Description    string            `json:"description"`
	Images         []string          `json:"images"`
	LotNumber      int               `json:"lotNumber"`
	EstimateLow    int64             `json:"estimateLow"`
	EstimateHigh   int64             `json:"estimateHigh"`
	CurrentBid     *int64            `json:"currentBid,omitempty"` // nil — ставок не было
	BidsCount      int               `json:"bidsCount"`
	Category       string            `json:"category"`
	Subcategory    string            `json:"subcategory,omitempty"`
	Featured       bool              `json:"featured"`
	Specifications map[string]string `json:"specifications,omitempty"`
}
