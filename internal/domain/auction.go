package domain

import "time"

// AuctionStatus — статус аукциона. Задается в контенте, не пересчитывается из дат.
type AuctionStatus string

const (
	StatusUpcoming AuctionStatus = "upcoming"
	StatusOpen     AuctionStatus = "open"
	StatusClosed   AuctionStatus = "closed"
)

// Auction описывает аукцион.
type Auction struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	ImageURL      string        `json:"imageUrl"`
	StartDate     time.Time     `json:"startDate"`
	EndDate       time.Time     `json:"endDate"`
	IsOnline      bool          `json:"isOnline"`
	Location      string        `json:"location,omitempty"`
	NumberOfLots  int           `json:"numberOfLots"`
	BuyersPremium float64       `json:"buyersPremium"` // процент, только для отображения
	Status        AuctionStatus `json:"status"`
	CatalogueURL  string        `json:"catalogueUrl,omitempty"`
}

// Remaining — остаток времени до закрытия аукциона, без отрицательных компонент.
type Remaining struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Ended   bool `json:"ended"`
}

// TimeUntil считает остаток до end целочисленным делением миллисекундной дельты.
// Если дельта не положительная, возвращается признак Ended вместо отрицательных значений.
func TimeUntil(end, now time.Time) Remaining {
	delta := end.Sub(now).Milliseconds()
	if delta <= 0 {
		return Remaining{Ended: true}
	}

	return Remaining{
		Days:    int(delta / (1000 * 60 * 60 * 24)),
		Hours:   int(delta / (1000 * 60 * 60) % 24),
		Minutes: int(delta / (1000 * 60) % 60),
		Seconds: int(delta / 1000 % 60),
	}
}
