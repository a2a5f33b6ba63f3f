package models

import "time"

type ItemStatus string

const (
	ItemActive  ItemStatus = "active"
	ItemSold    ItemStatus = "sold"
	ItemRemoved ItemStatus = "removed"
)

type Auction struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CategoryID  uint      `gorm:"index" json:"category_id"`
	Status      string    `gorm:"type:varchar(20)" json:"status"`

	Category Category      `gorm:"foreignKey:CategoryID" json:"-"`
	Bids     []Bid         `gorm:"foreignKey:AuctionID" json:"-"`
	Items    []AuctionItem `gorm:"foreignKey:AuctionID" json:"-"`
}

type AuctionItem struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"type:varchar(200);not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	BasePrice   float64    `json:"base_price"`
	ImageURL    string     `gorm:"type:varchar(300)" json:"image_url"`
	Status      ItemStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	AuctionID   uint       `gorm:"index" json:"auction_id"`
}
