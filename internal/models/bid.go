package models

import "time"

// Bid is a monetary offer against an auction. Approved and Rejected are
// independent operator-set flags; both default to false and nothing forces
// them to stay mutually exclusive.
type Bid struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	AuctionID uint      `gorm:"index" json:"auction_id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Amount    float64   `json:"amount"`
	BidTime   time.Time `json:"bid_time"`
	Approved  bool      `gorm:"default:false" json:"approved"`
	Rejected  bool      `gorm:"default:false" json:"rejected"`

	Auction Auction `gorm:"foreignKey:AuctionID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}
