package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`

	Auctions []Auction `gorm:"foreignKey:CategoryID" json:"-"`
}
