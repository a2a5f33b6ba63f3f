package models

import "time"

type Role string

const (
	RoleBidder Role = "bidder"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"type:varchar(100);not null" json:"name"`
	Email        string     `gorm:"type:varchar(120);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"` // Never expose password hash in JSON
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	Role         Role       `gorm:"type:varchar(20);not null;default:'bidder'" json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Bids []Bid `gorm:"foreignKey:UserID" json:"-"`
}
