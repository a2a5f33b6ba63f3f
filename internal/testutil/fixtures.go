package testutil

import (
	"time"

	"auction-admin/internal/models"
	"auction-admin/internal/utils"
)

// CreateTestUser builds a user with a real Argon2id hash so login flows can
// be exercised end to end.
func CreateTestUser(name, email, password string, status models.UserStatus, role models.Role) (*models.User, error) {
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Status:       status,
		Role:         role,
	}, nil
}

// DefaultTestUser returns an active bidder account.
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("Test User", "test@example.com", "Test123456", models.UserActive, models.RoleBidder)
}

// CreateTestAuction builds an auction attached to the given category.
func CreateTestAuction(title string, categoryID uint) *models.Auction {
	return &models.Auction{
		Title:       title,
		Description: "test auction",
		StartDate:   time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC),
		CategoryID:  categoryID,
		Status:      "open",
	}
}

// CreateTestBid builds a pending bid.
func CreateTestBid(auctionID, userID uint, amount float64) *models.Bid {
	return &models.Bid{
		AuctionID: auctionID,
		UserID:    userID,
		Amount:    amount,
		BidTime:   time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC),
	}
}
