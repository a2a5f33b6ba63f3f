package web

import (
	"fmt"

	"auction-admin/internal/models"
)

// BidRow is the single shape the bids page renders, whether the row comes
// from the store or is a synthesized placeholder. Placeholder marks which.
type BidRow struct {
	ID          uint
	AuctionName string
	UserName    string
	Amount      float64
	BidTime     string
	Approved    bool
	Rejected    bool
	Placeholder bool
}

// BidRowFromModel converts a persisted bid, preloaded with its auction and
// user, into the row the page renders.
func BidRowFromModel(bid models.Bid) BidRow {
	return BidRow{
		ID:          bid.ID,
		AuctionName: bid.Auction.Title,
		UserName:    bid.User.Name,
		Amount:      bid.Amount,
		BidTime:     bid.BidTime.Format("2006-01-02 15:04:05"),
		Approved:    bid.Approved,
		Rejected:    bid.Rejected,
	}
}

// PlaceholderBids synthesizes the ten demo rows shown when no bids exist.
// They are never persisted; a later call regenerates identical rows.
func PlaceholderBids() []BidRow {
	rows := make([]BidRow, 0, 10)
	for i := 0; i < 10; i++ {
		rows = append(rows, BidRow{
			ID:          uint(i + 1),
			AuctionName: fmt.Sprintf("Auction %d", i+1),
			UserName:    fmt.Sprintf("User %d", i+1),
			Amount:      float64(1000 + i*100),
			BidTime:     fmt.Sprintf("2025-09-30 12:%02d:00", i),
			Placeholder: true,
		})
	}
	return rows
}
