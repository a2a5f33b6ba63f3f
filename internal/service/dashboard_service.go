package service

import (
	"auction-admin/internal/models"
	"auction-admin/internal/repository"
)

// DashboardCounts is the aggregate snapshot rendered on the dashboard.
type DashboardCounts struct {
	Users         int64
	ActiveUsers   int64
	InactiveUsers int64
	Items         int64
	ActiveItems   int64
	Auctions      int64
	Bids          int64
	Categories    int64
}

type DashboardService struct {
	userRepo     *repository.UserRepository
	itemRepo     *repository.ItemRepository
	auctionRepo  *repository.AuctionRepository
	bidRepo      *repository.BidRepository
	categoryRepo *repository.CategoryRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	itemRepo *repository.ItemRepository,
	auctionRepo *repository.AuctionRepository,
	bidRepo *repository.BidRepository,
	categoryRepo *repository.CategoryRepository,
) *DashboardService {
	return &DashboardService{
		userRepo:     userRepo,
		itemRepo:     itemRepo,
		auctionRepo:  auctionRepo,
		bidRepo:      bidRepo,
		categoryRepo: categoryRepo,
	}
}

// Counts is a pure read; the first failing count aborts the snapshot.
func (s *DashboardService) Counts() (*DashboardCounts, error) {
	var c DashboardCounts
	var err error

	if c.Users, err = s.userRepo.Count(); err != nil {
		return nil, err
	}
	if c.ActiveUsers, err = s.userRepo.CountByStatus(models.UserActive); err != nil {
		return nil, err
	}
	if c.InactiveUsers, err = s.userRepo.CountByStatus(models.UserInactive); err != nil {
		return nil, err
	}
	if c.Items, err = s.itemRepo.Count(); err != nil {
		return nil, err
	}
	if c.ActiveItems, err = s.itemRepo.CountByStatus(models.ItemActive); err != nil {
		return nil, err
	}
	if c.Auctions, err = s.auctionRepo.Count(); err != nil {
		return nil, err
	}
	if c.Bids, err = s.bidRepo.Count(); err != nil {
		return nil, err
	}
	if c.Categories, err = s.categoryRepo.Count(); err != nil {
		return nil, err
	}

	return &c, nil
}
