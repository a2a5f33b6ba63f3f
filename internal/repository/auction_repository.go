package repository

import (
	"errors"

	"gorm.io/gorm"

	"auction-admin/internal/models"
)

type AuctionRepository struct {
	db *gorm.DB
}

func NewAuctionRepository(db *gorm.DB) *AuctionRepository {
	return &AuctionRepository{db: db}
}

func (r *AuctionRepository) Create(auction *models.Auction) error {
	return r.db.Create(auction).Error
}

func (r *AuctionRepository) GetByID(id uint) (*models.Auction, error) {
	var auction models.Auction
	err := r.db.Preload("Category").First(&auction, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &auction, nil
}

func (r *AuctionRepository) GetAll() ([]models.Auction, error) {
	var auctions []models.Auction
	err := r.db.Preload("Category").Order("id").Find(&auctions).Error
	if err != nil {
		return nil, err
	}
	return auctions, nil
}

func (r *AuctionRepository) Update(auction *models.Auction) error {
	return r.db.Save(auction).Error
}

func (r *AuctionRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Auction{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes the auction row only. Bids and items referencing it are
// left to the store's FK policy.
func (r *AuctionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Auction{}, id).Error
}

func (r *AuctionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Auction{}).Count(&count).Error
	return count, err
}
