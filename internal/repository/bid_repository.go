package repository

import (
	"errors"

	"gorm.io/gorm"

	"auction-admin/internal/models"
)

type BidRepository struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{db: db}
}

func (r *BidRepository) Create(bid *models.Bid) error {
	return r.db.Create(bid).Error
}

func (r *BidRepository) GetByID(id uint) (*models.Bid, error) {
	var bid models.Bid
	err := r.db.Preload("Auction").Preload("User").First(&bid, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &bid, nil
}

func (r *BidRepository) GetAll() ([]models.Bid, error) {
	var bids []models.Bid
	err := r.db.Preload("Auction").Preload("User").Order("id").Find(&bids).Error
	if err != nil {
		return nil, err
	}
	return bids, nil
}

// SetFlags writes both operator flags in one statement so approve and reject
// always overwrite each other's previous decision.
func (r *BidRepository) SetFlags(id uint, approved, rejected bool) error {
	return r.db.Model(&models.Bid{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"approved": approved,
			"rejected": rejected,
		}).Error
}

func (r *BidRepository) Delete(id uint) error {
	return r.db.Delete(&models.Bid{}, id).Error
}

func (r *BidRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Bid{}).Count(&count).Error
	return count, err
}
