package repository

import (
	"errors"

	"gorm.io/gorm"

	"auction-admin/internal/models"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(item *models.AuctionItem) error {
	return r.db.Create(item).Error
}

func (r *ItemRepository) GetByID(id uint) (*models.AuctionItem, error) {
	var item models.AuctionItem
	err := r.db.First(&item, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &item, nil
}

func (r *ItemRepository) GetAll() ([]models.AuctionItem, error) {
	var items []models.AuctionItem
	err := r.db.Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) Update(item *models.AuctionItem) error {
	return r.db.Save(item).Error
}

func (r *ItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.AuctionItem{}, id).Error
}

func (r *ItemRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.AuctionItem{}).Count(&count).Error
	return count, err
}

func (r *ItemRepository) CountByStatus(status models.ItemStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.AuctionItem{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
