package repository

import (
	"merchant/api/internal/domain"

	"gorm.io/gorm"
)

type MerchantsRepo struct {
}

func InitMerchantsRepo() *MerchantsRepo {
	return &MerchantsRepo{}
}

func (r *MerchantsRepo) FindByID(tx *gorm.DB, id uint) (*domain.Merchants, error) {
	var merchant domain.Merchants
	return &merchant, tx.Where("id = ?", id).First(&merchant).Error
}

func (r *MerchantsRepo) FindByEmail(tx *gorm.DB, email string) (*domain.Merchants, error) {
	var merchant domain.Merchants
	return &merchant, tx.Where("email = ?", email).First(&merchant).Error
}

func (r *MerchantsRepo) ExistsByEmail(tx *gorm.DB, email string) (bool, error) {
	var count int64
	err := tx.Model(&domain.Merchants{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *MerchantsRepo) FindAll(tx *gorm.DB) ([]domain.Merchants, error) {
	merchants := []domain.Merchants{}
	return merchants, tx.Order("id").Find(&merchants).Error
}

func (r *MerchantsRepo) Create(tx *gorm.DB, merchant *domain.Merchants) error {
	return tx.Create(merchant).Error
}

// UpdateDetails writes only name and business type. It never inserts: a row
// deleted in the meantime is reported as gorm.ErrRecordNotFound.
func (r *MerchantsRepo) UpdateDetails(tx *gorm.DB, merchant *domain.Merchants) error {
	res := tx.Model(merchant).Select("name", "business_type", "updated_at").Updates(merchant)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// deleting a missing id affects no rows and is not an error
func (r *MerchantsRepo) DeleteByID(tx *gorm.DB, id uint) error {
	return tx.Delete(&domain.Merchants{}, id).Error
}
