package repository

import (
	"merchant/api/internal/domain"

	"gorm.io/gorm"
)

type Merchants interface {
	FindByID(tx *gorm.DB, id uint) (*domain.Merchants, error)
	FindByEmail(tx *gorm.DB, email string) (*domain.Merchants, error)
	ExistsByEmail(tx *gorm.DB, email string) (bool, error)
	FindAll(tx *gorm.DB) ([]domain.Merchants, error)
	Create(tx *gorm.DB, merchant *domain.Merchants) error
	UpdateDetails(tx *gorm.DB, merchant *domain.Merchants) error
	DeleteByID(tx *gorm.DB, id uint) error
}

type Repositories struct {
	Merchants Merchants
}

func New() *Repositories {
	return &Repositories{
		Merchants: InitMerchantsRepo(),
	}
}
