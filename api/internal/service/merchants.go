package service

import (
	"context"
	"fmt"
	"strconv"

	"merchant/api/internal/domain"
	"merchant/api/internal/infra/postgres"
	"merchant/api/internal/loader"
	"merchant/api/internal/logger"
	"merchant/api/internal/repository"

	"gorm.io/gorm"
)

type MerchantsService struct {
	repo      repository.Merchants
	db        *gorm.DB
	loader    loader.Loader
	phonetics Phonetics
	l         logger.Logger
}

func NewMerchantsService(db *gorm.DB, repo repository.Merchants, loader loader.Loader, phonetics Phonetics, l logger.Logger) *MerchantsService {
	return &MerchantsService{repo: repo, db: db, loader: loader, phonetics: phonetics, l: l}
}

func (s *MerchantsService) Create(ctx context.Context, data domain.MerchantCreate) (*domain.Merchants, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(s.db.WithContext(ctx), data.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	merchant := &domain.Merchants{
		Name:         data.Name,
		Email:        data.Email,
		BusinessType: data.BusinessType,
		Phonetics:    s.phonetics.Lookup(ctx, data.Name),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.Create(tx, merchant)
	})
	if postgres.IsDuplicateKey(err) {
		// lost a race with a concurrent create of the same email
		return nil, domain.ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("create merchant: %w", err)
	}

	s.l.TemplMerchantInfo("merchant created", merchant.IDString(), merchant.Email)
	return merchant, nil
}

func (s *MerchantsService) GetByID(ctx context.Context, id uint) (*domain.Merchants, bool, error) {
	return s.loader.LoadMerchant(ctx, strconv.FormatUint(uint64(id), 10))
}

func (s *MerchantsService) GetByEmail(ctx context.Context, email string) (*domain.Merchants, bool, error) {
	return s.loader.LoadMerchantByEmail(ctx, email)
}

func (s *MerchantsService) ListAll(ctx context.Context) ([]domain.Merchants, error) {
	return s.repo.FindAll(s.db.WithContext(ctx))
}

func (s *MerchantsService) Update(ctx context.Context, id uint, data domain.MerchantUpdate) (*domain.Merchants, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	var merchant *domain.Merchants
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.repo.FindByID(tx, id)
		if postgres.IsNotFound(err) {
			return domain.ErrMerchantNotFound
		}
		if err != nil {
			return err
		}

		current.Name = data.Name
		current.BusinessType = data.BusinessType

		err = s.repo.UpdateDetails(tx, current)
		if postgres.IsNotFound(err) {
			return domain.ErrMerchantNotFound
		}
		if err != nil {
			return err
		}
		merchant = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.l.TemplMerchantInfo("merchant updated", merchant.IDString(), merchant.Email)
	return merchant, nil
}

func (s *MerchantsService) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.DeleteByID(tx, id)
	})
}
