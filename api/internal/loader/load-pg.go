package loader

import (
	"context"
	"strconv"

	"merchant/api/internal/domain"
	"merchant/api/internal/infra/postgres"
	"merchant/api/internal/repository"

	"gorm.io/gorm"
)

// PostgresLoader reads from the system of record. Rows map one-to-one onto
// the entity, only the id is converted from its string form.
type PostgresLoader struct {
	db   *gorm.DB
	repo repository.Merchants
}

func NewPostgresLoader(db *gorm.DB, repo repository.Merchants) *PostgresLoader {
	return &PostgresLoader{db: db, repo: repo}
}

func (l *PostgresLoader) Name() string {
	return domain.StorePostgres
}

func (l *PostgresLoader) LoadMerchant(ctx context.Context, id string) (*domain.Merchants, bool, error) {
	// no row can carry an id that is not a positive integer
	numericID, err := strconv.ParseUint(id, 10, 0)
	if err != nil || numericID == 0 {
		return nil, false, nil
	}

	merchant, err := l.repo.FindByID(l.db.WithContext(ctx), uint(numericID))
	return l.result("find by id", id, merchant, err)
}

func (l *PostgresLoader) LoadMerchantByEmail(ctx context.Context, email string) (*domain.Merchants, bool, error) {
	if email == "" {
		return nil, false, nil
	}

	merchant, err := l.repo.FindByEmail(l.db.WithContext(ctx), email)
	return l.result("find by email", email, merchant, err)
}

func (l *PostgresLoader) result(op, key string, merchant *domain.Merchants, err error) (*domain.Merchants, bool, error) {
	if postgres.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, domain.NewStoreError(domain.StorePostgres, op, key, domain.ErrStoreUnavailable, err)
	}
	if err := merchant.Validate(); err != nil {
		return nil, false, domain.NewStoreError(domain.StorePostgres, op, key, domain.ErrValidation, err)
	}
	return merchant, true, nil
}
