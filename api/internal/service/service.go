package service

import (
	"context"

	"merchant/api/internal/config"
	"merchant/api/internal/domain"
	"merchant/api/internal/loader"
	"merchant/api/internal/logger"
	"merchant/api/internal/repository"

	"gorm.io/gorm"
)

type Merchants interface {
	// rejects with domain.ErrDuplicateEmail when the relational store has the email
	Create(ctx context.Context, data domain.MerchantCreate) (*domain.Merchants, error)
	// tries key-value, relational and blob stores in that order
	GetByID(ctx context.Context, id uint) (*domain.Merchants, bool, error)
	GetByEmail(ctx context.Context, email string) (*domain.Merchants, bool, error)
	// relational store only
	ListAll(ctx context.Context) ([]domain.Merchants, error)
	// relational store only, domain.ErrMerchantNotFound when absent
	Update(ctx context.Context, id uint, data domain.MerchantUpdate) (*domain.Merchants, error)
	// no-op for a missing id
	Delete(ctx context.Context, id uint) error
}

type Phonetics interface {
	// never fails, "" when no transcription is available
	Lookup(ctx context.Context, name string) string
}

// PhoneticsProvider is the external transcription source: the dictionary API or
// the phonetics service over nats.
type PhoneticsProvider interface {
	Phonetics(ctx context.Context, name string) (string, error)
}

type Services struct {
	Merchants Merchants
	Phonetics Phonetics
}

func NewServices(db *gorm.DB, rdb loader.RedisClient, objects loader.ObjectGetter, provider PhoneticsProvider, l logger.Logger, config *config.Config) *Services {
	repos := repository.New()

	strategy := loader.NewStrategy(l,
		loader.NewRedisLoader(rdb, config.Redis.KeyPrefix, config.Redis.ScanCount),
		loader.NewPostgresLoader(db, repos.Merchants),
		loader.NewS3Loader(objects, config.S3.Bucket, config.S3.IdNamespace, config.S3.EmailNamespace),
	)

	phoneticsService := NewPhoneticsService(provider, config.Phonetics.Timeout, l)

	return &Services{
		Merchants: NewMerchantsService(db, repos.Merchants, strategy, phoneticsService, l),
		Phonetics: phoneticsService,
	}
}
