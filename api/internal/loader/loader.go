// Package loader reads merchants from the three backing stores and hides
// which one currently holds a record.
//
// Every Loader reports one of three outcomes: a hit (merchant, true, nil),
// a miss (nil, false, nil) or a fatal error. A record that is present but
// malformed is a fatal error wrapping domain.ErrValidation, never a miss.
// Loaders do not retry and do not cache.
package loader

import (
	"context"

	"merchant/api/internal/domain"
	"merchant/api/internal/logger"
)

type Loader interface {
	LoadMerchant(ctx context.Context, id string) (*domain.Merchants, bool, error)
	LoadMerchantByEmail(ctx context.Context, email string) (*domain.Merchants, bool, error)
}

// Named loaders are reported by name in logs.
type Named interface {
	Name() string
}

// Strategy tries its loaders in order. The first hit wins; a miss moves on to
// the next loader; an error stops the chain and is returned unchanged.
// Loaders are called sequentially, never concurrently.
type Strategy struct {
	loaders []Loader
	log     logger.Logger
}

// NewStrategy keeps the given priority order: key-value, relational, blob.
func NewStrategy(log logger.Logger, loaders ...Loader) *Strategy {
	return &Strategy{loaders: loaders, log: log}
}

func (s *Strategy) LoadMerchant(ctx context.Context, id string) (*domain.Merchants, bool, error) {
	return s.load(ctx, "id", id, func(l Loader) (*domain.Merchants, bool, error) {
		return l.LoadMerchant(ctx, id)
	})
}

func (s *Strategy) LoadMerchantByEmail(ctx context.Context, email string) (*domain.Merchants, bool, error) {
	return s.load(ctx, "email", email, func(l Loader) (*domain.Merchants, bool, error) {
		return l.LoadMerchantByEmail(ctx, email)
	})
}

func (s *Strategy) load(ctx context.Context, by, key string, lookup func(Loader) (*domain.Merchants, bool, error)) (*domain.Merchants, bool, error) {
	for _, l := range s.loaders {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}

		merchant, found, err := lookup(l)
		if err != nil {
			s.log.TemplStoreErr("merchant lookup failed", loaderName(l), key, err)
			return nil, false, err
		}
		if found {
			s.log.Debug("merchant hit", "store", loaderName(l), "by", by, "key", key)
			return merchant, true, nil
		}
		s.log.Debug("merchant miss", "store", loaderName(l), "by", by, "key", key)
	}

	return nil, false, nil
}

func loaderName(l Loader) string {
	if n, ok := l.(Named); ok {
		return n.Name()
	}
	return logger.NA
}
