package loader

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"merchant/api/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// hash fields of a merchant record, every value is a string
const (
	fieldID           = "id"
	fieldName         = "name"
	fieldEmail        = "email"
	fieldBusinessType = "businessType"
	fieldPhonetics    = "phonetics"
	fieldCreatedAt    = "createdAt"
	fieldUpdatedAt    = "updatedAt"
)

type RedisClient interface {
	HGetAll(ctx context.Context, key string) *goredis.MapStringStringCmd
	HGet(ctx context.Context, key, field string) *goredis.StringCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *goredis.ScanCmd
}

// RedisLoader reads merchants stored as one hash per merchant at <prefix><id>.
type RedisLoader struct {
	client    RedisClient
	prefix    string
	scanCount int64
}

func NewRedisLoader(client RedisClient, prefix string, scanCount int64) *RedisLoader {
	if scanCount <= 0 {
		scanCount = 100
	}
	return &RedisLoader{client: client, prefix: prefix, scanCount: scanCount}
}

func (l *RedisLoader) Name() string {
	return domain.StoreRedis
}

func (l *RedisLoader) LoadMerchant(ctx context.Context, id string) (*domain.Merchants, bool, error) {
	return l.loadKey(ctx, l.prefix+id)
}

// LoadMerchantByEmail walks the whole keyspace under the prefix: email is a
// plain hash field, not a key, so this lookup is linear in the number of merchants.
func (l *RedisLoader) LoadMerchantByEmail(ctx context.Context, email string) (*domain.Merchants, bool, error) {
	if email == "" {
		return nil, false, nil
	}

	var cursor uint64
	match := l.prefix + "*"

	for {
		keys, next, err := l.client.Scan(ctx, cursor, match, l.scanCount).Result()
		if err != nil {
			return nil, false, domain.NewStoreError(domain.StoreRedis, "scan", match, domain.ErrStoreUnavailable, err)
		}

		for _, key := range keys {
			stored, err := l.client.HGet(ctx, key, fieldEmail).Result()
			if errors.Is(err, goredis.Nil) {
				continue
			}
			if err != nil {
				return nil, false, l.classify("hget", key, err)
			}
			if stored == email {
				return l.loadKey(ctx, key)
			}
		}

		cursor = next
		if cursor == 0 {
			return nil, false, nil
		}
	}
}

func (l *RedisLoader) loadKey(ctx context.Context, key string) (*domain.Merchants, bool, error) {
	fields, err := l.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, false, l.classify("hgetall", key, err)
	}
	// redis answers an empty hash for a missing key
	if len(fields) == 0 {
		return nil, false, nil
	}

	merchant, err := merchantFromHash(fields)
	if err != nil {
		return nil, false, domain.NewStoreError(domain.StoreRedis, "normalize", key, domain.ErrValidation, err)
	}
	return merchant, true, nil
}

// a key holding something other than a hash is a malformed record
func (l *RedisLoader) classify(op, key string, err error) error {
	if goredis.HasErrorPrefix(err, "WRONGTYPE") {
		return domain.NewStoreError(domain.StoreRedis, op, key, domain.ErrValidation, err)
	}
	return domain.NewStoreError(domain.StoreRedis, op, key, domain.ErrStoreUnavailable, err)
}

func merchantFromHash(fields map[string]string) (*domain.Merchants, error) {
	rawID, ok := fields[fieldID]
	if !ok {
		return nil, fmt.Errorf("%w: field %q is missing", domain.ErrValidation, fieldID)
	}
	id, err := strconv.ParseUint(rawID, 10, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: field %q: %v", domain.ErrValidation, fieldID, err)
	}

	merchant := &domain.Merchants{
		ID:        uint(id),
		Name:      fields[fieldName],
		Email:     fields[fieldEmail],
		Phonetics: fields[fieldPhonetics],
	}

	if raw := fields[fieldBusinessType]; raw != "" {
		bt, err := domain.ParseBusinessType(raw)
		if err != nil {
			return nil, err
		}
		merchant.BusinessType = &bt
	}

	if merchant.CreatedAt, err = parseTime(fields, fieldCreatedAt); err != nil {
		return nil, err
	}
	if merchant.UpdatedAt, err = parseTime(fields, fieldUpdatedAt); err != nil {
		return nil, err
	}

	if err := merchant.Validate(); err != nil {
		return nil, err
	}
	return merchant, nil
}

func parseTime(fields map[string]string, field string) (time.Time, error) {
	raw := fields[field]
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: field %q: %v", domain.ErrValidation, field, err)
	}
	return t, nil
}
