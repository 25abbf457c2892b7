package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"merchant/api/internal/config"
	"merchant/api/internal/infra/postgres"
	"merchant/api/internal/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubProvider struct {
	phonetic string
	err      error
	calls    int
}

func (p *stubProvider) Phonetics(ctx context.Context, name string) (string, error) {
	p.calls++
	return p.phonetic, p.err
}

type fakeBucket struct {
	objects map[string]string
}

func (b *fakeBucket) GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error) {
	body, ok := b.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("The specified key does not exist.")}
	}
	return &awss3.GetObjectOutput{Body: io.NopCloser(bytes.NewBufferString(body))}, nil
}

type fixture struct {
	services *Services
	db       *gorm.DB
	mr       *miniredis.Miniredis
	bucket   *fakeBucket
	provider *stubProvider
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Redis.KeyPrefix = "merchant:"
	cfg.Redis.ScanCount = 10
	cfg.S3.Bucket = "merchants"
	cfg.S3.IdNamespace = "merchants"
	cfg.S3.EmailNamespace = "merchants-email"
	cfg.Phonetics.Timeout = time.Second
	cfg.Api.RateLimit = 150
	return cfg
}

func setup(t *testing.T) fixture {
	t.Helper()

	db, err := postgres.InitTest()
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	bucket := &fakeBucket{objects: map[string]string{}}
	provider := &stubProvider{phonetic: "/æn/"}

	return fixture{
		services: NewServices(db, rdb, bucket, provider, logger.New(io.Discard, false), testConfig()),
		db:       db,
		mr:       mr,
		bucket:   bucket,
		provider: provider,
	}
}

var errProviderDown = errors.New("provider down")
