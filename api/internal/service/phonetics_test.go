package service

import (
	"context"
	"io"
	"testing"
	"time"

	"merchant/api/internal/logger"

	"github.com/stretchr/testify/assert"
)

type slowProvider struct{}

func (slowProvider) Phonetics(ctx context.Context, name string) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestPhoneticsService_Lookup(t *testing.T) {
	ctx := context.Background()
	log := logger.New(io.Discard, false)

	t.Run("Should trim provider answer", func(t *testing.T) {
		s := NewPhoneticsService(&stubProvider{phonetic: " /æn/ \n"}, time.Second, log)
		assert.Equal(t, "/æn/", s.Lookup(ctx, "Ann"))
	})

	t.Run("Should degrade to empty on provider error", func(t *testing.T) {
		s := NewPhoneticsService(&stubProvider{err: errProviderDown}, time.Second, log)
		assert.Empty(t, s.Lookup(ctx, "Ann"))
	})

	t.Run("Should degrade to empty on timeout", func(t *testing.T) {
		s := NewPhoneticsService(slowProvider{}, 20*time.Millisecond, log)
		assert.Empty(t, s.Lookup(ctx, "Ann"))
	})

	t.Run("Should skip lookup without provider or name", func(t *testing.T) {
		p := &stubProvider{phonetic: "/æn/"}
		assert.Empty(t, NewPhoneticsService(nil, time.Second, log).Lookup(ctx, "Ann"))
		assert.Empty(t, NewPhoneticsService(p, time.Second, log).Lookup(ctx, "  "))
		assert.Zero(t, p.calls)
	})
}
