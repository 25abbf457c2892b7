package service

import (
	"context"
	"strings"
	"time"

	"merchant/api/internal/logger"
)

// PhoneticsService enriches new merchants on a best-effort basis: provider
// failures and empty answers both end up as "".
type PhoneticsService struct {
	provider PhoneticsProvider
	timeout  time.Duration
	l        logger.Logger
}

func NewPhoneticsService(provider PhoneticsProvider, timeout time.Duration, l logger.Logger) *PhoneticsService {
	return &PhoneticsService{provider: provider, timeout: timeout, l: l}
}

func (s *PhoneticsService) Lookup(ctx context.Context, name string) string {
	if s.provider == nil || strings.TrimSpace(name) == "" {
		return ""
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	phonetic, err := s.provider.Phonetics(ctx, name)
	if err != nil {
		s.l.Error("phonetics lookup failed", logger.LS_MERCHANTS, false, "name", name, "error", err.Error())
		return ""
	}

	return strings.TrimSpace(phonetic)
}
