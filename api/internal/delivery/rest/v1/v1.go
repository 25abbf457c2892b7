package v1

import (
	"time"

	"merchant/api/internal/config"
	"merchant/api/internal/infra/cache"
	"merchant/api/internal/logger"
	"merchant/api/internal/service"

	"github.com/gin-gonic/gin"
)

const EXPIRATION_SECONDS = 30

type Handler struct {
	services *service.Services
	config   *config.Config
	log      logger.Logger

	createLimiter *cache.RateLimiter
}

func (h *Handler) InitRoutes(g *gin.RouterGroup) {
	{
		h.initMerchantRoutes(g)
	}
}

func NewHandler(services *service.Services, config *config.Config, log logger.Logger) *Handler {
	return &Handler{
		config:        config,
		log:           log,
		services:      services,
		createLimiter: cache.NewRateLimiter(config.Api.RateLimit, EXPIRATION_SECONDS*time.Second),
	}
}
