package delivery

import (
	"merchant/api/internal/config"
	v1 "merchant/api/internal/delivery/rest/v1"
	"merchant/api/internal/logger"
	"merchant/api/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Services *service.Services
	Config   *config.Config
	Log      logger.Logger
}

func (h *Handler) InitAPI(r *gin.Engine) {
	v1Group := r.Group("/v1")

	v1Handler := v1.NewHandler(h.Services, h.Config, h.Log)

	{
		v1Handler.InitRoutes(v1Group)
	}
}

func InitHandler(services *service.Services, config *config.Config, log logger.Logger) *Handler {
	return &Handler{
		Config:   config,
		Log:      log,
		Services: services,
	}
}
