package v1

import (
	"net/http"

	"merchant/api/internal/domain"

	"github.com/gin-gonic/gin"
)

// disabled when no private key is configured
func (h *Handler) adminAccessMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.config.PrivateKey != "" && h.config.PrivateKey != c.Request.Header.Get("Access") {
			responseErr(c, http.StatusUnauthorized, domain.ErrMsgAccessError, "")
			return
		}
		c.Next()
	}
}

func (h *Handler) rateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.createLimiter.Exceeded(c.ClientIP()) {
			responseErr(c, http.StatusTooManyRequests, domain.ErrMsgRateLimitExceeded, "")
			return
		}
		c.Next()
	}
}
