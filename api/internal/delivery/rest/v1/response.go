package v1

import (
	"merchant/api/internal/domain"

	"github.com/gin-gonic/gin"
)

type responseError struct {
	Error   bool   `json:"error"`
	ErrorID string `json:"error_id"`
	Msg     string `json:"msg"`
}

// id is rendered as a string, business type upper case or null
type responseMerchant struct {
	ID           string               `json:"id"`
	BusinessType *domain.BusinessType `json:"businessType"`
	Email        string               `json:"email"`
	Name         string               `json:"name"`
}

func toResponseMerchant(m *domain.Merchants) responseMerchant {
	return responseMerchant{
		ID:           m.IDString(),
		BusinessType: m.BusinessType,
		Email:        m.Email,
		Name:         m.Name,
	}
}

func responseErr(c *gin.Context, statusCode int, msg, errorID string) {
	c.AbortWithStatusJSON(statusCode, responseError{true, errorID, msg})
}
