package v1

import (
	"errors"
	"net/http"
	"strconv"

	"merchant/api/internal/domain"
	"merchant/api/internal/logger"

	"github.com/gin-gonic/gin"
)

func (h *Handler) merchantCreate(c *gin.Context) {
	var data domain.MerchantCreate
	if !bindBody(c, &data) {
		return
	}

	merchant, err := h.services.Merchants.Create(c.Request.Context(), data)
	if errors.Is(err, domain.ErrDuplicateEmail) {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgMerchantEmailExists, "")
		return
	}
	if err != nil {
		h.storeErr(c, "merchant create", err)
		return
	}

	c.JSON(http.StatusCreated, toResponseMerchant(merchant))
}

func (h *Handler) merchantList(c *gin.Context) {
	merchants, err := h.services.Merchants.ListAll(c.Request.Context())
	if err != nil {
		h.storeErr(c, "merchant list", err)
		return
	}

	res := make([]responseMerchant, 0, len(merchants))
	for i := range merchants {
		res = append(res, toResponseMerchant(&merchants[i]))
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) merchantGet(c *gin.Context) {
	id, ok := merchantID(c)
	if !ok {
		return
	}

	merchant, found, err := h.services.Merchants.GetByID(c.Request.Context(), id)
	h.respondLoaded(c, "merchant get", merchant, found, err)
}

func (h *Handler) merchantGetByEmail(c *gin.Context) {
	merchant, found, err := h.services.Merchants.GetByEmail(c.Request.Context(), c.Param("email"))
	h.respondLoaded(c, "merchant get by email", merchant, found, err)
}

func (h *Handler) merchantUpdate(c *gin.Context) {
	id, ok := merchantID(c)
	if !ok {
		return
	}

	var data domain.MerchantUpdate
	if !bindBody(c, &data) {
		return
	}

	merchant, err := h.services.Merchants.Update(c.Request.Context(), id, data)
	if errors.Is(err, domain.ErrMerchantNotFound) {
		responseErr(c, http.StatusNotFound, domain.ErrMsgMerchantNotFound, "")
		return
	}
	if err != nil {
		h.storeErr(c, "merchant update", err)
		return
	}

	c.JSON(http.StatusOK, toResponseMerchant(merchant))
}

func (h *Handler) merchantDelete(c *gin.Context) {
	id, ok := merchantID(c)
	if !ok {
		return
	}

	if err := h.services.Merchants.Delete(c.Request.Context(), id); err != nil {
		h.storeErr(c, "merchant delete", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// a miss is 404, a store failure never is
func (h *Handler) respondLoaded(c *gin.Context, message string, merchant *domain.Merchants, found bool, err error) {
	if err != nil {
		h.storeErr(c, message, err)
		return
	}
	if !found {
		responseErr(c, http.StatusNotFound, domain.ErrMsgMerchantNotFound, "")
		return
	}
	c.JSON(http.StatusOK, toResponseMerchant(merchant))
}

func (h *Handler) storeErr(c *gin.Context, message string, err error) {
	errorId := h.log.TemplHTTPErr(message, c.Request.RequestURI, c.ClientIP(), logger.GenErrorId(), err)
	responseErr(c, domain.GetStatusByErr(err), domain.GetMsgByErr(err), errorId)
}

func merchantID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgInvalidMerchantId, "")
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) initMerchantRoutes(g *gin.RouterGroup) {
	g.POST("/merchants", h.adminAccessMiddleware(), h.rateLimitMiddleware(), h.merchantCreate)
	g.GET("/merchants", h.merchantList)
	g.GET("/merchants/:id", h.merchantGet)
	g.GET("/merchants/email/:email", h.merchantGetByEmail)
	g.PUT("/merchants/:id", h.adminAccessMiddleware(), h.merchantUpdate)
	g.DELETE("/merchants/:id", h.adminAccessMiddleware(), h.merchantDelete)
}
