package balance

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentpark/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/balance", h.GetBalance)
	rg.PUT("/balance", h.IncrementBalance)
}

type incrementRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

func (h *Handler) GetBalance(c *gin.Context) {
	b, err := h.service.Read(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to read balance")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) IncrementBalance(c *gin.Context) {
	var req incrementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount is required")
		return
	}

	b, err := h.service.Increment(c.Request.Context(), req.Amount)
	if err != nil {
		if err == ErrInvalidDelta {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount must be non-zero")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update balance")
		return
	}
	response.Success(c, http.StatusOK, b)
}
