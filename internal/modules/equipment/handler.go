package equipment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentpark/internal/middleware"
	"rentpark/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes exposes reads to everyone in the group; mutations are
// admin-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/equipment", h.ListEquipment)
	rg.GET("/equipment/:matricule", h.GetEquipment)

	admin := rg.Group("/")
	admin.Use(middleware.AdminOnly())
	{
		admin.POST("/equipment", h.CreateEquipment)
		admin.PUT("/equipment/:matricule", h.UpdateEquipment)
		admin.PATCH("/equipment/:matricule/status", h.SetEquipmentStatus)
		admin.DELETE("/equipment/:matricule", h.DeleteEquipment)
	}
}

func (h *Handler) ListEquipment(c *gin.Context) {
	units, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list equipment")
		return
	}
	response.Success(c, http.StatusOK, units)
}

func (h *Handler) GetEquipment(c *gin.Context) {
	e, err := h.service.Get(c.Request.Context(), c.Param("matricule"))
	if err != nil {
		h.handleError(c, err, "Failed to get equipment")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "Failed to create equipment")
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) UpdateEquipment(c *gin.Context) {
	var req UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	e, err := h.service.Update(c.Request.Context(), c.Param("matricule"), req)
	if err != nil {
		h.handleError(c, err, "Failed to update equipment")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) SetEquipmentStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status is required")
		return
	}

	e, err := h.service.SetStatus(c.Request.Context(), c.Param("matricule"), req.Status)
	if err != nil {
		h.handleError(c, err, "Failed to set equipment status")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) DeleteEquipment(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("matricule")); err != nil {
		h.handleError(c, err, "Failed to delete equipment")
		return
	}
	response.Success(c, http.StatusOK, nil)
}

func (h *Handler) handleError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Matricule, category and a positive daily price are required")
	case ErrDuplicate:
		response.Error(c, http.StatusConflict, "DUPLICATE_MATRICULE", "Matricule already registered")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Equipment not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
