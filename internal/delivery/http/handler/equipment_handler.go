package handler

import (
	"net/http"

	"medfleet-tracker/internal/equipment/model"
	"medfleet-tracker/internal/equipment/service"
	appErrors "medfleet-tracker/pkg/errors"
	"medfleet-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type EquipmentHandler struct {
	service *service.EquipmentService
}

func NewEquipmentHandler(service *service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

func (h *EquipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	equipment := router.Group("/equipment")
	{
		equipment.GET("", h.List)
		equipment.GET("/:id", h.Get)
		equipment.POST("", h.Create)
		equipment.PUT("/:id", h.Update)
		equipment.DELETE("/:id", h.Delete)
	}
}

func (h *EquipmentHandler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *EquipmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrEquipmentNotFound)
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *EquipmentHandler) Create(c *gin.Context) {
	var req model.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *EquipmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrEquipmentNotFound)
		return
	}

	var req model.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrEquipmentNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Equipment deleted successfully"})
}
