package handler

import (
	"net/http"

	"medfleet-tracker/internal/staff/model"
	"medfleet-tracker/internal/staff/service"
	appErrors "medfleet-tracker/pkg/errors"
	"medfleet-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	service *service.StaffService
}

func NewStaffHandler(service *service.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

func (h *StaffHandler) RegisterRoutes(router *gin.RouterGroup) {
	staff := router.Group("/staff")
	{
		staff.GET("", h.List)
		staff.GET("/:id", h.Get)
		staff.POST("", h.Create)
		staff.PUT("/:id", h.Update)
		staff.DELETE("/:id", h.Delete)
	}
}

func (h *StaffHandler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *StaffHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrStaffNotFound)
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req model.CreateStaffRequest
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

func (h *StaffHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrStaffNotFound)
		return
	}

	var req model.UpdateStaffRequest
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

func (h *StaffHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrStaffNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff deleted successfully"})
}
