package handler

import (
	"net/http"

	"medfleet-tracker/internal/shift/model"
	"medfleet-tracker/internal/shift/service"
	appErrors "medfleet-tracker/pkg/errors"
	"medfleet-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ShiftHandler struct {
	service *service.ShiftService
}

func NewShiftHandler(service *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{service: service}
}

func (h *ShiftHandler) RegisterRoutes(router *gin.RouterGroup) {
	shifts := router.Group("/shifts")
	{
		shifts.GET("", h.List)
		shifts.GET("/:id", h.Get)
		shifts.POST("", h.Create)
		shifts.PUT("/:id", h.Update)
		shifts.DELETE("/:id", h.Delete)
	}
}

func (h *ShiftHandler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ShiftHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrShiftNotFound)
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ShiftHandler) Create(c *gin.Context) {
	var req model.CreateShiftRequest
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

func (h *ShiftHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrShiftNotFound)
		return
	}

	var req model.UpdateShiftRequest
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

func (h *ShiftHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrShiftNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted successfully"})
}
