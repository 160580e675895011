package handler

import (
	"net/http"

	"medfleet-tracker/internal/stockaudit/model"
	"medfleet-tracker/internal/stockaudit/service"
	appErrors "medfleet-tracker/pkg/errors"
	"medfleet-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type StockAuditHandler struct {
	service *service.StockAuditService
}

func NewStockAuditHandler(service *service.StockAuditService) *StockAuditHandler {
	return &StockAuditHandler{service: service}
}

func (h *StockAuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	audits := router.Group("/stockaudit")
	{
		audits.GET("", h.List)
		audits.GET("/:id", h.Get)
		audits.POST("", h.Create)
		audits.PUT("/:id", h.Update)
		audits.DELETE("/:id", h.Delete)
	}
}

func (h *StockAuditHandler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *StockAuditHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrAuditNotFound)
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *StockAuditHandler) Create(c *gin.Context) {
	var req model.CreateStockAuditRequest
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

func (h *StockAuditHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrAuditNotFound)
		return
	}

	var req model.UpdateStockAuditRequest
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

func (h *StockAuditHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrAuditNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock audit deleted successfully"})
}
