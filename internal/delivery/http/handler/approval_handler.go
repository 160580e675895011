package handler

import (
	"net/http"

	"medfleet-tracker/internal/approval/model"
	"medfleet-tracker/internal/approval/service"
	appErrors "medfleet-tracker/pkg/errors"
	"medfleet-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ApprovalHandler struct {
	service *service.ApprovalService
}

func NewApprovalHandler(service *service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{service: service}
}

func (h *ApprovalHandler) RegisterRoutes(router *gin.RouterGroup) {
	approvals := router.Group("/approvals")
	{
		approvals.GET("", h.List)
		approvals.GET("/:id", h.Get)
		approvals.POST("", h.Create)
		approvals.PUT("/:id", h.Update)
		approvals.PUT("/:id/status", h.UpdateStatus)
		approvals.DELETE("/:id", h.Delete)
	}
}

func (h *ApprovalHandler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ApprovalHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrApprovalNotFound)
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ApprovalHandler) Create(c *gin.Context) {
	var req model.CreateApprovalRequest
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

func (h *ApprovalHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrApprovalNotFound)
		return
	}

	var req model.UpdateApprovalRequest
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

// UpdateStatus is the lifecycle write path; see the approval service for
// the stamping and merge rules.
func (h *ApprovalHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrApprovalNotFound)
		return
	}

	var req model.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	row, err := h.service.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *ApprovalHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		utils.RespondError(c, appErrors.ErrApprovalNotFound)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Approval request deleted successfully"})
}
