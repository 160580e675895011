package handler

import (
	"net/http"

	"medfleet-tracker/internal/dashboard/repository"
	"medfleet-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	repo *repository.DashboardRepository
}

func NewDashboardHandler(repo *repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.Stats)
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.repo.Counts(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
