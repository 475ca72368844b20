package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinique-navette-core/internal/modules/dashboard/services"
	"clinique-navette-core/internal/shared/apperrors"
)

type DashboardController struct {
	service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

// GET /api/v1/dashboard
func (c *DashboardController) Get(ctx *gin.Context) {
	dashboard, err := c.service.Get(ctx.Request.Context())
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    dashboard,
	})
}
