package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinique-navette-core/internal/modules/doctors/services"
	"clinique-navette-core/internal/shared/apperrors"
)

type DoctorController struct {
	service *services.DoctorService
}

func NewDoctorController(service *services.DoctorService) *DoctorController {
	return &DoctorController{service: service}
}

// GET /api/v1/doctors
func (c *DoctorController) List(ctx *gin.Context) {
	doctors, err := c.service.ListDoctors(ctx.Request.Context())
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    doctors,
	})
}
