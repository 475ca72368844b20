package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinique-navette-core/internal/modules/patients/dto"
	"clinique-navette-core/internal/modules/patients/services"
	"clinique-navette-core/internal/shared/apperrors"
)

type PatientController struct {
	service *services.PatientService
}

func NewPatientController(service *services.PatientService) *PatientController {
	return &PatientController{service: service}
}

// GET /api/v1/patients
func (c *PatientController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(ctx.DefaultQuery("per_page", "10"))
	search := ctx.Query("search")

	result, err := c.service.List(ctx.Request.Context(), search, page, perPage)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// POST /api/v1/patients
func (c *PatientController) Create(ctx *gin.Context) {
	var req dto.CreatePatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
			"details": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	patient, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    patient,
	})
}

// GET /api/v1/patients/:id
func (c *PatientController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant patient invalide",
		})
		return
	}

	patient, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    patient,
	})
}

// PUT /api/v1/patients/:id
func (c *PatientController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant patient invalide",
		})
		return
	}

	var req dto.UpdatePatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
			"details": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	patient, err := c.service.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    patient,
	})
}

// DELETE /api/v1/patients/:id
func (c *PatientController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant patient invalide",
		})
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Patient supprimé",
	})
}
