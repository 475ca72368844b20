package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinique-navette-core/internal/modules/services/dto"
	"clinique-navette-core/internal/modules/services/services"
	"clinique-navette-core/internal/shared/apperrors"
)

type ServiceController struct {
	service *services.ServiceService
}

func NewServiceController(service *services.ServiceService) *ServiceController {
	return &ServiceController{service: service}
}

// GET /api/v1/services
func (c *ServiceController) List(ctx *gin.Context) {
	if ctx.Query("all") == "true" {
		result, err := c.service.ListAll(ctx.Request.Context())
		if err != nil {
			apperrors.Respond(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    result,
		})
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(ctx.DefaultQuery("per_page", "10"))
	search := ctx.Query("search")

	var companyID *uuid.UUID
	if raw := ctx.Query("company_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": "Identifiant organisme invalide",
			})
			return
		}
		companyID = &id
	}

	result, err := c.service.List(ctx.Request.Context(), search, companyID, page, perPage)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// POST /api/v1/services
func (c *ServiceController) Create(ctx *gin.Context) {
	var req dto.CreateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
			"details": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	svc, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    svc,
	})
}

// GET /api/v1/services/:id
func (c *ServiceController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant service invalide",
		})
		return
	}

	svc, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    svc,
	})
}

// PUT /api/v1/services/:id
func (c *ServiceController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant service invalide",
		})
		return
	}

	var req dto.UpdateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
			"details": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	svc, err := c.service.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    svc,
	})
}

// DELETE /api/v1/services/:id
func (c *ServiceController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant service invalide",
		})
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Service supprimé",
	})
}
