package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinique-navette-core/internal/modules/companies/dto"
	"clinique-navette-core/internal/modules/companies/services"
	"clinique-navette-core/internal/shared/apperrors"
)

type CompanyController struct {
	service *services.CompanyService
}

func NewCompanyController(service *services.CompanyService) *CompanyController {
	return &CompanyController{service: service}
}

// GET /api/v1/companies
func (c *CompanyController) List(ctx *gin.Context) {
	if ctx.Query("all") == "true" {
		companies, err := c.service.ListAll(ctx.Request.Context())
		if err != nil {
			apperrors.Respond(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    companies,
		})
		return
	}

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

// POST /api/v1/companies
func (c *CompanyController) Create(ctx *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
			"details": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	company, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    company,
	})
}

// GET /api/v1/companies/:id
func (c *CompanyController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant organisme invalide",
		})
		return
	}

	company, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    company,
	})
}

// PUT /api/v1/companies/:id
func (c *CompanyController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant organisme invalide",
		})
		return
	}

	var req dto.UpdateCompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
			"details": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	company, err := c.service.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    company,
	})
}

// DELETE /api/v1/companies/:id
func (c *CompanyController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Identifiant organisme invalide",
		})
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Organisme supprimé",
	})
}
