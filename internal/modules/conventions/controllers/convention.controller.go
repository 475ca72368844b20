package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinique-navette-core/internal/modules/conventions/dto"
	"clinique-navette-core/internal/modules/conventions/services"
	"clinique-navette-core/internal/shared/apperrors"
)

type ConventionController struct {
	service       *services.ConventionService
	importService *services.ImportService
}

func NewConventionController(service *services.ConventionService, importService *services.ImportService) *ConventionController {
	return &ConventionController{
		service:       service,
		importService: importService,
	}
}

// GET /api/v1/conventions
func (c *ConventionController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(ctx.DefaultQuery("per_page", "10"))
	search := ctx.Query("search")

	var companyID, serviceID *uuid.UUID
	if raw := ctx.Query("company_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant organisme invalide"})
			return
		}
		companyID = &id
	}
	if raw := ctx.Query("service_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant service invalide"})
			return
		}
		serviceID = &id
	}

	result, err := c.service.List(ctx.Request.Context(), search, companyID, serviceID, page, perPage)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// POST /api/v1/conventions
func (c *ConventionController) Create(ctx *gin.Context) {
	var req dto.CreateConventionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
			"details": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	cv, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    cv,
	})
}

// GET /api/v1/conventions/:id
func (c *ConventionController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant convention invalide"})
		return
	}

	cv, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cv,
	})
}

// PUT /api/v1/conventions/:id
func (c *ConventionController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant convention invalide"})
		return
	}

	var req dto.UpdateConventionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
			"details": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	cv, err := c.service.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cv,
	})
}

// DELETE /api/v1/conventions/:id
func (c *ConventionController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant convention invalide"})
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Convention supprimée",
	})
}

// POST /api/v1/conventions/import
// Multipart: file (xlsx/xls/csv), company_id et service_id optionnels
func (c *ConventionController) Import(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Fichier requis (champ multipart 'file')",
		})
		return
	}

	var companyID, serviceID *uuid.UUID
	if raw := ctx.PostForm("company_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant organisme invalide"})
			return
		}
		companyID = &id
	}
	if raw := ctx.PostForm("service_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant service invalide"})
			return
		}
		serviceID = &id
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Fichier illisible",
			"details": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}
	defer file.Close()

	result, err := c.importService.Import(ctx.Request.Context(),
		fileHeader.Filename, fileHeader.Size, file, companyID, serviceID)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}
