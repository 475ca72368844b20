package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinique-navette-core/internal/modules/fiche-navette/dto"
	"clinique-navette-core/internal/modules/fiche-navette/services"
	"clinique-navette-core/internal/shared/apperrors"
)

type FicheNavetteController struct {
	service   *services.FicheNavetteService
	search    *services.SearchService
	sequence  *services.SequenceService
	ticketPDF *services.TicketPDFService
}

func NewFicheNavetteController(
	service *services.FicheNavetteService,
	search *services.SearchService,
	sequence *services.SequenceService,
	ticketPDF *services.TicketPDFService,
) *FicheNavetteController {
	return &FicheNavetteController{
		service:   service,
		search:    search,
		sequence:  sequence,
		ticketPDF: ticketPDF,
	}
}

// GET /api/v1/fiche-navettes
func (c *FicheNavetteController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(ctx.DefaultQuery("per_page", "10"))

	filters := dto.SearchFilters{
		Search:   ctx.Query("search"),
		Status:   ctx.Query("status"),
		DateFrom: ctx.Query("date_from"),
		DateTo:   ctx.Query("date_to"),
	}
	if raw := ctx.Query("company_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant organisme invalide"})
			return
		}
		filters.CompanyID = &id
	}
	if raw := ctx.Query("patient_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant patient invalide"})
			return
		}
		filters.PatientID = &id
	}

	result, err := c.search.List(ctx.Request.Context(), filters, page, perPage)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// GET /api/v1/fiche-navettes/next-number
// Aperçu consultatif: le numéro réel est attribué à la création
func (c *FicheNavetteController) NextNumber(ctx *gin.Context) {
	preview, err := c.sequence.PreviewNext(ctx.Request.Context())
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    preview,
	})
}

// POST /api/v1/fiche-navettes
func (c *FicheNavetteController) Create(ctx *gin.Context) {
	var req dto.CreateFicheNavetteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
			"details": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	fiche, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    fiche,
		"message": fmt.Sprintf("Fiche navette %s créée", fiche.FnNumber),
	})
}

// GET /api/v1/fiche-navettes/:id
func (c *FicheNavetteController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant fiche invalide"})
		return
	}

	fiche, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    fiche,
	})
}

// PUT /api/v1/fiche-navettes/:id
func (c *FicheNavetteController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant fiche invalide"})
		return
	}

	var req dto.UpdateFicheNavetteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
			"details": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	fiche, err := c.service.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    fiche,
	})
}

// PATCH /api/v1/fiche-navettes/:id/status
func (c *FicheNavetteController) UpdateStatus(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant fiche invalide"})
		return
	}

	var req dto.UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
			"details": map[string]interface{}{
				"message": err.Error(),
			},
		})
		return
	}

	fiche, err := c.service.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    fiche,
		"message": fmt.Sprintf("Statut mis à jour: %s", fiche.Status),
	})
}

// DELETE /api/v1/fiche-navettes/:id
func (c *FicheNavetteController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant fiche invalide"})
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Fiche navette supprimée",
	})
}

// GET /api/v1/fiche-navettes/:id/ticket-pdf
func (c *FicheNavetteController) TicketPDF(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant fiche invalide"})
		return
	}

	fiche, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	operator := ctx.Query("operator")
	pdfBytes, err := c.ticketPDF.Render(fiche, operator)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	filename := fmt.Sprintf("fiche_navette_%s.pdf",
		strings.ReplaceAll(fiche.FnNumber, "/", "-"))
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, "application/pdf", pdfBytes)
}
