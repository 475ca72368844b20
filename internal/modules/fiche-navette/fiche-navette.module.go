package fiche_navette

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/fx"

	"clinique-navette-core/internal/modules/fiche-navette/controllers"
	"clinique-navette-core/internal/modules/fiche-navette/services"
	"clinique-navette-core/internal/shared/apperrors"
)

// Module regroupe les providers du domaine Fiche Navette
var Module = fx.Options(
	fx.Provide(services.NewSequenceService),
	fx.Provide(services.NewFicheNavetteService),
	fx.Provide(services.NewSearchService),
	fx.Provide(services.NewTicketPDFService),
	fx.Provide(controllers.NewFicheNavetteController),
	fx.Invoke(RegisterFicheNavetteRoutes),
)

// RegisterFicheNavetteRoutes configure les routes Gin du domaine
func RegisterFicheNavetteRoutes(r *gin.Engine, ctrl *controllers.FicheNavetteController, search *services.SearchService) {
	api := r.Group("/api/v1/fiche-navettes")
	{
		// GET /api/v1/fiche-navettes - Liste filtrée et paginée
		api.GET("", ctrl.List)

		// POST /api/v1/fiche-navettes - Créer une fiche (numéro + montants serveur)
		api.POST("", ctrl.Create)

		// GET /api/v1/fiche-navettes/next-number - Aperçu du prochain numéro
		api.GET("/next-number", ctrl.NextNumber)

		// GET /api/v1/fiche-navettes/:id - Détail complet (prestations, identités, médecins)
		api.GET("/:id", ctrl.Get)

		// PUT /api/v1/fiche-navettes/:id - Mise à jour administrative
		api.PUT("/:id", ctrl.Update)

		// PATCH /api/v1/fiche-navettes/:id/status - Changement de statut
		api.PATCH("/:id/status", ctrl.UpdateStatus)

		// DELETE /api/v1/fiche-navettes/:id - Suppression (cascade items + médecins)
		api.DELETE("/:id", ctrl.Delete)

		// GET /api/v1/fiche-navettes/:id/ticket-pdf - Ticket imprimable 80mm
		api.GET("/:id/ticket-pdf", ctrl.TicketPDF)
	}

	// GET /api/v1/patients/:id/fiche-navettes - Fiches d'un patient
	r.GET("/api/v1/patients/:id/fiche-navettes", func(ctx *gin.Context) {
		patientID, err := uuid.Parse(ctx.Param("id"))
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Identifiant patient invalide"})
			return
		}

		page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
		perPage, _ := strconv.Atoi(ctx.DefaultQuery("per_page", "10"))

		result, err := search.ListByPatient(ctx.Request.Context(), patientID, page, perPage)
		if err != nil {
			apperrors.Respond(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    result,
		})
	})
}
