package apperrors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond écrit la réponse d'erreur HTTP correspondante. Les erreurs
// métier gardent leur statut, tout le reste devient un 500 générique.
func Respond(ctx *gin.Context, err error) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		ctx.JSON(svcErr.HTTPStatus(), gin.H{
			"error":   svcErr.Message,
			"details": svcErr.Details,
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, gin.H{
		"error": "Erreur interne du serveur",
		"details": map[string]interface{}{
			"message": err.Error(),
		},
	})
}
