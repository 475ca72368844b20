// Package apperrors porte l'erreur métier commune à tous les services.
// Chaque opération retourne une valeur d'erreur explicite que la
// couche contrôleur traduit en réponse HTTP, sans état de session.
package apperrors

import "net/http"

// ServiceError erreur métier typée
type ServiceError struct {
	Type    string                 `json:"type"` // "validation", "not_found", "conflict"
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

func Validation(message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{Type: "validation", Message: message, Details: details}
}

func NotFound(message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{Type: "not_found", Message: message, Details: details}
}

func Conflict(message string, details map[string]interface{}) *ServiceError {
	return &ServiceError{Type: "conflict", Message: message, Details: details}
}

// HTTPStatus mappe le type métier vers le code HTTP
func (e *ServiceError) HTTPStatus() int {
	switch e.Type {
	case "validation":
		return http.StatusBadRequest
	case "not_found":
		return http.StatusNotFound
	case "conflict":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
