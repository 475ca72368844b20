package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateServiceRequest données requises pour créer un service médical
type CreateServiceRequest struct {
	Name        string     `json:"name" binding:"required,max=255"`
	Description *string    `json:"description"`
	CompanyID   *uuid.UUID `json:"company_id"`
}

// UpdateServiceRequest mêmes règles que la création
type UpdateServiceRequest = CreateServiceRequest

// ServiceResponse service médical retourné par l'API
type ServiceResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	CompanyID   *uuid.UUID `json:"company_id"`
	CompanyName *string    `json:"company_name"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PaginatedServices page de services avec métadonnées
type PaginatedServices struct {
	Services   []ServiceResponse `json:"services"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
}
