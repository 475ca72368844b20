package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCompanyRequest données requises pour créer un organisme
type CreateCompanyRequest struct {
	Name               string           `json:"name" binding:"required,max=255"`
	Abbreviation       *string          `json:"abbreviation" binding:"omitempty,max=50"`
	Augmentation       *decimal.Decimal `json:"augmentation"`
	PourcentageCompany *decimal.Decimal `json:"pourcentage_company"`
	PourcentageBenefit *decimal.Decimal `json:"pourcentage_benefit"`
}

// UpdateCompanyRequest mêmes règles que la création
type UpdateCompanyRequest = CreateCompanyRequest

// CompanyResponse organisme retourné par l'API
type CompanyResponse struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	Abbreviation       *string          `json:"abbreviation"`
	Augmentation       *decimal.Decimal `json:"augmentation"`
	PourcentageCompany *decimal.Decimal `json:"pourcentage_company"`
	PourcentageBenefit *decimal.Decimal `json:"pourcentage_benefit"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// PaginatedCompanies page d'organismes avec métadonnées
type PaginatedCompanies struct {
	Companies  []CompanyResponse `json:"companies"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
}
