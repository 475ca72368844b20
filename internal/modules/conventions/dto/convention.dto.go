package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateConventionRequest données requises pour créer une convention
type CreateConventionRequest struct {
	ServiceID                      *uuid.UUID       `json:"service_id"`
	CompanyID                      *uuid.UUID       `json:"company_id"`
	Code                           string           `json:"code" binding:"required,max=255"`
	DesignationPrestation          string           `json:"designation_prestation" binding:"required"`
	MontantHT                      *decimal.Decimal `json:"montant_ht"`
	MontantGlobalTTC               *decimal.Decimal `json:"montant_global_ttc"`
	MontantPriseChargeEntreprise   *decimal.Decimal `json:"montant_prise_charge_entreprise"`
	MontantPriseChargeBeneficiaire *decimal.Decimal `json:"montant_prise_charge_beneficiaire"`
}

// UpdateConventionRequest mêmes règles que la création
type UpdateConventionRequest = CreateConventionRequest

// ConventionResponse convention retournée par l'API
type ConventionResponse struct {
	ID                             uuid.UUID        `json:"id"`
	ServiceID                      *uuid.UUID       `json:"service_id"`
	CompanyID                      *uuid.UUID       `json:"company_id"`
	ServiceName                    *string          `json:"service_name"`
	CompanyName                    *string          `json:"company_name"`
	Code                           string           `json:"code"`
	DesignationPrestation          string           `json:"designation_prestation"`
	MontantHT                      *decimal.Decimal `json:"montant_ht"`
	MontantGlobalTTC               *decimal.Decimal `json:"montant_global_ttc"`
	MontantPriseChargeEntreprise   *decimal.Decimal `json:"montant_prise_charge_entreprise"`
	MontantPriseChargeBeneficiaire *decimal.Decimal `json:"montant_prise_charge_beneficiaire"`
	CreatedAt                      time.Time        `json:"created_at"`
	UpdatedAt                      time.Time        `json:"updated_at"`
}

// PaginatedConventions page de conventions avec métadonnées
type PaginatedConventions struct {
	Conventions []ConventionResponse `json:"conventions"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PerPage     int                  `json:"per_page"`
	TotalPages  int                  `json:"total_pages"`
}

// ImportResult bilan d'un import de fichier de conventions
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings"`
}
