package dto

import (
	"github.com/shopspring/decimal"

	ficheDto "clinique-navette-core/internal/modules/fiche-navette/dto"
	patientsDto "clinique-navette-core/internal/modules/patients/dto"
)

// DashboardStats compteurs et montants cumulés, cachés quelques
// secondes en Redis
type DashboardStats struct {
	Patients       int64           `json:"patients"`
	Companies      int64           `json:"companies"`
	Services       int64           `json:"services"`
	Conventions    int64           `json:"conventions"`
	FicheNavettes  int64           `json:"fiche_navettes"`
	TotalFinal     decimal.Decimal `json:"total_final"`
	TotalPatient   decimal.Decimal `json:"total_patient"`
	TotalOrganisme decimal.Decimal `json:"total_organisme"`
}

// DashboardResponse tableau de bord complet
type DashboardResponse struct {
	Stats          DashboardStats                  `json:"stats"`
	RecentFiches   []ficheDto.FicheNavetteResponse `json:"recent_fiches"`
	RecentPatients []patientsDto.PatientResponse   `json:"recent_patients"`
}
