package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	patientsDto "clinique-navette-core/internal/modules/patients/dto"
)

// Statuts possibles d'une fiche navette
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatuses ensemble des statuts acceptés
var ValidStatuses = map[string]bool{
	StatusPending:   true,
	StatusApproved:  true,
	StatusRejected:  true,
	StatusCompleted: true,
	StatusCancelled: true,
}

// Liens de parenté entre l'assuré et le patient bénéficiaire
const (
	FamilyAuthAscendant  = "ascendant"
	FamilyAuthDescendant = "descendant"
	FamilyAuthConjoint   = "conjoint"
	FamilyAuthAdherent   = "adherent"
	FamilyAuthAutre      = "autre"
)

// ValidFamilyAuths ensemble des liens de parenté acceptés
var ValidFamilyAuths = map[string]bool{
	FamilyAuthAscendant:  true,
	FamilyAuthDescendant: true,
	FamilyAuthConjoint:   true,
	FamilyAuthAdherent:   true,
	FamilyAuthAutre:      true,
}

// CreateFicheNavetteRequest données de création d'une fiche navette.
// Les montants ne sont jamais fournis par le client: ils sont
// recalculés côté serveur à partir des conventions référencées.
type CreateFicheNavetteRequest struct {
	PatientID           uuid.UUID   `json:"patient_id" binding:"required"`
	InsuredID           *uuid.UUID  `json:"insured_id"`
	FicheDate           string      `json:"fiche_date" binding:"required,datetime=2006-01-02"`
	FamilyAuth          string      `json:"family_auth" binding:"required"`
	PriseEnChargeNumber *string     `json:"prise_en_charge_number"`
	NumberMutuelle      *string     `json:"number_mutuelle"`
	PrestationIDs       []uuid.UUID `json:"prestation_ids" binding:"required,min=1"`
	DoctorIDs           []string    `json:"doctor_ids"`
}

// UpdateFicheNavetteRequest remplacement de champs sans recalcul des
// montants (les prestations ne sont pas modifiables après création)
type UpdateFicheNavetteRequest struct {
	InsuredID           *uuid.UUID `json:"insured_id"`
	FicheDate           string     `json:"fiche_date" binding:"required,datetime=2006-01-02"`
	FamilyAuth          string     `json:"family_auth" binding:"required"`
	PriseEnChargeNumber *string    `json:"prise_en_charge_number"`
	NumberMutuelle      *string    `json:"number_mutuelle"`
}

// UpdateStatusRequest changement de statut seul
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// FicheNavetteItemResponse prestation rattachée à une fiche
type FicheNavetteItemResponse struct {
	ID                           uuid.UUID        `json:"id"`
	PrestationID                 uuid.UUID        `json:"prestation_id"`
	Code                         string           `json:"code"`
	DesignationPrestation        string           `json:"designation_prestation"`
	MontantHT                    *decimal.Decimal `json:"montant_ht"`
	MontantGlobalTTC             *decimal.Decimal `json:"montant_global_ttc"`
	MontantPriseChargeEntreprise *decimal.Decimal `json:"montant_prise_charge_entreprise"`
	CompanyName                  *string          `json:"company_name"`
}

// DoctorSummary médecin rattaché (résolu depuis le store médecins)
type DoctorSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Specialization *string `json:"specialization"`
}

// FicheNavetteResponse fiche navette complète avec identités recollées
type FicheNavetteResponse struct {
	ID                  uuid.UUID                   `json:"id"`
	FnNumber            string                      `json:"fn_number"`
	PatientID           uuid.UUID                   `json:"patient_id"`
	InsuredID           *uuid.UUID                  `json:"insured_id"`
	Patient             *patientsDto.PatientSummary `json:"patient"`
	Insured             *patientsDto.PatientSummary `json:"insured"`
	FicheDate           time.Time                   `json:"fiche_date"`
	FamilyAuth          string                      `json:"family_auth"`
	PriseEnChargeNumber *string                     `json:"prise_en_charge_number"`
	NumberMutuelle      *string                     `json:"number_mutuelle"`
	BasePrice           decimal.Decimal             `json:"base_price"`
	FinalPrice          decimal.Decimal             `json:"final_price"`
	PatientShare        decimal.Decimal             `json:"patient_share"`
	OrganismeShare      decimal.Decimal             `json:"organisme_share"`
	Status              string                      `json:"status"`
	Items               []FicheNavetteItemResponse  `json:"items"`
	Doctors             []DoctorSummary             `json:"doctors"`
	CreatedAt           time.Time                   `json:"created_at"`
	UpdatedAt           time.Time                   `json:"updated_at"`
}

// SearchFilters filtres de la liste des fiches navettes, renvoyés en
// écho dans la réponse pour que le client garde son état
type SearchFilters struct {
	Search    string     `json:"search"`
	Status    string     `json:"status"`
	CompanyID *uuid.UUID `json:"company_id"`
	PatientID *uuid.UUID `json:"patient_id"`
	DateFrom  string     `json:"date_from"`
	DateTo    string     `json:"date_to"`
}

// PaginatedFicheNavettes page de fiches avec filtres en écho
type PaginatedFicheNavettes struct {
	FicheNavettes []FicheNavetteResponse `json:"fiche_navettes"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PerPage       int                    `json:"per_page"`
	TotalPages    int                    `json:"total_pages"`
	Filters       SearchFilters          `json:"filters"`
}

// NextNumberResponse aperçu non contractuel du prochain numéro
type NextNumberResponse struct {
	NextNumber string `json:"next_number"`
	Year       int    `json:"year"`
}
