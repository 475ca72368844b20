package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreatePatientRequest données requises pour créer un patient
type CreatePatientRequest struct {
	Firstname   string  `json:"firstname" binding:"required,max=255"`
	Lastname    string  `json:"lastname" binding:"required,max=255"`
	Parent      *string `json:"parent" binding:"omitempty,max=255"`
	Phone       *string `json:"phone" binding:"omitempty,max=20"`
	DateOfBirth string  `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	Gender      *string `json:"gender" binding:"omitempty,max=255"`
	Idnum       *string `json:"idnum" binding:"omitempty,max=255"`
	Nss         *string `json:"nss" binding:"omitempty,max=255"`
}

// UpdatePatientRequest mêmes règles que la création
type UpdatePatientRequest = CreatePatientRequest

// PatientResponse patient retourné par l'API
type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	Firstname   string    `json:"firstname"`
	Lastname    string    `json:"lastname"`
	Parent      *string   `json:"parent"`
	Phone       *string   `json:"phone"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      *string   `json:"gender"`
	Idnum       *string   `json:"idnum"`
	Nss         *string   `json:"nss"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PatientSummary identité réduite, suffisante pour décorer une fiche
// navette (le patient vit dans une autre base, on recolle par id)
type PatientSummary struct {
	ID        uuid.UUID `json:"id"`
	Firstname string    `json:"firstname"`
	Lastname  string    `json:"lastname"`
	Phone     *string   `json:"phone"`
	Idnum     *string   `json:"idnum"`
}

// PaginatedPatients page de patients avec métadonnées
type PaginatedPatients struct {
	Patients   []PatientResponse `json:"patients"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
}
