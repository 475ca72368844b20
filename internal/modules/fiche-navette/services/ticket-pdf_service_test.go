package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"clinique-navette-core/internal/modules/fiche-navette/dto"
	patientsDto "clinique-navette-core/internal/modules/patients/dto"
)

func TestTicketPDFRender(t *testing.T) {
	phone := "0550123456"
	pec := "PEC-2025-041"
	fiche := &dto.FicheNavetteResponse{
		ID:       uuid.New(),
		FnNumber: "12/2025",
		Patient: &patientsDto.PatientSummary{
			ID:        uuid.New(),
			Firstname: "Amine",
			Lastname:  "Benali",
			Phone:     &phone,
		},
		FicheDate:           time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		FamilyAuth:          dto.FamilyAuthAdherent,
		PriseEnChargeNumber: &pec,
		BasePrice:           decimal.RequireFromString("1500.50"),
		FinalPrice:          decimal.RequireFromString("1785.60"),
		PatientShare:        decimal.RequireFromString("357.12"),
		OrganismeShare:      decimal.RequireFromString("1428.48"),
		Status:              dto.StatusPending,
		Items: []dto.FicheNavetteItemResponse{
			{
				DesignationPrestation:        "Consultation générale",
				MontantPriseChargeEntreprise: d("952.00"),
			},
			{
				DesignationPrestation: "Radiographie du thorax avec un libellé particulièrement long",
			},
		},
	}

	pdfBytes, err := NewTicketPDFService().Render(fiche, "admin")
	if err != nil {
		t.Fatalf("rendu PDF échoué: %v", err)
	}

	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Errorf("le document ne commence pas par l'en-tête PDF, obtenu %q", pdfBytes[:8])
	}
	if len(pdfBytes) < 500 {
		t.Errorf("document suspicieusement petit: %d octets", len(pdfBytes))
	}
}

func TestTicketPDFRenderWithoutOptionalFields(t *testing.T) {
	fiche := &dto.FicheNavetteResponse{
		ID:             uuid.New(),
		FnNumber:       "1/2025",
		FicheDate:      time.Now(),
		FamilyAuth:     dto.FamilyAuthAdherent,
		BasePrice:      decimal.Zero,
		FinalPrice:     decimal.Zero,
		PatientShare:   decimal.Zero,
		OrganismeShare: decimal.Zero,
		Status:         dto.StatusPending,
	}

	pdfBytes, err := NewTicketPDFService().Render(fiche, "")
	if err != nil {
		t.Fatalf("rendu PDF sans champs optionnels échoué: %v", err)
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Error("en-tête PDF manquant")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("court", 32); got != "court" {
		t.Errorf("truncate ne doit pas modifier une chaîne courte: %q", got)
	}
	long := "une désignation beaucoup trop longue pour un ticket de 80mm"
	got := truncate(long, 10)
	if len([]rune(got)) != 10 {
		t.Errorf("longueur tronquée = %d runes, attendu 10", len([]rune(got)))
	}
}
