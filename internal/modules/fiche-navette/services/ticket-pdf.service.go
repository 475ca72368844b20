package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"clinique-navette-core/internal/modules/fiche-navette/dto"
)

// Dimensions du ticket: rouleau thermique 80mm, hauteur selon contenu
const (
	ticketWidth  = 80.0
	ticketMargin = 4.0
)

// TicketPDFService rend le ticket imprimable d'une fiche navette
type TicketPDFService struct{}

func NewTicketPDFService() *TicketPDFService {
	return &TicketPDFService{}
}

// Render produit le PDF du ticket. L'opérateur est le nom affiché en
// pied de ticket à côté de l'horodatage d'impression.
func (s *TicketPDFService) Render(fiche *dto.FicheNavetteResponse, operator string) ([]byte, error) {
	// Hauteur estimée large, la page est coupée au contenu à l'impression
	height := 120.0 + float64(len(fiche.Items))*8.0

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		Size:    fpdf.SizeType{Wd: ticketWidth, Ht: height},
	})
	pdf.SetMargins(ticketMargin, ticketMargin, ticketMargin)
	pdf.SetAutoPageBreak(true, ticketMargin)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	usable := ticketWidth - 2*ticketMargin

	// En-tête
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(usable, 6, tr("FICHE NAVETTE"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(usable, 5, tr(fmt.Sprintf("N° %s", fiche.FnNumber)), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(usable, 4, tr(fmt.Sprintf("Date: %s", fiche.FicheDate.Format("02/01/2006"))), "", 1, "C", false, 0, "")
	s.separator(pdf, usable)

	// Identités
	pdf.SetFont("Helvetica", "", 8)
	if fiche.Patient != nil {
		s.labelValue(pdf, tr, usable, "Patient",
			fmt.Sprintf("%s %s", fiche.Patient.Firstname, fiche.Patient.Lastname))
		if fiche.Patient.Phone != nil {
			s.labelValue(pdf, tr, usable, "Tél", *fiche.Patient.Phone)
		}
	}
	if fiche.Insured != nil {
		s.labelValue(pdf, tr, usable, "Assuré",
			fmt.Sprintf("%s %s", fiche.Insured.Firstname, fiche.Insured.Lastname))
		if fiche.Insured.Phone != nil {
			s.labelValue(pdf, tr, usable, "Tél assuré", *fiche.Insured.Phone)
		}
	}
	if fiche.PriseEnChargeNumber != nil && *fiche.PriseEnChargeNumber != "" {
		s.labelValue(pdf, tr, usable, "Prise en charge", *fiche.PriseEnChargeNumber)
	}
	s.separator(pdf, usable)

	// Table des prestations: désignation + part organisme
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(usable*0.65, 5, tr("Prestation"), "", 0, "L", false, 0, "")
	pdf.CellFormat(usable*0.35, 5, tr("P. charge"), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	for _, item := range fiche.Items {
		montant := decimal.Zero
		if item.MontantPriseChargeEntreprise != nil {
			montant = *item.MontantPriseChargeEntreprise
		}
		pdf.CellFormat(usable*0.65, 4.5, tr(truncate(item.DesignationPrestation, 32)), "", 0, "L", false, 0, "")
		pdf.CellFormat(usable*0.35, 4.5, tr(montant.StringFixed(2)), "", 1, "R", false, 0, "")
	}
	s.separator(pdf, usable)

	// Totaux
	pdf.SetFont("Helvetica", "B", 8)
	s.totalLine(pdf, tr, usable, "Total TTC", fiche.FinalPrice)
	s.totalLine(pdf, tr, usable, "Part organisme", fiche.OrganismeShare)
	s.totalLine(pdf, tr, usable, "Part bénéficiaire", fiche.PatientShare)
	s.separator(pdf, usable)

	// Pied: horodatage d'impression et opérateur
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(usable, 4, tr(fmt.Sprintf("Imprimé le %s", time.Now().Format("02/01/2006 15:04"))), "", 1, "C", false, 0, "")
	if operator != "" {
		pdf.CellFormat(usable, 4, tr(fmt.Sprintf("Par: %s", operator)), "", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("erreur rendu PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *TicketPDFService) separator(pdf *fpdf.Fpdf, usable float64) {
	pdf.Ln(1)
	x, y := pdf.GetX(), pdf.GetY()
	pdf.Line(x, y, x+usable, y)
	pdf.Ln(2)
}

func (s *TicketPDFService) labelValue(pdf *fpdf.Fpdf, tr func(string) string, usable float64, label, value string) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(usable*0.4, 4.5, tr(label+":"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(usable*0.6, 4.5, tr(value), "", 1, "L", false, 0, "")
}

func (s *TicketPDFService) totalLine(pdf *fpdf.Fpdf, tr func(string) string, usable float64, label string, amount decimal.Decimal) {
	pdf.CellFormat(usable*0.6, 5, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(usable*0.4, 5, tr(amount.StringFixed(2)), "", 1, "R", false, 0, "")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
