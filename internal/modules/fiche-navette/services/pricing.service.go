package services

import (
	"github.com/shopspring/decimal"

	conventionsDto "clinique-navette-core/internal/modules/conventions/dto"
)

// Totals montants agrégés d'une fiche navette
type Totals struct {
	BasePrice      decimal.Decimal
	FinalPrice     decimal.Decimal
	OrganismeShare decimal.Decimal
	PatientShare   decimal.Decimal
}

// AggregateTotals recalcule les quatre montants d'une fiche à partir
// des conventions sélectionnées. Les montants envoyés par le client ne
// sont jamais utilisés. Un champ monétaire null compte pour zéro.
func AggregateTotals(conventions []conventionsDto.ConventionResponse) Totals {
	totals := Totals{
		BasePrice:      decimal.Zero,
		FinalPrice:     decimal.Zero,
		OrganismeShare: decimal.Zero,
		PatientShare:   decimal.Zero,
	}

	for _, cv := range conventions {
		totals.BasePrice = totals.BasePrice.Add(orZero(cv.MontantHT))
		totals.FinalPrice = totals.FinalPrice.Add(orZero(cv.MontantGlobalTTC))
		totals.OrganismeShare = totals.OrganismeShare.Add(orZero(cv.MontantPriseChargeEntreprise))
		totals.PatientShare = totals.PatientShare.Add(orZero(cv.MontantPriseChargeBeneficiaire))
	}

	return totals
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
