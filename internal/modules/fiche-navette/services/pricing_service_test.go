package services

import (
	"testing"

	"github.com/shopspring/decimal"

	conventionsDto "clinique-navette-core/internal/modules/conventions/dto"
)

func d(value string) *decimal.Decimal {
	dec := decimal.RequireFromString(value)
	return &dec
}

func TestAggregateTotals(t *testing.T) {
	conventions := []conventionsDto.ConventionResponse{
		{
			MontantHT:                      d("1000.00"),
			MontantGlobalTTC:               d("1190.00"),
			MontantPriseChargeEntreprise:   d("952.00"),
			MontantPriseChargeBeneficiaire: d("238.00"),
		},
		{
			MontantHT:                      d("500.50"),
			MontantGlobalTTC:               d("595.60"),
			MontantPriseChargeEntreprise:   d("476.48"),
			MontantPriseChargeBeneficiaire: d("119.12"),
		},
	}

	totals := AggregateTotals(conventions)

	assertDecimal(t, "BasePrice", totals.BasePrice, "1500.5")
	assertDecimal(t, "FinalPrice", totals.FinalPrice, "1785.6")
	assertDecimal(t, "OrganismeShare", totals.OrganismeShare, "1428.48")
	assertDecimal(t, "PatientShare", totals.PatientShare, "357.12")
}

func TestAggregateTotalsNullAmountsCountAsZero(t *testing.T) {
	conventions := []conventionsDto.ConventionResponse{
		{
			MontantHT:        d("100.00"),
			MontantGlobalTTC: nil,
		},
		{
			MontantHT:                      nil,
			MontantGlobalTTC:               d("50.00"),
			MontantPriseChargeBeneficiaire: d("50.00"),
		},
	}

	totals := AggregateTotals(conventions)

	assertDecimal(t, "BasePrice", totals.BasePrice, "100")
	assertDecimal(t, "FinalPrice", totals.FinalPrice, "50")
	assertDecimal(t, "OrganismeShare", totals.OrganismeShare, "0")
	assertDecimal(t, "PatientShare", totals.PatientShare, "50")
}

func TestAggregateTotalsExactDecimalArithmetic(t *testing.T) {
	// 0.1 + 0.2 doit donner exactement 0.3
	conventions := []conventionsDto.ConventionResponse{
		{MontantHT: d("0.1")},
		{MontantHT: d("0.2")},
	}

	totals := AggregateTotals(conventions)
	assertDecimal(t, "BasePrice", totals.BasePrice, "0.3")
}

func assertDecimal(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, attendu %s", field, got, want)
	}
}
