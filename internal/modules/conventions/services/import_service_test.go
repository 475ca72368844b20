package services

import (
	"testing"

	"github.com/google/uuid"
)

func TestSlugHeader(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Montant HT", "montant_ht"},
		{"  Désignation Prestation ", "d_signation_prestation"},
		{"MONTANT GLOBAL TTC", "montant_global_ttc"},
		{"code", "code"},
		{"Prise en charge (entreprise)", "prise_en_charge_entreprise"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := slugHeader(tc.in); got != tc.want {
			t.Errorf("slugHeader(%q) = %q, attendu %q", tc.in, got, tc.want)
		}
	}
}

func TestFindDesignation(t *testing.T) {
	cases := []struct {
		name string
		row  map[string]string
		want string
	}{
		{
			name: "colonne designation_prestation",
			row:  map[string]string{"designation_prestation": "Consultation générale"},
			want: "Consultation générale",
		},
		{
			name: "synonyme acte",
			row:  map[string]string{"acte": "Radiographie thorax"},
			want: "Radiographie thorax",
		},
		{
			name: "priorité des synonymes",
			row: map[string]string{
				"designations_des_actes": "Prioritaire",
				"acte":                   "Secondaire",
			},
			want: "Prioritaire",
		},
		{
			name: "valeur vide ignorée",
			row: map[string]string{
				"designation": "  ",
				"prestation":  "Scanner",
			},
			want: "Scanner",
		},
		{
			name: "aucune colonne connue",
			row:  map[string]string{"autre": "valeur"},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := findDesignation(tc.row); got != tc.want {
				t.Errorf("findDesignation = %q, attendu %q", got, tc.want)
			}
		})
	}
}

func TestConvertToNumeric(t *testing.T) {
	cases := []struct {
		in       string
		want     string
		wantNil  bool
		wantWarn bool
	}{
		{in: "1500.50", want: "1500.5"},
		{in: "1500,50", want: "1500.5"},
		{in: "1 500,50 DA", want: "1500.5"},
		{in: "-42", want: "-42"},
		{in: "", wantNil: true},
		{in: "   ", wantNil: true},
		{in: "=B2*C2", wantNil: true, wantWarn: true},
		{in: "abc", wantNil: true, wantWarn: true},
	}

	for _, tc := range cases {
		got, warn := convertToNumeric(tc.in)
		if tc.wantNil {
			if got != nil {
				t.Errorf("convertToNumeric(%q) = %s, attendu nil", tc.in, got)
			}
		} else {
			if got == nil {
				t.Fatalf("convertToNumeric(%q) = nil, attendu %s", tc.in, tc.want)
			}
			if got.String() != tc.want {
				t.Errorf("convertToNumeric(%q) = %s, attendu %s", tc.in, got, tc.want)
			}
		}
		if tc.wantWarn && warn == "" {
			t.Errorf("convertToNumeric(%q): avertissement attendu", tc.in)
		}
		if !tc.wantWarn && warn != "" {
			t.Errorf("convertToNumeric(%q): avertissement inattendu %q", tc.in, warn)
		}
	}
}

func TestGenerateCode(t *testing.T) {
	serviceID := uuid.MustParse("8f14e45f-ceea-467f-a0f9-b1a0c9d2e3f4")

	got := generateCode("CNAS", &serviceID, 0)
	want := "CNAS_8f14e45f-ceea-467f-a0f9-b1a0c9d2e3f4_0"
	if got != want {
		t.Errorf("generateCode = %q, attendu %q", got, want)
	}

	got = generateCode("UNKNOWN", nil, 7)
	want = "UNKNOWN_NOSERVICE_7"
	if got != want {
		t.Errorf("generateCode sans service = %q, attendu %q", got, want)
	}
}

func TestMapRowAndEmptyDetection(t *testing.T) {
	headers := []string{"code", "designation", "montant_ht"}

	row := mapRow(headers, []string{"C1", "Consultation", "1000"})
	if row["code"] != "C1" || row["designation"] != "Consultation" || row["montant_ht"] != "1000" {
		t.Errorf("mapRow mal construit: %v", row)
	}

	// Ligne plus courte que l'en-tête
	short := mapRow(headers, []string{"C2"})
	if short["montant_ht"] != "" {
		t.Errorf("colonne manquante devrait être vide, obtenu %q", short["montant_ht"])
	}

	if !rowIsEmpty(mapRow(headers, []string{"", "  ", ""})) {
		t.Error("ligne blanche non détectée comme vide")
	}
	if rowIsEmpty(row) {
		t.Error("ligne remplie détectée comme vide")
	}
}
