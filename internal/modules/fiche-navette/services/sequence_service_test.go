package services

import "testing"

func TestNextFromLast(t *testing.T) {
	cases := []struct {
		name string
		last string
		year int
		want string
	}{
		{
			name: "aucune fiche pour l'année",
			last: "",
			year: 2025,
			want: "1/2025",
		},
		{
			name: "incrément dans la même année",
			last: "7/2025",
			year: 2025,
			want: "8/2025",
		},
		{
			name: "changement d'année remet à 1",
			last: "7/2024",
			year: 2025,
			want: "1/2025",
		},
		{
			name: "grand numéro sans padding",
			last: "999/2025",
			year: 2025,
			want: "1000/2025",
		},
		{
			name: "numéro illisible toléré",
			last: "garbage",
			year: 2025,
			want: "1/2025",
		},
		{
			name: "préfixe non numérique toléré",
			last: "abc/2025",
			year: 2025,
			want: "1/2025",
		},
		{
			name: "année non numérique tolérée",
			last: "12/deux-mille",
			year: 2025,
			want: "1/2025",
		},
		{
			name: "trop de séparateurs toléré",
			last: "1/2/2025",
			year: 2025,
			want: "1/2025",
		},
		{
			name: "espaces tolérés",
			last: " 41 / 2025 ",
			year: 2025,
			want: "42/2025",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextFromLast(tc.last, tc.year)
			if got != tc.want {
				t.Errorf("NextFromLast(%q, %d) = %q, attendu %q", tc.last, tc.year, got, tc.want)
			}
		})
	}
}

func TestNextFromLastNeverPads(t *testing.T) {
	got := NextFromLast("08/2025", 2025)
	if got != "9/2025" {
		t.Errorf("le numéro ne doit pas être paddé: obtenu %q", got)
	}
}
