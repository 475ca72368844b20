package queries

// DashboardQueries requêtes d'agrégation du tableau de bord
var DashboardQueries = struct {
	Counts string
	Sums   string
}{
	Counts: `
		SELECT
			(SELECT COUNT(*) FROM companies),
			(SELECT COUNT(*) FROM services),
			(SELECT COUNT(*) FROM convention),
			(SELECT COUNT(*) FROM fiche_navettes)
	`,

	Sums: `
		SELECT
			COALESCE(SUM(final_price), 0),
			COALESCE(SUM(patient_share), 0),
			COALESCE(SUM(organisme_share), 0)
		FROM fiche_navettes
	`,
}
