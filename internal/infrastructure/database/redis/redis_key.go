package redis

import "fmt"

// Conventions de clés Redis du projet.
// Pattern: clinique_navette_{domain}_{context}:{identifier}

// SequencePreviewKey clé du cache d'aperçu du prochain numéro de
// fiche navette pour une année. Invalidée à chaque création.
func SequencePreviewKey(year int) string {
	return fmt.Sprintf("clinique_navette_sequence_preview:%d", year)
}

// SequenceLockKey lock court protégeant le recalcul de l'aperçu
func SequenceLockKey(year int) string {
	return fmt.Sprintf("clinique_navette_sequence_lock:%d", year)
}

// DashboardStatsKey cache des statistiques du tableau de bord
func DashboardStatsKey() string {
	return "clinique_navette_dashboard_stats"
}
