package bootstrap

import (
	"context"
	_ "embed"
	"fmt"

	"clinique-navette-core/internal/infrastructure/database/postgres"
)

//go:embed schema.sql
var mainSchema string

//go:embed patients_schema.sql
var patientsSchema string

// SchemaService applique le schéma embarqué au démarrage.
// Le DDL est idempotent (CREATE ... IF NOT EXISTS), le service peut
// donc tourner à chaque boot sans état de migration externe.
type SchemaService struct {
	db       *postgres.Client
	patients *postgres.PatientsClient
}

func NewSchemaService(db *postgres.Client, patients *postgres.PatientsClient) *SchemaService {
	return &SchemaService{
		db:       db,
		patients: patients,
	}
}

// Apply exécute le DDL sur les deux bases logiques
func (s *SchemaService) Apply(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, mainSchema); err != nil {
		return fmt.Errorf("application schéma base principale: %w", err)
	}

	if _, err := s.patients.Exec(ctx, patientsSchema); err != nil {
		return fmt.Errorf("application schéma base patients: %w", err)
	}

	return nil
}

// ValidateRequiredTables vérifie que les tables critiques existent
func (s *SchemaService) ValidateRequiredTables(ctx context.Context) error {
	requiredTables := []string{
		"companies",
		"services",
		"convention",
		"fiche_navettes",
		"fiche_navette_items",
		"doctor_fiche_navettes",
		"fiche_navette_counters",
	}

	for _, table := range requiredTables {
		exists, err := s.checkTableExists(ctx, table)
		if err != nil {
			return fmt.Errorf("erreur vérification table %s: %w", table, err)
		}
		if !exists {
			return fmt.Errorf("table requise absente: %s", table)
		}
	}

	return nil
}

func (s *SchemaService) checkTableExists(ctx context.Context, table string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.tables
			WHERE table_schema = 'public' AND table_name = $1
		)
	`, table).Scan(&exists)
	return exists, err
}
