package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"clinique-navette-core/internal/infrastructure/database/postgres"
	"clinique-navette-core/internal/modules/fiche-navette/dto"
	"clinique-navette-core/internal/modules/fiche-navette/queries"
	patientsSvc "clinique-navette-core/internal/modules/patients/services"
	"clinique-navette-core/internal/shared/querybuilder"
)

// StatusFilterAll valeur sentinelle du filtre statut: ne filtre rien
const StatusFilterAll = "All"

// SearchService construit et exécute la recherche des fiches navette.
// La recherche libre croise deux stores: les fiches en base principale,
// les identités patients dans la base patients (deux phases, par ids).
type SearchService struct {
	db       *postgres.Client
	patients *patientsSvc.PatientService
	fiches   *FicheNavetteService
}

func NewSearchService(db *postgres.Client, patients *patientsSvc.PatientService, fiches *FicheNavetteService) *SearchService {
	return &SearchService{db: db, patients: patients, fiches: fiches}
}

// List retourne les fiches filtrées, les plus récentes d'abord
func (s *SearchService) List(ctx context.Context, filters dto.SearchFilters, page, perPage int) (*dto.PaginatedFicheNavettes, error) {
	pagination := querybuilder.NewPagination(page, perPage, 10, 100)

	qb := querybuilder.New()

	if filters.Search != "" {
		group, err := s.buildSearchGroup(ctx, filters.Search)
		if err != nil {
			return nil, err
		}
		qb.AndGroup(group)
	}

	// Filtres structurés, cumulés en ET
	qb.AndIf(filters.Status != "" && filters.Status != StatusFilterAll,
		"f.status = ?", filters.Status)
	qb.AndIf(filters.PatientID != nil, "f.patient_id = ?", derefUUID(filters.PatientID))
	qb.AndIf(filters.DateFrom != "", "f.created_at >= ?::date", filters.DateFrom)
	qb.AndIf(filters.DateTo != "", "f.created_at < ?::date + INTERVAL '1 day'", filters.DateTo)
	if filters.CompanyID != nil {
		qb.And(`EXISTS (
			SELECT 1 FROM fiche_navette_items i
			JOIN convention cv ON cv.id = i.prestation_id
			WHERE i.fiche_navette_id = f.id AND cv.company_id = ?
		)`, *filters.CompanyID)
	}

	countQuery, countArgs := qb.BuildCount(queries.FicheNavetteQueries.CountList)
	var total int64
	if err := s.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("erreur comptage fiches: %w", err)
	}

	listQuery, listArgs := qb.Build(queries.FicheNavetteQueries.List,
		"ORDER BY f.created_at DESC LIMIT ? OFFSET ?",
		pagination.Limit(), pagination.Offset())

	fiches, err := s.queryFiches(ctx, listQuery, listArgs)
	if err != nil {
		return nil, err
	}

	return s.paginate(fiches, total, pagination, filters), nil
}

// ListByPatient retourne les fiches d'un patient donné
func (s *SearchService) ListByPatient(ctx context.Context, patientID uuid.UUID, page, perPage int) (*dto.PaginatedFicheNavettes, error) {
	filters := dto.SearchFilters{PatientID: &patientID}
	return s.List(ctx, filters, page, perPage)
}

// buildSearchGroup assemble le groupe OU de la recherche libre:
// numéro, statut, date de fiche, identité patient/assuré (phase 1 dans
// le store patients), nom d'organisme via les prestations
func (s *SearchService) buildSearchGroup(ctx context.Context, term string) (*querybuilder.Group, error) {
	like := "%" + term + "%"

	group := querybuilder.NewGroup().
		Or("f.fn_number ILIKE ?", like).
		Or("f.status ILIKE ?", like).
		Or("f.fiche_date::text ILIKE ?", like).
		Or(`EXISTS (
			SELECT 1 FROM fiche_navette_items i
			JOIN convention cv ON cv.id = i.prestation_id
			JOIN companies c ON c.id = cv.company_id
			WHERE i.fiche_navette_id = f.id AND c.name ILIKE ?
		)`, like)

	patientIDs, err := s.patients.SearchIDs(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(patientIDs) > 0 {
		group.Or("f.patient_id = ANY(?)", patientIDs)
		group.Or("f.insured_id = ANY(?)", patientIDs)
	}

	return group, nil
}

func (s *SearchService) queryFiches(ctx context.Context, query string, args []interface{}) ([]*dto.FicheNavetteResponse, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erreur liste fiches: %w", err)
	}
	defer rows.Close()

	fiches := make([]*dto.FicheNavetteResponse, 0)
	for rows.Next() {
		fiche, err := s.fiches.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("erreur lecture fiche: %w", err)
		}
		fiches = append(fiches, fiche)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erreur parcours fiches: %w", err)
	}

	if err := s.fiches.attachPatients(ctx, fiches); err != nil {
		return nil, err
	}
	if err := s.fiches.attachDoctors(ctx, fiches); err != nil {
		return nil, err
	}
	return fiches, nil
}

func (s *SearchService) paginate(fiches []*dto.FicheNavetteResponse, total int64, pagination querybuilder.Pagination, filters dto.SearchFilters) *dto.PaginatedFicheNavettes {
	flat := make([]dto.FicheNavetteResponse, len(fiches))
	for i, f := range fiches {
		flat[i] = *f
	}
	return &dto.PaginatedFicheNavettes{
		FicheNavettes: flat,
		Total:         total,
		Page:          pagination.Page,
		PerPage:       pagination.PerPage,
		TotalPages:    pagination.TotalPages(total),
		Filters:       filters,
	}
}

func derefUUID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return *id
}
