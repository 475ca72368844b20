package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"clinique-navette-core/internal/infrastructure/database/postgres"
	"clinique-navette-core/internal/modules/patients/dto"
	"clinique-navette-core/internal/modules/patients/queries"
	"clinique-navette-core/internal/shared/apperrors"
	"clinique-navette-core/internal/shared/querybuilder"
)

const uniqueViolationCode = "23505"

type PatientService struct {
	db *postgres.PatientsClient
}

func NewPatientService(db *postgres.PatientsClient) *PatientService {
	return &PatientService{db: db}
}

func (s *PatientService) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, apperrors.Validation("date de naissance invalide", map[string]interface{}{
			"date_of_birth": req.DateOfBirth,
		})
	}

	var patient dto.PatientResponse
	err = s.db.QueryRow(ctx, queries.PatientQueries.Create,
		req.Firstname, req.Lastname, req.Parent, req.Phone, dob,
		req.Gender, req.Idnum, req.Nss,
	).Scan(
		&patient.ID, &patient.Firstname, &patient.Lastname, &patient.Parent,
		&patient.Phone, &patient.DateOfBirth, &patient.Gender,
		&patient.Idnum, &patient.Nss, &patient.CreatedAt, &patient.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.Conflict("un patient avec ce numéro d'identification existe déjà", nil)
		}
		return nil, fmt.Errorf("erreur création patient: %w", err)
	}

	return &patient, nil
}

func (s *PatientService) GetByID(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	var patient dto.PatientResponse
	err := s.db.QueryRow(ctx, queries.PatientQueries.GetByID, id).Scan(
		&patient.ID, &patient.Firstname, &patient.Lastname, &patient.Parent,
		&patient.Phone, &patient.DateOfBirth, &patient.Gender,
		&patient.Idnum, &patient.Nss, &patient.CreatedAt, &patient.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("patient introuvable", nil)
		}
		return nil, fmt.Errorf("erreur récupération patient: %w", err)
	}
	return &patient, nil
}

func (s *PatientService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, apperrors.Validation("date de naissance invalide", map[string]interface{}{
			"date_of_birth": req.DateOfBirth,
		})
	}

	var patient dto.PatientResponse
	err = s.db.QueryRow(ctx, queries.PatientQueries.Update,
		id, req.Firstname, req.Lastname, req.Parent, req.Phone, dob,
		req.Gender, req.Idnum, req.Nss,
	).Scan(
		&patient.ID, &patient.Firstname, &patient.Lastname, &patient.Parent,
		&patient.Phone, &patient.DateOfBirth, &patient.Gender,
		&patient.Idnum, &patient.Nss, &patient.CreatedAt, &patient.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("patient introuvable", nil)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.Conflict("un patient avec ce numéro d'identification existe déjà", nil)
		}
		return nil, fmt.Errorf("erreur mise à jour patient: %w", err)
	}
	return &patient, nil
}

func (s *PatientService) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, queries.PatientQueries.Delete, id)
	if err != nil {
		return fmt.Errorf("erreur suppression patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("patient introuvable", nil)
	}
	return nil
}

// List retourne les patients paginés, les plus récents d'abord. Le terme
// de recherche optionnel filtre sur l'identité et les identifiants.
func (s *PatientService) List(ctx context.Context, search string, page, perPage int) (*dto.PaginatedPatients, error) {
	pagination := querybuilder.NewPagination(page, perPage, 10, 100)

	qb := querybuilder.New()
	if search != "" {
		like := "%" + search + "%"
		qb.AndGroup(querybuilder.NewGroup().
			Or("firstname ILIKE ?", like).
			Or("lastname ILIKE ?", like).
			Or("phone ILIKE ?", like).
			Or("idnum ILIKE ?", like).
			Or("nss ILIKE ?", like))
	}

	countQuery, countArgs := qb.BuildCount(queries.PatientQueries.CountList)
	var total int64
	if err := s.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("erreur comptage patients: %w", err)
	}

	listQuery, listArgs := qb.Build(queries.PatientQueries.List,
		"ORDER BY created_at DESC LIMIT ? OFFSET ?",
		pagination.Limit(), pagination.Offset())

	rows, err := s.db.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("erreur liste patients: %w", err)
	}
	defer rows.Close()

	patients := make([]dto.PatientResponse, 0)
	for rows.Next() {
		var p dto.PatientResponse
		if err := rows.Scan(
			&p.ID, &p.Firstname, &p.Lastname, &p.Parent, &p.Phone,
			&p.DateOfBirth, &p.Gender, &p.Idnum, &p.Nss,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erreur lecture patient: %w", err)
		}
		patients = append(patients, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erreur parcours patients: %w", err)
	}

	return &dto.PaginatedPatients{
		Patients:   patients,
		Total:      total,
		Page:       pagination.Page,
		PerPage:    pagination.PerPage,
		TotalPages: pagination.TotalPages(total),
	}, nil
}

func (s *PatientService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := s.db.QueryRow(ctx, queries.PatientQueries.Exists, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("erreur vérification patient: %w", err)
	}
	return exists, nil
}

// SearchIDs retourne les ids des patients dont l'identité correspond au
// terme. Utilisé par la recherche de fiches navettes : les patients vivent
// dans une base distincte, on rapatrie d'abord les ids.
func (s *PatientService) SearchIDs(ctx context.Context, term string) ([]uuid.UUID, error) {
	like := "%" + term + "%"
	rows, err := s.db.Query(ctx, queries.PatientQueries.SearchIDs, like)
	if err != nil {
		return nil, fmt.Errorf("erreur recherche patients: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erreur lecture id patient: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// GetSummariesByIDs récupère en un aller-retour l'identité des patients
// référencés par un lot de fiches.
func (s *PatientService) GetSummariesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]dto.PatientSummary, error) {
	summaries := make(map[uuid.UUID]dto.PatientSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	rows, err := s.db.Query(ctx, queries.PatientQueries.GetSummariesByID, ids)
	if err != nil {
		return nil, fmt.Errorf("erreur récupération identités patients: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var summary dto.PatientSummary
		if err := rows.Scan(&summary.ID, &summary.Firstname, &summary.Lastname,
			&summary.Phone, &summary.Idnum); err != nil {
			return nil, fmt.Errorf("erreur lecture identité patient: %w", err)
		}
		summaries[summary.ID] = summary
	}
	return summaries, rows.Err()
}
