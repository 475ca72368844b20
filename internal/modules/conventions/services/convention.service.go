package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"clinique-navette-core/internal/infrastructure/database/postgres"
	"clinique-navette-core/internal/modules/conventions/dto"
	"clinique-navette-core/internal/modules/conventions/queries"
	"clinique-navette-core/internal/shared/apperrors"
	"clinique-navette-core/internal/shared/querybuilder"
)

const uniqueViolationCode = "23505"

type ConventionService struct {
	db *postgres.Client
}

func NewConventionService(db *postgres.Client) *ConventionService {
	return &ConventionService{db: db}
}

func (s *ConventionService) Create(ctx context.Context, req *dto.CreateConventionRequest) (*dto.ConventionResponse, error) {
	var cv dto.ConventionResponse
	err := s.db.QueryRow(ctx, queries.ConventionQueries.Create,
		req.ServiceID, req.CompanyID, req.Code, req.DesignationPrestation,
		req.MontantHT, req.MontantGlobalTTC,
		req.MontantPriseChargeEntreprise, req.MontantPriseChargeBeneficiaire,
	).Scan(
		&cv.ID, &cv.ServiceID, &cv.CompanyID, &cv.Code, &cv.DesignationPrestation,
		&cv.MontantHT, &cv.MontantGlobalTTC,
		&cv.MontantPriseChargeEntreprise, &cv.MontantPriseChargeBeneficiaire,
		&cv.CreatedAt, &cv.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.Conflict("une convention avec ce code existe déjà", map[string]interface{}{
				"code": req.Code,
			})
		}
		return nil, fmt.Errorf("erreur création convention: %w", err)
	}
	return &cv, nil
}

func (s *ConventionService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ConventionResponse, error) {
	var cv dto.ConventionResponse
	err := s.db.QueryRow(ctx, queries.ConventionQueries.GetByID, id).Scan(
		&cv.ID, &cv.ServiceID, &cv.CompanyID, &cv.ServiceName, &cv.CompanyName,
		&cv.Code, &cv.DesignationPrestation,
		&cv.MontantHT, &cv.MontantGlobalTTC,
		&cv.MontantPriseChargeEntreprise, &cv.MontantPriseChargeBeneficiaire,
		&cv.CreatedAt, &cv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("convention introuvable", nil)
		}
		return nil, fmt.Errorf("erreur récupération convention: %w", err)
	}
	return &cv, nil
}

func (s *ConventionService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateConventionRequest) (*dto.ConventionResponse, error) {
	var cv dto.ConventionResponse
	err := s.db.QueryRow(ctx, queries.ConventionQueries.Update,
		id, req.ServiceID, req.CompanyID, req.Code, req.DesignationPrestation,
		req.MontantHT, req.MontantGlobalTTC,
		req.MontantPriseChargeEntreprise, req.MontantPriseChargeBeneficiaire,
	).Scan(
		&cv.ID, &cv.ServiceID, &cv.CompanyID, &cv.Code, &cv.DesignationPrestation,
		&cv.MontantHT, &cv.MontantGlobalTTC,
		&cv.MontantPriseChargeEntreprise, &cv.MontantPriseChargeBeneficiaire,
		&cv.CreatedAt, &cv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("convention introuvable", nil)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.Conflict("une convention avec ce code existe déjà", map[string]interface{}{
				"code": req.Code,
			})
		}
		return nil, fmt.Errorf("erreur mise à jour convention: %w", err)
	}
	return &cv, nil
}

func (s *ConventionService) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, queries.ConventionQueries.Delete, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.Conflict("la convention est référencée par des fiches navette", nil)
		}
		return fmt.Errorf("erreur suppression convention: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("convention introuvable", nil)
	}
	return nil
}

// List retourne les conventions paginées, filtrables par organisme,
// service et recherche texte sur code/désignation
func (s *ConventionService) List(ctx context.Context, search string, companyID, serviceID *uuid.UUID, page, perPage int) (*dto.PaginatedConventions, error) {
	pagination := querybuilder.NewPagination(page, perPage, 10, 100)

	qb := querybuilder.New()
	if search != "" {
		like := "%" + search + "%"
		qb.AndGroup(querybuilder.NewGroup().
			Or("cv.code ILIKE ?", like).
			Or("cv.designation_prestation ILIKE ?", like))
	}
	if companyID != nil {
		qb.And("cv.company_id = ?", *companyID)
	}
	if serviceID != nil {
		qb.And("cv.service_id = ?", *serviceID)
	}

	countQuery, countArgs := qb.BuildCount(queries.ConventionQueries.CountList)
	var total int64
	if err := s.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("erreur comptage conventions: %w", err)
	}

	listQuery, listArgs := qb.Build(queries.ConventionQueries.List,
		"ORDER BY cv.created_at DESC LIMIT ? OFFSET ?",
		pagination.Limit(), pagination.Offset())

	rows, err := s.db.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("erreur liste conventions: %w", err)
	}
	defer rows.Close()

	conventions := make([]dto.ConventionResponse, 0)
	for rows.Next() {
		var cv dto.ConventionResponse
		if err := rows.Scan(
			&cv.ID, &cv.ServiceID, &cv.CompanyID, &cv.ServiceName, &cv.CompanyName,
			&cv.Code, &cv.DesignationPrestation,
			&cv.MontantHT, &cv.MontantGlobalTTC,
			&cv.MontantPriseChargeEntreprise, &cv.MontantPriseChargeBeneficiaire,
			&cv.CreatedAt, &cv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erreur lecture convention: %w", err)
		}
		conventions = append(conventions, cv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erreur parcours conventions: %w", err)
	}

	return &dto.PaginatedConventions{
		Conventions: conventions,
		Total:       total,
		Page:        pagination.Page,
		PerPage:     pagination.PerPage,
		TotalPages:  pagination.TotalPages(total),
	}, nil
}

// GetByIDs charge un lot de conventions, pour l'agrégation tarifaire
func (s *ConventionService) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]dto.ConventionResponse, error) {
	if len(ids) == 0 {
		return []dto.ConventionResponse{}, nil
	}

	rows, err := s.db.Query(ctx, queries.ConventionQueries.GetByIDs, ids)
	if err != nil {
		return nil, fmt.Errorf("erreur chargement conventions: %w", err)
	}
	defer rows.Close()

	conventions := make([]dto.ConventionResponse, 0, len(ids))
	for rows.Next() {
		var cv dto.ConventionResponse
		if err := rows.Scan(
			&cv.ID, &cv.ServiceID, &cv.CompanyID, &cv.ServiceName, &cv.CompanyName,
			&cv.Code, &cv.DesignationPrestation,
			&cv.MontantHT, &cv.MontantGlobalTTC,
			&cv.MontantPriseChargeEntreprise, &cv.MontantPriseChargeBeneficiaire,
			&cv.CreatedAt, &cv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erreur lecture convention: %w", err)
		}
		conventions = append(conventions, cv)
	}
	return conventions, rows.Err()
}
