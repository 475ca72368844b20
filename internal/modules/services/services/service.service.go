package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"clinique-navette-core/internal/infrastructure/database/postgres"
	"clinique-navette-core/internal/modules/services/dto"
	"clinique-navette-core/internal/modules/services/queries"
	"clinique-navette-core/internal/shared/apperrors"
	"clinique-navette-core/internal/shared/querybuilder"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

type ServiceService struct {
	db *postgres.Client
}

func NewServiceService(db *postgres.Client) *ServiceService {
	return &ServiceService{db: db}
}

func (s *ServiceService) Create(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	var svc dto.ServiceResponse
	err := s.db.QueryRow(ctx, queries.ServiceQueries.Create,
		req.Name, req.Description, req.CompanyID,
	).Scan(
		&svc.ID, &svc.Name, &svc.Description, &svc.CompanyID,
		&svc.CreatedAt, &svc.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolationCode:
				return nil, apperrors.Conflict("un service avec ce nom existe déjà pour cet organisme", nil)
			case foreignKeyViolationCode:
				return nil, apperrors.Validation("organisme inconnu", map[string]interface{}{
					"company_id": req.CompanyID,
				})
			}
		}
		return nil, fmt.Errorf("erreur création service: %w", err)
	}
	return &svc, nil
}

func (s *ServiceService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ServiceResponse, error) {
	var svc dto.ServiceResponse
	err := s.db.QueryRow(ctx, queries.ServiceQueries.GetByID, id).Scan(
		&svc.ID, &svc.Name, &svc.Description, &svc.CompanyID, &svc.CompanyName,
		&svc.CreatedAt, &svc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("service introuvable", nil)
		}
		return nil, fmt.Errorf("erreur récupération service: %w", err)
	}
	return &svc, nil
}

func (s *ServiceService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	var svc dto.ServiceResponse
	err := s.db.QueryRow(ctx, queries.ServiceQueries.Update,
		id, req.Name, req.Description, req.CompanyID,
	).Scan(
		&svc.ID, &svc.Name, &svc.Description, &svc.CompanyID,
		&svc.CreatedAt, &svc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("service introuvable", nil)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.Conflict("un service avec ce nom existe déjà pour cet organisme", nil)
		}
		return nil, fmt.Errorf("erreur mise à jour service: %w", err)
	}
	return &svc, nil
}

func (s *ServiceService) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, queries.ServiceQueries.Delete, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return apperrors.Conflict("le service est référencé par des conventions", nil)
		}
		return fmt.Errorf("erreur suppression service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("service introuvable", nil)
	}
	return nil
}

// List retourne les services paginés, filtrables par organisme et par nom
func (s *ServiceService) List(ctx context.Context, search string, companyID *uuid.UUID, page, perPage int) (*dto.PaginatedServices, error) {
	pagination := querybuilder.NewPagination(page, perPage, 10, 100)

	qb := querybuilder.New()
	if search != "" {
		qb.And("s.name ILIKE ?", "%"+search+"%")
	}
	if companyID != nil {
		qb.And("s.company_id = ?", *companyID)
	}

	countQuery, countArgs := qb.BuildCount(queries.ServiceQueries.CountList)
	var total int64
	if err := s.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("erreur comptage services: %w", err)
	}

	listQuery, listArgs := qb.Build(queries.ServiceQueries.List,
		"ORDER BY s.created_at DESC LIMIT ? OFFSET ?",
		pagination.Limit(), pagination.Offset())

	rows, err := s.db.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("erreur liste services: %w", err)
	}
	defer rows.Close()

	servicesList := make([]dto.ServiceResponse, 0)
	for rows.Next() {
		var svc dto.ServiceResponse
		if err := rows.Scan(
			&svc.ID, &svc.Name, &svc.Description, &svc.CompanyID, &svc.CompanyName,
			&svc.CreatedAt, &svc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erreur lecture service: %w", err)
		}
		servicesList = append(servicesList, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erreur parcours services: %w", err)
	}

	return &dto.PaginatedServices{
		Services:   servicesList,
		Total:      total,
		Page:       pagination.Page,
		PerPage:    pagination.PerPage,
		TotalPages: pagination.TotalPages(total),
	}, nil
}

// ListAll retourne tous les services triés par nom, pour les sélecteurs
func (s *ServiceService) ListAll(ctx context.Context) ([]dto.ServiceResponse, error) {
	rows, err := s.db.Query(ctx, queries.ServiceQueries.ListAll)
	if err != nil {
		return nil, fmt.Errorf("erreur liste services: %w", err)
	}
	defer rows.Close()

	servicesList := make([]dto.ServiceResponse, 0)
	for rows.Next() {
		var svc dto.ServiceResponse
		if err := rows.Scan(
			&svc.ID, &svc.Name, &svc.Description, &svc.CompanyID, &svc.CompanyName,
			&svc.CreatedAt, &svc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erreur lecture service: %w", err)
		}
		servicesList = append(servicesList, svc)
	}
	return servicesList, rows.Err()
}
