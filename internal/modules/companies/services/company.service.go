package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"clinique-navette-core/internal/infrastructure/database/postgres"
	"clinique-navette-core/internal/modules/companies/dto"
	"clinique-navette-core/internal/modules/companies/queries"
	"clinique-navette-core/internal/shared/apperrors"
	"clinique-navette-core/internal/shared/querybuilder"
)

const uniqueViolationCode = "23505"

var (
	percentMin = decimal.Zero
	percentMax = decimal.NewFromInt(100)
)

type CompanyService struct {
	db *postgres.Client
}

func NewCompanyService(db *postgres.Client) *CompanyService {
	return &CompanyService{db: db}
}

// validatePercentages borne les taux de prise en charge entre 0 et 100
func validatePercentages(req *dto.CreateCompanyRequest) error {
	for field, value := range map[string]*decimal.Decimal{
		"pourcentage_company": req.PourcentageCompany,
		"pourcentage_benefit": req.PourcentageBenefit,
	} {
		if value == nil {
			continue
		}
		if value.LessThan(percentMin) || value.GreaterThan(percentMax) {
			return apperrors.Validation("le pourcentage doit être compris entre 0 et 100", map[string]interface{}{
				"champ":  field,
				"valeur": value.String(),
			})
		}
	}
	if req.Augmentation != nil && req.Augmentation.IsNegative() {
		return apperrors.Validation("l'augmentation ne peut pas être négative", map[string]interface{}{
			"champ":  "augmentation",
			"valeur": req.Augmentation.String(),
		})
	}
	return nil
}

func (s *CompanyService) Create(ctx context.Context, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := validatePercentages(req); err != nil {
		return nil, err
	}

	var company dto.CompanyResponse
	err := s.db.QueryRow(ctx, queries.CompanyQueries.Create,
		req.Name, req.Abbreviation, req.Augmentation,
		req.PourcentageCompany, req.PourcentageBenefit,
	).Scan(
		&company.ID, &company.Name, &company.Abbreviation, &company.Augmentation,
		&company.PourcentageCompany, &company.PourcentageBenefit,
		&company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.Conflict("un organisme avec ce nom ou cette abréviation existe déjà", nil)
		}
		return nil, fmt.Errorf("erreur création organisme: %w", err)
	}
	return &company, nil
}

func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*dto.CompanyResponse, error) {
	var company dto.CompanyResponse
	err := s.db.QueryRow(ctx, queries.CompanyQueries.GetByID, id).Scan(
		&company.ID, &company.Name, &company.Abbreviation, &company.Augmentation,
		&company.PourcentageCompany, &company.PourcentageBenefit,
		&company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("organisme introuvable", nil)
		}
		return nil, fmt.Errorf("erreur récupération organisme: %w", err)
	}
	return &company, nil
}

func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := validatePercentages(req); err != nil {
		return nil, err
	}

	var company dto.CompanyResponse
	err := s.db.QueryRow(ctx, queries.CompanyQueries.Update,
		id, req.Name, req.Abbreviation, req.Augmentation,
		req.PourcentageCompany, req.PourcentageBenefit,
	).Scan(
		&company.ID, &company.Name, &company.Abbreviation, &company.Augmentation,
		&company.PourcentageCompany, &company.PourcentageBenefit,
		&company.CreatedAt, &company.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("organisme introuvable", nil)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, apperrors.Conflict("un organisme avec ce nom ou cette abréviation existe déjà", nil)
		}
		return nil, fmt.Errorf("erreur mise à jour organisme: %w", err)
	}
	return &company, nil
}

func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, queries.CompanyQueries.Delete, id)
	if err != nil {
		return fmt.Errorf("erreur suppression organisme: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("organisme introuvable", nil)
	}
	return nil
}

func (s *CompanyService) List(ctx context.Context, search string, page, perPage int) (*dto.PaginatedCompanies, error) {
	pagination := querybuilder.NewPagination(page, perPage, 10, 100)

	qb := querybuilder.New()
	if search != "" {
		like := "%" + search + "%"
		qb.AndGroup(querybuilder.NewGroup().
			Or("name ILIKE ?", like).
			Or("abbreviation ILIKE ?", like))
	}

	countQuery, countArgs := qb.BuildCount(queries.CompanyQueries.CountList)
	var total int64
	if err := s.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("erreur comptage organismes: %w", err)
	}

	listQuery, listArgs := qb.Build(queries.CompanyQueries.List,
		"ORDER BY created_at DESC LIMIT ? OFFSET ?",
		pagination.Limit(), pagination.Offset())

	rows, err := s.db.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, fmt.Errorf("erreur liste organismes: %w", err)
	}
	defer rows.Close()

	companies := make([]dto.CompanyResponse, 0)
	for rows.Next() {
		var c dto.CompanyResponse
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Abbreviation, &c.Augmentation,
			&c.PourcentageCompany, &c.PourcentageBenefit,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erreur lecture organisme: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erreur parcours organismes: %w", err)
	}

	return &dto.PaginatedCompanies{
		Companies:  companies,
		Total:      total,
		Page:       pagination.Page,
		PerPage:    pagination.PerPage,
		TotalPages: pagination.TotalPages(total),
	}, nil
}

// ListAll retourne tous les organismes triés par nom, pour les sélecteurs
func (s *CompanyService) ListAll(ctx context.Context) ([]dto.CompanyResponse, error) {
	rows, err := s.db.Query(ctx, queries.CompanyQueries.ListAll)
	if err != nil {
		return nil, fmt.Errorf("erreur liste organismes: %w", err)
	}
	defer rows.Close()

	companies := make([]dto.CompanyResponse, 0)
	for rows.Next() {
		var c dto.CompanyResponse
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Abbreviation, &c.Augmentation,
			&c.PourcentageCompany, &c.PourcentageBenefit,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("erreur lecture organisme: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}
