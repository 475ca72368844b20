package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clinique-navette-core/internal/infrastructure/database/postgres"
	redisInfra "clinique-navette-core/internal/infrastructure/database/redis"
	"clinique-navette-core/internal/modules/dashboard/dto"
	"clinique-navette-core/internal/modules/dashboard/queries"
	ficheDto "clinique-navette-core/internal/modules/fiche-navette/dto"
	ficheSvc "clinique-navette-core/internal/modules/fiche-navette/services"
	patientsSvc "clinique-navette-core/internal/modules/patients/services"
)

// statsCacheTTL durée de vie du cache des statistiques
const statsCacheTTL = 60 * time.Second

// DashboardService agrège les indicateurs des deux bases PostgreSQL
type DashboardService struct {
	db       *postgres.Client
	redis    *redisInfra.Client
	patients *patientsSvc.PatientService
	search   *ficheSvc.SearchService
}

func NewDashboardService(
	db *postgres.Client,
	redis *redisInfra.Client,
	patients *patientsSvc.PatientService,
	search *ficheSvc.SearchService,
) *DashboardService {
	return &DashboardService{
		db:       db,
		redis:    redis,
		patients: patients,
		search:   search,
	}
}

// Get assemble statistiques, 5 dernières fiches et 5 derniers patients
func (s *DashboardService) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	recentPatients, err := s.patients.List(ctx, "", 1, 5)
	if err != nil {
		return nil, err
	}

	stats, err := s.getStats(ctx, recentPatients.Total)
	if err != nil {
		return nil, err
	}

	recentFiches, err := s.search.List(ctx, ficheDto.SearchFilters{}, 1, 5)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		Stats:          *stats,
		RecentFiches:   recentFiches.FicheNavettes,
		RecentPatients: recentPatients.Patients,
	}, nil
}

func (s *DashboardService) getStats(ctx context.Context, patientCount int64) (*dto.DashboardStats, error) {
	// Cache court, le tableau de bord est la page la plus consultée
	if cached, err := s.redis.Get(ctx, redisInfra.DashboardStatsKey()); err == nil && cached != "" {
		var stats dto.DashboardStats
		if json.Unmarshal([]byte(cached), &stats) == nil {
			return &stats, nil
		}
	}

	stats := dto.DashboardStats{Patients: patientCount}

	if err := s.db.QueryRow(ctx, queries.DashboardQueries.Counts).Scan(
		&stats.Companies, &stats.Services, &stats.Conventions, &stats.FicheNavettes,
	); err != nil {
		return nil, fmt.Errorf("erreur comptage tableau de bord: %w", err)
	}

	if err := s.db.QueryRow(ctx, queries.DashboardQueries.Sums).Scan(
		&stats.TotalFinal, &stats.TotalPatient, &stats.TotalOrganisme,
	); err != nil {
		return nil, fmt.Errorf("erreur cumuls tableau de bord: %w", err)
	}

	if payload, err := json.Marshal(stats); err == nil {
		// Best effort, le tableau de bord reste servi si Redis est absent
		s.redis.Set(ctx, redisInfra.DashboardStatsKey(), payload, statsCacheTTL)
	}

	return &stats, nil
}
