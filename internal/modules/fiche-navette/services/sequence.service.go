package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"clinique-navette-core/internal/infrastructure/database/postgres"
	redisInfra "clinique-navette-core/internal/infrastructure/database/redis"
	"clinique-navette-core/internal/modules/fiche-navette/dto"
	"clinique-navette-core/internal/modules/fiche-navette/queries"
)

// SequenceService gère la numérotation annuelle des fiches navette.
// Format: {n}/{année}, sans zéro de tête, remis à 1 chaque année.
type SequenceService struct {
	db    *postgres.Client
	redis *redisInfra.Client
}

func NewSequenceService(db *postgres.Client, redis *redisInfra.Client) *SequenceService {
	return &SequenceService{db: db, redis: redis}
}

// NextFromLast calcule le numéro suivant à partir du dernier numéro émis.
// Un dernier numéro absent, d'une autre année ou illisible repart à 1:
// la séquence ne se prolonge jamais d'une année sur l'autre.
func NextFromLast(lastNumber string, year int) string {
	parts := strings.Split(lastNumber, "/")
	if len(parts) != 2 {
		return fmt.Sprintf("1/%d", year)
	}

	lastYear, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || lastYear != year {
		return fmt.Sprintf("1/%d", year)
	}

	n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || n < 0 {
		return fmt.Sprintf("1/%d", year)
	}

	return fmt.Sprintf("%d/%d", n+1, year)
}

// Allocate réserve le prochain numéro de l'année dans la transaction de
// création. L'UPSERT verrouille la ligne du compteur jusqu'au commit,
// deux créations simultanées ne peuvent donc pas obtenir le même numéro.
func (s *SequenceService) Allocate(ctx context.Context, tx *postgres.Transaction, year int) (string, error) {
	var lastNumber int
	err := tx.QueryRow(ctx, queries.FicheNavetteQueries.AllocateNumber, year).Scan(&lastNumber)
	if err != nil {
		return "", fmt.Errorf("erreur allocation numéro fiche: %w", err)
	}
	return fmt.Sprintf("%d/%d", lastNumber, year), nil
}

// PreviewNext retourne un aperçu consultatif du prochain numéro. La
// valeur n'est pas réservée: le numéro réel est attribué à la création.
func (s *SequenceService) PreviewNext(ctx context.Context) (*dto.NextNumberResponse, error) {
	year := time.Now().Year()

	// Tentative rapide via le cache Redis
	if cached, err := s.redis.Get(ctx, redisInfra.SequencePreviewKey(year)); err == nil && cached != "" {
		return &dto.NextNumberResponse{NextNumber: cached, Year: year}, nil
	}

	next, err := s.previewFromPostgres(ctx, year)
	if err != nil {
		return nil, err
	}

	// Remplissage du cache, best effort sous lock court
	s.cachePreview(ctx, year, next)

	return &dto.NextNumberResponse{NextNumber: next, Year: year}, nil
}

// InvalidatePreview purge l'aperçu après une création, le prochain
// appel recalculera depuis PostgreSQL. Best effort.
func (s *SequenceService) InvalidatePreview(ctx context.Context, year int) {
	s.redis.Del(ctx, redisInfra.SequencePreviewKey(year))
}

func (s *SequenceService) previewFromPostgres(ctx context.Context, year int) (string, error) {
	var lastNumber string
	err := s.db.QueryRow(ctx, queries.FicheNavetteQueries.LastNumberOfYear,
		strconv.Itoa(year)).Scan(&lastNumber)
	if err != nil {
		if err == pgx.ErrNoRows {
			return NextFromLast("", year), nil
		}
		return "", fmt.Errorf("erreur lecture dernier numéro: %w", err)
	}
	return NextFromLast(lastNumber, year), nil
}

func (s *SequenceService) cachePreview(ctx context.Context, year int, next string) {
	locked, err := s.redis.SetNX(ctx, redisInfra.SequenceLockKey(year), "1", 5*time.Second)
	if err != nil || !locked {
		return
	}
	defer s.redis.Del(ctx, redisInfra.SequenceLockKey(year))

	s.redis.Set(ctx, redisInfra.SequencePreviewKey(year), next, ttlUntilYearEnd())
}

// ttlUntilYearEnd expire les clés annuelles au 31 décembre 23:59:59
func ttlUntilYearEnd() time.Duration {
	now := time.Now()
	endOfYear := time.Date(now.Year(), 12, 31, 23, 59, 59, 0, now.Location())
	return endOfYear.Sub(now)
}
