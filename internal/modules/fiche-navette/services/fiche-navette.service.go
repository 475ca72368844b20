package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"clinique-navette-core/internal/infrastructure/database/postgres"
	conventionsSvc "clinique-navette-core/internal/modules/conventions/services"
	doctorsSvc "clinique-navette-core/internal/modules/doctors/services"
	"clinique-navette-core/internal/modules/fiche-navette/dto"
	"clinique-navette-core/internal/modules/fiche-navette/queries"
	patientsSvc "clinique-navette-core/internal/modules/patients/services"
	"clinique-navette-core/internal/shared/apperrors"
)

// FicheNavetteService orchestre le cycle de vie des fiches navette:
// création transactionnelle avec numérotation et calcul des montants,
// mise à jour, changement de statut, suppression.
type FicheNavetteService struct {
	db          *postgres.Client
	txManager   *postgres.TransactionManager
	sequence    *SequenceService
	conventions *conventionsSvc.ConventionService
	patients    *patientsSvc.PatientService
	doctors     *doctorsSvc.DoctorService
}

func NewFicheNavetteService(
	db *postgres.Client,
	txManager *postgres.TransactionManager,
	sequence *SequenceService,
	conventions *conventionsSvc.ConventionService,
	patients *patientsSvc.PatientService,
	doctors *doctorsSvc.DoctorService,
) *FicheNavetteService {
	return &FicheNavetteService{
		db:          db,
		txManager:   txManager,
		sequence:    sequence,
		conventions: conventions,
		patients:    patients,
		doctors:     doctors,
	}
}

// ValidateFamilyAuth vérifie le lien de parenté et l'exigence d'assuré:
// tout lien autre qu'adhérent impose d'identifier l'assuré principal.
func ValidateFamilyAuth(familyAuth string, insuredID *uuid.UUID) error {
	if !dto.ValidFamilyAuths[familyAuth] {
		return apperrors.Validation("lien de parenté invalide", map[string]interface{}{
			"family_auth": familyAuth,
		})
	}
	if familyAuth != dto.FamilyAuthAdherent && insuredID == nil {
		return apperrors.Validation("l'assuré principal est requis pour ce lien de parenté", map[string]interface{}{
			"family_auth": familyAuth,
		})
	}
	return nil
}

func (s *FicheNavetteService) Create(ctx context.Context, req *dto.CreateFicheNavetteRequest) (*dto.FicheNavetteResponse, error) {
	ficheDate, err := time.Parse("2006-01-02", req.FicheDate)
	if err != nil {
		return nil, apperrors.Validation("date de fiche invalide", map[string]interface{}{
			"fiche_date": req.FicheDate,
		})
	}

	if err := ValidateFamilyAuth(req.FamilyAuth, req.InsuredID); err != nil {
		return nil, err
	}

	// Le patient vit dans un store séparé, pas de contrainte FK possible
	exists, err := s.patients.Exists(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.Validation("patient inconnu", map[string]interface{}{
			"patient_id": req.PatientID,
		})
	}
	if req.InsuredID != nil {
		exists, err := s.patients.Exists(ctx, *req.InsuredID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.Validation("assuré inconnu", map[string]interface{}{
				"insured_id": *req.InsuredID,
			})
		}
	}

	conventions, err := s.conventions.GetByIDs(ctx, req.PrestationIDs)
	if err != nil {
		return nil, err
	}
	if len(conventions) != len(req.PrestationIDs) {
		return nil, apperrors.Validation("une ou plusieurs prestations sont inconnues", map[string]interface{}{
			"demandées": len(req.PrestationIDs),
			"trouvées":  len(conventions),
		})
	}

	totals := AggregateTotals(conventions)

	var ficheID uuid.UUID
	var createdAt, updatedAt time.Time
	var fnNumber string
	year := time.Now().Year()

	err = s.txManager.WithTransaction(ctx, func(tx *postgres.Transaction) error {
		fnNumber, err = s.sequence.Allocate(ctx, tx, year)
		if err != nil {
			return err
		}

		if err := tx.QueryRow(ctx, queries.FicheNavetteQueries.Insert,
			req.PatientID, req.InsuredID, ficheDate, fnNumber, req.FamilyAuth,
			req.PriseEnChargeNumber, req.NumberMutuelle,
			totals.BasePrice, totals.FinalPrice,
			totals.PatientShare, totals.OrganismeShare,
			dto.StatusPending,
		).Scan(&ficheID, &createdAt, &updatedAt); err != nil {
			return fmt.Errorf("erreur insertion fiche: %w", err)
		}

		for _, prestationID := range req.PrestationIDs {
			if err := tx.Exec(ctx, queries.FicheNavetteQueries.InsertItem, ficheID, prestationID); err != nil {
				return fmt.Errorf("erreur insertion prestation: %w", err)
			}
		}

		for _, doctorID := range req.DoctorIDs {
			if err := tx.Exec(ctx, queries.FicheNavetteQueries.InsertDoctorLink, ficheID, doctorID); err != nil {
				return fmt.Errorf("erreur liaison médecin: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		slog.Error("Création fiche navette échouée", "error", err)
		return nil, fmt.Errorf("erreur création fiche navette: %w", err)
	}

	s.sequence.InvalidatePreview(ctx, year)
	slog.Info("Fiche navette créée", "fn_number", fnNumber, "fiche_id", ficheID)

	return s.GetByID(ctx, ficheID)
}

func (s *FicheNavetteService) GetByID(ctx context.Context, id uuid.UUID) (*dto.FicheNavetteResponse, error) {
	fiche, err := s.scanOne(s.db.QueryRow(ctx, queries.FicheNavetteQueries.GetByID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("fiche navette introuvable", nil)
		}
		return nil, fmt.Errorf("erreur récupération fiche: %w", err)
	}

	if err := s.attachItems(ctx, fiche); err != nil {
		return nil, err
	}

	fiches := []*dto.FicheNavetteResponse{fiche}
	if err := s.attachPatients(ctx, fiches); err != nil {
		return nil, err
	}
	if err := s.attachDoctors(ctx, fiches); err != nil {
		return nil, err
	}

	return fiche, nil
}

// Update remplace les champs administratifs sans toucher aux montants
// ni aux prestations
func (s *FicheNavetteService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateFicheNavetteRequest) (*dto.FicheNavetteResponse, error) {
	ficheDate, err := time.Parse("2006-01-02", req.FicheDate)
	if err != nil {
		return nil, apperrors.Validation("date de fiche invalide", map[string]interface{}{
			"fiche_date": req.FicheDate,
		})
	}

	if err := ValidateFamilyAuth(req.FamilyAuth, req.InsuredID); err != nil {
		return nil, err
	}

	if req.InsuredID != nil {
		exists, err := s.patients.Exists(ctx, *req.InsuredID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.Validation("assuré inconnu", map[string]interface{}{
				"insured_id": *req.InsuredID,
			})
		}
	}

	fiche, err := s.scanOne(s.db.QueryRow(ctx, queries.FicheNavetteQueries.Update,
		id, req.InsuredID, ficheDate, req.FamilyAuth,
		req.PriseEnChargeNumber, req.NumberMutuelle))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("fiche navette introuvable", nil)
		}
		return nil, fmt.Errorf("erreur mise à jour fiche: %w", err)
	}

	if err := s.attachItems(ctx, fiche); err != nil {
		return nil, err
	}
	fiches := []*dto.FicheNavetteResponse{fiche}
	if err := s.attachPatients(ctx, fiches); err != nil {
		return nil, err
	}
	if err := s.attachDoctors(ctx, fiches); err != nil {
		return nil, err
	}
	return fiche, nil
}

// UpdateStatus change le statut seul, les montants restent intacts
func (s *FicheNavetteService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.FicheNavetteResponse, error) {
	if !dto.ValidStatuses[status] {
		return nil, apperrors.Validation("statut invalide", map[string]interface{}{
			"status": status,
		})
	}

	fiche, err := s.scanOne(s.db.QueryRow(ctx, queries.FicheNavetteQueries.UpdateStatus, id, status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("fiche navette introuvable", nil)
		}
		return nil, fmt.Errorf("erreur changement de statut: %w", err)
	}
	return fiche, nil
}

// Delete supprime la fiche, les prestations et liens médecins suivent
// par cascade
func (s *FicheNavetteService) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx, queries.FicheNavetteQueries.Delete, id)
	if err != nil {
		slog.Error("Suppression fiche navette échouée", "fiche_id", id, "error", err)
		return fmt.Errorf("erreur suppression fiche navette: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFound("fiche navette introuvable", nil)
	}
	return nil
}

// scanOne lit une ligne fiche_navettes complète
func (s *FicheNavetteService) scanOne(row pgx.Row) (*dto.FicheNavetteResponse, error) {
	var f dto.FicheNavetteResponse
	err := row.Scan(
		&f.ID, &f.PatientID, &f.InsuredID, &f.FicheDate, &f.FnNumber,
		&f.FamilyAuth, &f.PriseEnChargeNumber, &f.NumberMutuelle,
		&f.BasePrice, &f.FinalPrice, &f.PatientShare, &f.OrganismeShare,
		&f.Status, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.Items = make([]dto.FicheNavetteItemResponse, 0)
	f.Doctors = make([]dto.DoctorSummary, 0)
	return &f, nil
}

func (s *FicheNavetteService) attachItems(ctx context.Context, fiche *dto.FicheNavetteResponse) error {
	rows, err := s.db.Query(ctx, queries.FicheNavetteQueries.GetItems, fiche.ID)
	if err != nil {
		return fmt.Errorf("erreur chargement prestations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item dto.FicheNavetteItemResponse
		if err := rows.Scan(
			&item.ID, &item.PrestationID, &item.Code, &item.DesignationPrestation,
			&item.MontantHT, &item.MontantGlobalTTC,
			&item.MontantPriseChargeEntreprise, &item.CompanyName,
		); err != nil {
			return fmt.Errorf("erreur lecture prestation: %w", err)
		}
		fiche.Items = append(fiche.Items, item)
	}
	return rows.Err()
}

// attachPatients recolle patients et assurés depuis le store patients,
// en un seul aller-retour pour tout le lot
func (s *FicheNavetteService) attachPatients(ctx context.Context, fiches []*dto.FicheNavetteResponse) error {
	ids := make([]uuid.UUID, 0, len(fiches)*2)
	seen := make(map[uuid.UUID]bool)
	for _, f := range fiches {
		if !seen[f.PatientID] {
			seen[f.PatientID] = true
			ids = append(ids, f.PatientID)
		}
		if f.InsuredID != nil && !seen[*f.InsuredID] {
			seen[*f.InsuredID] = true
			ids = append(ids, *f.InsuredID)
		}
	}

	summaries, err := s.patients.GetSummariesByIDs(ctx, ids)
	if err != nil {
		return err
	}

	for _, f := range fiches {
		if summary, ok := summaries[f.PatientID]; ok {
			p := summary
			f.Patient = &p
		}
		if f.InsuredID != nil {
			if summary, ok := summaries[*f.InsuredID]; ok {
				p := summary
				f.Insured = &p
			}
		}
	}
	return nil
}

// attachDoctors recolle les médecins du store médical: une requête pour
// les liens, un $in pour les documents, fusion en mémoire
func (s *FicheNavetteService) attachDoctors(ctx context.Context, fiches []*dto.FicheNavetteResponse) error {
	if len(fiches) == 0 {
		return nil
	}

	ficheIDs := make([]uuid.UUID, len(fiches))
	byID := make(map[uuid.UUID]*dto.FicheNavetteResponse, len(fiches))
	for i, f := range fiches {
		ficheIDs[i] = f.ID
		byID[f.ID] = f
	}

	rows, err := s.db.Query(ctx, queries.FicheNavetteQueries.DoctorLinksForFiches, ficheIDs)
	if err != nil {
		return fmt.Errorf("erreur chargement liens médecins: %w", err)
	}
	defer rows.Close()

	links := make(map[uuid.UUID][]string)
	doctorIDs := make([]string, 0)
	seenDoctor := make(map[string]bool)
	for rows.Next() {
		var ficheID uuid.UUID
		var doctorID string
		if err := rows.Scan(&ficheID, &doctorID); err != nil {
			return fmt.Errorf("erreur lecture lien médecin: %w", err)
		}
		links[ficheID] = append(links[ficheID], doctorID)
		if !seenDoctor[doctorID] {
			seenDoctor[doctorID] = true
			doctorIDs = append(doctorIDs, doctorID)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	doctors, err := s.doctors.FetchByIDs(ctx, doctorIDs)
	if err != nil {
		// Le store médical peut être indisponible sans bloquer la
		// consultation des fiches, on retombe sur les identifiants bruts
		slog.Error("Résolution médecins indisponible", "error", err)
		doctors = nil
	}

	for ficheID, ids := range links {
		fiche := byID[ficheID]
		for _, id := range ids {
			if doc, ok := doctors[id]; ok {
				fiche.Doctors = append(fiche.Doctors, dto.DoctorSummary{
					ID:             doc.ID,
					Name:           doc.Name,
					Specialization: doc.Specialization,
				})
			} else {
				fiche.Doctors = append(fiche.Doctors, dto.DoctorSummary{ID: id})
			}
		}
	}
	return nil
}
