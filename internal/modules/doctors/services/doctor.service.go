package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"clinique-navette-core/internal/infrastructure/database/mongodb"
	"clinique-navette-core/internal/modules/doctors/dto"
)

// DoctorService lit la base médicale MongoDB. Aucune écriture: les
// médecins sont administrés par un autre système, ce backend ne stocke
// que leurs ids dans doctor_fiche_navettes.
type DoctorService struct {
	mongo *mongodb.Client
}

func NewDoctorService(mongo *mongodb.Client) *DoctorService {
	return &DoctorService{mongo: mongo}
}

// ListDoctors retourne tous les médecins avec leur compte et leur
// spécialisation, recollés en mémoire (pas de jointure native)
func (s *DoctorService) ListDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	cursor, err := s.mongo.Doctors().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("erreur lecture médecins: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []dto.DoctorDocument
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("erreur décodage médecins: %w", err)
	}

	return s.resolve(ctx, doctors)
}

// FetchByIDs charge un lot de médecins par id, en un seul $in
func (s *DoctorService) FetchByIDs(ctx context.Context, ids []string) (map[string]dto.DoctorResponse, error) {
	result := make(map[string]dto.DoctorResponse, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cursor, err := s.mongo.Doctors().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("erreur lecture médecins: %w", err)
	}
	defer cursor.Close(ctx)

	var doctors []dto.DoctorDocument
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, fmt.Errorf("erreur décodage médecins: %w", err)
	}

	resolved, err := s.resolve(ctx, doctors)
	if err != nil {
		return nil, err
	}
	for _, d := range resolved {
		result[d.ID] = d
	}
	return result, nil
}

// resolve rapatrie comptes et spécialisations en deux requêtes par
// lots puis fusionne, quel que soit le nombre de médecins
func (s *DoctorService) resolve(ctx context.Context, doctors []dto.DoctorDocument) ([]dto.DoctorResponse, error) {
	if len(doctors) == 0 {
		return []dto.DoctorResponse{}, nil
	}

	userIDs := make([]string, 0, len(doctors))
	specializationIDs := make([]string, 0, len(doctors))
	for _, d := range doctors {
		userIDs = append(userIDs, d.UserID)
		if d.SpecializationID != nil {
			specializationIDs = append(specializationIDs, *d.SpecializationID)
		}
	}

	users, err := s.fetchUsers(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	specializations, err := s.fetchSpecializations(ctx, specializationIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for _, d := range doctors {
		resp := dto.DoctorResponse{
			ID:    d.ID,
			Notes: d.Notes,
		}
		if u, ok := users[d.UserID]; ok {
			resp.Name = u.Name
			resp.Email = u.Email
		}
		if d.SpecializationID != nil {
			if sp, ok := specializations[*d.SpecializationID]; ok {
				name := sp.Name
				resp.Specialization = &name
			}
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

func (s *DoctorService) fetchUsers(ctx context.Context, ids []string) (map[string]dto.UserDocument, error) {
	users := make(map[string]dto.UserDocument, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	cursor, err := s.mongo.Users().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("erreur lecture comptes médecins: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []dto.UserDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("erreur décodage comptes médecins: %w", err)
	}
	for _, u := range docs {
		users[u.ID] = u
	}
	return users, nil
}

func (s *DoctorService) fetchSpecializations(ctx context.Context, ids []string) (map[string]dto.SpecializationDocument, error) {
	specializations := make(map[string]dto.SpecializationDocument, len(ids))
	if len(ids) == 0 {
		return specializations, nil
	}

	cursor, err := s.mongo.Specializations().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("erreur lecture spécialisations: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []dto.SpecializationDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("erreur décodage spécialisations: %w", err)
	}
	for _, sp := range docs {
		specializations[sp.ID] = sp
	}
	return specializations, nil
}
