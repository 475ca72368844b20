package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"clinique-navette-core/internal/modules/fiche-navette/dto"
	"clinique-navette-core/internal/shared/apperrors"
)

func TestValidateFamilyAuth(t *testing.T) {
	insured := uuid.New()

	cases := []struct {
		name       string
		familyAuth string
		insuredID  *uuid.UUID
		wantErr    bool
	}{
		{
			name:       "adhérent sans assuré accepté",
			familyAuth: dto.FamilyAuthAdherent,
			insuredID:  nil,
			wantErr:    false,
		},
		{
			name:       "conjoint sans assuré refusé",
			familyAuth: dto.FamilyAuthConjoint,
			insuredID:  nil,
			wantErr:    true,
		},
		{
			name:       "conjoint avec assuré accepté",
			familyAuth: dto.FamilyAuthConjoint,
			insuredID:  &insured,
			wantErr:    false,
		},
		{
			name:       "ascendant sans assuré refusé",
			familyAuth: dto.FamilyAuthAscendant,
			insuredID:  nil,
			wantErr:    true,
		},
		{
			name:       "descendant avec assuré accepté",
			familyAuth: dto.FamilyAuthDescendant,
			insuredID:  &insured,
			wantErr:    false,
		},
		{
			name:       "lien inconnu refusé",
			familyAuth: "cousin",
			insuredID:  &insured,
			wantErr:    true,
		},
		{
			name:       "lien vide refusé",
			familyAuth: "",
			insuredID:  &insured,
			wantErr:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateFamilyAuth(tc.familyAuth, tc.insuredID)
			if tc.wantErr && err == nil {
				t.Error("erreur de validation attendue")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("erreur inattendue: %v", err)
			}
			if tc.wantErr {
				var svcErr *apperrors.ServiceError
				if !errors.As(err, &svcErr) || svcErr.Type != "validation" {
					t.Errorf("une erreur de validation métier est attendue, obtenu %v", err)
				}
			}
		})
	}
}

func TestStatusEnum(t *testing.T) {
	for _, status := range []string{
		dto.StatusPending, dto.StatusApproved, dto.StatusRejected,
		dto.StatusCompleted, dto.StatusCancelled,
	} {
		if !dto.ValidStatuses[status] {
			t.Errorf("statut %q devrait être valide", status)
		}
	}

	for _, status := range []string{"All", "", "archived", "Pending"} {
		if dto.ValidStatuses[status] {
			t.Errorf("statut %q ne devrait pas être valide", status)
		}
	}
}
