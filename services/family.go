package services

import (
	"context"

	"github.com/budgetfly/budgetfly-api/models"
	"github.com/budgetfly/budgetfly-api/storage"
)

// MaxMembers caps the family member listing.
const MaxMembers = 100

type FamilyMemberService struct {
	store storage.Store
}

func NewFamilyMemberService(store storage.Store) *FamilyMemberService {
	return &FamilyMemberService{store: store}
}

func (s *FamilyMemberService) Create(ctx context.Context, req models.FamilyMemberCreate) (*models.FamilyMember, error) {
	member := req.NewMember()
	if err := s.store.InsertMember(ctx, member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *FamilyMemberService) List(ctx context.Context) ([]models.FamilyMember, error) {
	return s.store.ListMembers(ctx, MaxMembers)
}

// Delete removes a member. Items that reference the member's name are left
// untouched, paid_by is a free-text reference rather than a foreign key.
func (s *FamilyMemberService) Delete(ctx context.Context, id string) error {
	return s.store.DeleteMember(ctx, id)
}
