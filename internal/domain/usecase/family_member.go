package usecase

import (
	"github.com/ailefin/finance-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateFamilyMemberRepository defines the interface for creating family members
type CreateFamilyMemberRepository interface {
	Create(*models.FamilyMember) (*models.FamilyMember, error)
}

// FindFamilyMembersRepository defines the interface for retrieving a user's active family members
type FindFamilyMembersRepository interface {
	Find(userId primitive.ObjectID) ([]models.FamilyMember, error)
}

// FindFamilyMemberByIdRepository defines the interface for retrieving a single family member
type FindFamilyMemberByIdRepository interface {
	Find(familyMemberId primitive.ObjectID, userId primitive.ObjectID) (*models.FamilyMember, error)
}

// FindFamilyMemberByNameRepository defines the interface for the per-user unique name check
type FindFamilyMemberByNameRepository interface {
	FindByName(name string, userId primitive.ObjectID) (*models.FamilyMember, error)
}

// UpdateFamilyMemberRepository defines the interface for updating family members
type UpdateFamilyMemberRepository interface {
	Update(familyMemberId primitive.ObjectID, familyMember *models.FamilyMember) (*models.FamilyMember, error)
}

// DeleteFamilyMemberRepository defines the interface for soft-deleting family members
type DeleteFamilyMemberRepository interface {
	Delete(familyMemberId primitive.ObjectID, userId primitive.ObjectID) error
}
