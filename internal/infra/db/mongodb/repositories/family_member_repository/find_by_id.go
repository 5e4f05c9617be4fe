package family_member_repository

import (
	"context"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindFamilyMemberByIdRepository handles fetching a family member by its ID
type FindFamilyMemberByIdRepository struct {
	Db *mongo.Database
}

// NewFindFamilyMemberByIdRepository creates a new FindFamilyMemberByIdRepository
func NewFindFamilyMemberByIdRepository(db *mongo.Database) *FindFamilyMemberByIdRepository {
	return &FindFamilyMemberByIdRepository{Db: db}
}

// Find returns a family member by its ID and owner, or nil when none exists
func (r *FindFamilyMemberByIdRepository) Find(familyMemberId primitive.ObjectID, userId primitive.ObjectID) (*models.FamilyMember, error) {
	collection := r.Db.Collection("family_members")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var familyMember models.FamilyMember
	err := collection.FindOne(ctx, bson.M{"_id": familyMemberId, "user_id": userId}).Decode(&familyMember)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &familyMember, nil
}
