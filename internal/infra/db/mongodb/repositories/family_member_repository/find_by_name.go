package family_member_repository

import (
	"context"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindFamilyMemberByNameRepository backs the per-user unique name check
type FindFamilyMemberByNameRepository struct {
	Db *mongo.Database
}

// NewFindFamilyMemberByNameRepository creates a new FindFamilyMemberByNameRepository
func NewFindFamilyMemberByNameRepository(db *mongo.Database) *FindFamilyMemberByNameRepository {
	return &FindFamilyMemberByNameRepository{Db: db}
}

// FindByName returns the user's active family member with the given name, or
// nil when none exists
func (r *FindFamilyMemberByNameRepository) FindByName(name string, userId primitive.ObjectID) (*models.FamilyMember, error) {
	collection := r.Db.Collection("family_members")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var familyMember models.FamilyMember
	err := collection.FindOne(ctx, bson.M{"name": name, "user_id": userId, "is_active": true}).Decode(&familyMember)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &familyMember, nil
}
