package family_member_repository

import (
	"context"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindFamilyMembersRepository handles listing a user's active family members
type FindFamilyMembersRepository struct {
	Db *mongo.Database
}

// NewFindFamilyMembersRepository creates a new FindFamilyMembersRepository
func NewFindFamilyMembersRepository(db *mongo.Database) *FindFamilyMembersRepository {
	return &FindFamilyMembersRepository{Db: db}
}

// Find returns the user's active family members sorted by name
func (r *FindFamilyMembersRepository) Find(userId primitive.ObjectID) ([]models.FamilyMember, error) {
	collection := r.Db.Collection("family_members")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"name": 1})
	cursor, err := collection.Find(ctx, bson.M{"user_id": userId, "is_active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var familyMembers []models.FamilyMember
	if err = cursor.All(ctx, &familyMembers); err != nil {
		return nil, err
	}

	return familyMembers, nil
}
