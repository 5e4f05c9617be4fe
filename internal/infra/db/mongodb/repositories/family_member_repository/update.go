package family_member_repository

import (
	"context"
	"time"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpdateFamilyMemberRepository handles updating family members
type UpdateFamilyMemberRepository struct {
	Db *mongo.Database
}

// NewUpdateFamilyMemberRepository creates a new UpdateFamilyMemberRepository
func NewUpdateFamilyMemberRepository(db *mongo.Database) *UpdateFamilyMemberRepository {
	return &UpdateFamilyMemberRepository{Db: db}
}

// Update modifies an existing family member
func (r *UpdateFamilyMemberRepository) Update(familyMemberId primitive.ObjectID, familyMember *models.FamilyMember) (*models.FamilyMember, error) {
	collection := r.Db.Collection("family_members")

	filter := bson.M{"_id": familyMemberId, "user_id": familyMember.UserId}
	update := bson.M{"$set": bson.M{
		"name":         familyMember.Name,
		"relationship": familyMember.Relationship,
		"color":        familyMember.Color,
		"icon":         familyMember.Icon,
		"updated_at":   time.Now().UTC(),
	}}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}

	var updated models.FamilyMember
	err = collection.FindOne(ctx, filter).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
