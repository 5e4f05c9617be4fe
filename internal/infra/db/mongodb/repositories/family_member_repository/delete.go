package family_member_repository

import (
	"context"
	"time"

	"github.com/ailefin/finance-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// DeleteFamilyMemberRepository handles soft-deleting family members
type DeleteFamilyMemberRepository struct {
	Db *mongo.Database
}

// NewDeleteFamilyMemberRepository creates a new DeleteFamilyMemberRepository
func NewDeleteFamilyMemberRepository(db *mongo.Database) *DeleteFamilyMemberRepository {
	return &DeleteFamilyMemberRepository{Db: db}
}

// Delete flips the active flag; transactions keep referencing the member
func (r *DeleteFamilyMemberRepository) Delete(familyMemberId primitive.ObjectID, userId primitive.ObjectID) error {
	collection := r.Db.Collection("family_members")

	filter := bson.M{"_id": familyMemberId, "user_id": userId}
	update := bson.M{"$set": bson.M{"is_active": false, "updated_at": time.Now().UTC()}}

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	_, err := collection.UpdateOne(ctx, filter, update)
	return err
}
